package service_test

import (
	"context"
	"testing"
	"time"

	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/mocks"
	"task-tracker-backend/internal/service"
	"task-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamTaskServiceTestSuite defines the test suite for TeamTaskService
type TeamTaskServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	mockRepo  *mocks.MockTeamTaskRepositoryInterface
	mockTeams *mocks.MockTeamServiceInterface
	service   *service.TeamTaskService
	tasks     *testutils.TeamTaskFactory
	adminID   uuid.UUID
	memberID  uuid.UUID
	teamID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamTaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockRepo = mocks.NewMockTeamTaskRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.service = service.NewTeamTaskService(suite.mockRepo, suite.mockTeams, time.UTC, service.NewValidator())
	suite.tasks = testutils.NewTeamTaskFactory()
	suite.adminID = uuid.New()
	suite.memberID = uuid.New()
	suite.teamID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TeamTaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamTaskServiceTestSuite) withAssignee(task *models.TeamTask, username string) *models.TeamTaskWithAssignee {
	return &models.TeamTaskWithAssignee{TeamTask: *task, AssigneeUsername: &username}
}

func (suite *TeamTaskServiceTestSuite) TestCreate_AssignedToMember() {
	var created *models.TeamTask

	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.adminID).Return(true, nil)
	suite.mockTeams.EXPECT().IsMember(suite.teamID, suite.memberID).Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *models.TeamTask) error {
		suite.Equal("Release", task.Title)
		suite.Equal(models.TaskStatusTodo, task.Status)
		suite.Equal(suite.adminID, task.CreatedBy)
		suite.Equal(suite.memberID, *task.AssigneeID)
		suite.Equal(time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC), *task.TargetDatetime)
		task.ID = uuid.New()
		created = task
		return nil
	})
	suite.mockRepo.EXPECT().GetWithAssignee(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.TeamTaskWithAssignee, error) {
		suite.Equal(created.ID, id)
		return suite.withAssignee(created, "bob"), nil
	})

	assignee := suite.memberID.String()
	got, err := suite.service.Create(suite.ctx, suite.adminID, suite.teamID, &service.CreateTeamTaskRequest{
		Title:          "Release",
		AssigneeID:     &assignee,
		TargetDatetime: "2030-01-02T17:04:05+02:00",
	})

	suite.NoError(err)
	suite.Equal("bob", *got.AssigneeUsername)
	suite.Equal("2030-01-02T15:04:05Z", *got.TargetDatetime)
}

func (suite *TeamTaskServiceTestSuite) TestCreate_Unassigned() {
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.adminID).Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *models.TeamTask) error {
		suite.Nil(task.AssigneeID)
		suite.Nil(task.TargetDatetime)
		suite.Nil(task.Description)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithAssignee(gomock.Any()).Return(&models.TeamTaskWithAssignee{}, nil)

	empty := ""
	_, err := suite.service.Create(suite.ctx, suite.adminID, suite.teamID, &service.CreateTeamTaskRequest{Title: "Release", AssigneeID: &empty, Description: &empty})

	suite.NoError(err)
}

func (suite *TeamTaskServiceTestSuite) TestCreate_TitleCheckedFirst() {
	_, err := suite.service.Create(suite.ctx, suite.memberID, suite.teamID, &service.CreateTeamTaskRequest{Title: " "})

	suite.Equal("Title required", apperrors.PublicMessage(err))
}

func (suite *TeamTaskServiceTestSuite) TestCreate_NonAdmin() {
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.memberID).Return(false, nil)

	_, err := suite.service.Create(suite.ctx, suite.memberID, suite.teamID, &service.CreateTeamTaskRequest{Title: "Release"})

	suite.ErrorIs(err, apperrors.ErrAdminRequiredForTasks)
}

func (suite *TeamTaskServiceTestSuite) TestCreate_AssigneeOutsideTeam() {
	outsider := uuid.New()
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.adminID).Return(true, nil)
	suite.mockTeams.EXPECT().IsMember(suite.teamID, outsider).Return(false, nil)

	id := outsider.String()
	_, err := suite.service.Create(suite.ctx, suite.adminID, suite.teamID, &service.CreateTeamTaskRequest{Title: "Release", AssigneeID: &id})

	suite.ErrorIs(err, apperrors.ErrAssigneeNotMember)
	suite.Equal("Assignee must be a team member", apperrors.PublicMessage(err))
}

func (suite *TeamTaskServiceTestSuite) TestList() {
	suite.Run("member sees tasks", func() {
		task := suite.tasks.InTeam(suite.teamID, suite.adminID)
		suite.mockTeams.EXPECT().IsMember(suite.teamID, suite.memberID).Return(true, nil)
		suite.mockRepo.EXPECT().ListByTeam(suite.teamID).Return([]models.TeamTaskWithAssignee{{TeamTask: *task}}, nil)

		got, err := suite.service.List(suite.memberID, suite.teamID)
		suite.NoError(err)
		suite.Len(got, 1)
		suite.Equal(task.ID, got[0].ID)
	})

	suite.Run("outsider is denied", func() {
		outsider := uuid.New()
		suite.mockTeams.EXPECT().IsMember(suite.teamID, outsider).Return(false, nil)

		_, err := suite.service.List(outsider, suite.teamID)
		suite.ErrorIs(err, apperrors.ErrNotTeamMember)
		suite.Equal("Access denied", apperrors.PublicMessage(err))
	})
}

func (suite *TeamTaskServiceTestSuite) TestUpdate_AssigneeChangesStatus() {
	task := suite.tasks.InTeam(suite.teamID, suite.adminID)
	task.AssigneeID = &suite.memberID
	deadline := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)
	task.TargetDatetime = &deadline

	suite.mockRepo.EXPECT().GetInTeam(suite.teamID, task.ID).Return(task, nil)
	suite.mockRepo.EXPECT().UpdateSchedule(task).Return(nil)
	suite.mockRepo.EXPECT().GetWithAssignee(task.ID).DoAndReturn(func(uuid.UUID) (*models.TeamTaskWithAssignee, error) {
		return suite.withAssignee(task, "bob"), nil
	})

	got, err := suite.service.Update(suite.ctx, suite.memberID, suite.teamID, task.ID, &service.UpdateTeamTaskRequest{Status: strPtr("Doing")})

	suite.NoError(err)
	suite.Equal(models.TaskStatusDoing, got.Status)
	suite.Equal("2030-03-01T12:00:00Z", *got.TargetDatetime)
	suite.Equal(suite.memberID, *got.AssigneeID)
}

func (suite *TeamTaskServiceTestSuite) TestUpdate_AdminClearsDeadline() {
	task := suite.tasks.InTeam(suite.teamID, suite.adminID)
	deadline := time.Now().UTC()
	task.TargetDatetime = &deadline

	suite.mockRepo.EXPECT().GetInTeam(suite.teamID, task.ID).Return(task, nil)
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.adminID).Return(true, nil)
	suite.mockRepo.EXPECT().UpdateSchedule(task).Return(nil)
	suite.mockRepo.EXPECT().GetWithAssignee(task.ID).DoAndReturn(func(uuid.UUID) (*models.TeamTaskWithAssignee, error) {
		return &models.TeamTaskWithAssignee{TeamTask: *task}, nil
	})

	got, err := suite.service.Update(suite.ctx, suite.adminID, suite.teamID, task.ID, &service.UpdateTeamTaskRequest{TargetDatetime: strPtr("")})

	suite.NoError(err)
	suite.Nil(got.TargetDatetime)
	suite.Equal(models.TaskStatusTodo, got.Status)
}

func (suite *TeamTaskServiceTestSuite) TestUpdate_OtherMemberDenied() {
	task := suite.tasks.InTeam(suite.teamID, suite.adminID)
	bystander := uuid.New()

	suite.mockRepo.EXPECT().GetInTeam(suite.teamID, task.ID).Return(task, nil)
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, bystander).Return(false, nil)

	_, err := suite.service.Update(suite.ctx, bystander, suite.teamID, task.ID, &service.UpdateTeamTaskRequest{Status: strPtr("Done")})

	suite.ErrorIs(err, apperrors.ErrNotTeamAdminOrAssignee)
}

func (suite *TeamTaskServiceTestSuite) TestUpdate_TaskInAnotherTeam() {
	taskID := uuid.New()
	suite.mockRepo.EXPECT().GetInTeam(suite.teamID, taskID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, suite.adminID, suite.teamID, taskID, &service.UpdateTeamTaskRequest{Status: strPtr("Done")})

	suite.ErrorIs(err, apperrors.ErrTeamTaskNotFound)
	suite.Equal("Task not found", apperrors.PublicMessage(err))
}

func (suite *TeamTaskServiceTestSuite) TestUpdate_InvalidStatus() {
	task := suite.tasks.InTeam(suite.teamID, suite.adminID)
	suite.mockRepo.EXPECT().GetInTeam(suite.teamID, task.ID).Return(task, nil)
	suite.mockTeams.EXPECT().IsAdmin(suite.teamID, suite.adminID).Return(true, nil)

	_, err := suite.service.Update(suite.ctx, suite.adminID, suite.teamID, task.ID, &service.UpdateTeamTaskRequest{Status: strPtr("done")})

	suite.True(apperrors.IsValidation(err))
}

// TestTeamTaskServiceTestSuite runs the test suite
func TestTeamTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamTaskServiceTestSuite))
}
