package handlers_test

import (
	"net/http"
	"testing"

	"task-tracker-backend/internal/api/handlers"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/mocks"
	"task-tracker-backend/internal/service"
	"task-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamTaskHandlerTestSuite defines the test suite for TeamTaskHandler
type TeamTaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamTaskServiceInterface
	handler     *handlers.TeamTaskHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	teamID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamTaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamTaskServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamTaskHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	tasks := suite.httpSuite.Router.Group("/api/teams/:teamId/tasks")
	tasks.Use(testutils.AuthenticateAs(suite.userID, "ann"))
	{
		tasks.POST("", suite.handler.CreateTask)
		tasks.GET("", suite.handler.ListTasks)
		tasks.PUT("/:taskId", suite.handler.UpdateTask)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamTaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamTaskHandlerTestSuite) tasksURL() string {
	return "/api/teams/" + suite.teamID.String() + "/tasks"
}

func (suite *TeamTaskHandlerTestSuite) TestCreateTask() {
	taskID := uuid.New()
	assignee := uuid.New().String()
	description := "Write notes"

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.userID, suite.teamID, &service.CreateTeamTaskRequest{
			Title:          "Release",
			Description:    &description,
			AssigneeID:     &assignee,
			TargetDatetime: "2030-01-02T15:04:05Z",
		}).
		Return(&service.TeamTaskResponse{ID: taskID, TeamID: suite.teamID, Title: "Release", Status: "Todo"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.tasksURL(), map[string]string{
		"title":          "Release",
		"description":    description,
		"assignee_id":    assignee,
		"targetDatetime": "2030-01-02T15:04:05Z",
	})

	var response handlers.TaskCreatedResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Task created", response.Message)
	suite.Equal(taskID, response.TaskID)
	suite.Equal("Release", response.Task.Title)
}

func (suite *TeamTaskHandlerTestSuite) TestCreateTask_Errors() {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not admin", apperrors.ErrAdminRequiredForTasks, http.StatusForbidden, "Only team admin can create tasks"},
		{"assignee outside team", apperrors.ErrAssigneeNotMember, http.StatusBadRequest, "Assignee must be a team member"},
		{"missing title", apperrors.NewValidationError("Title", "Title required"), http.StatusBadRequest, "Title required"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), suite.userID, suite.teamID, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.tasksURL(), map[string]string{"title": "Release"})

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.message)
		})
	}
}

func (suite *TeamTaskHandlerTestSuite) TestListTasks() {
	username := "bob"
	suite.mockService.EXPECT().List(suite.userID, suite.teamID).
		Return([]service.TeamTaskResponse{{ID: uuid.New(), Title: "Release", AssigneeUsername: &username}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.tasksURL(), nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("bob", response[0]["assignee_username"])
	suite.Contains(response[0], "target_datetime")
}

func (suite *TeamTaskHandlerTestSuite) TestListTasks_NotMember() {
	suite.mockService.EXPECT().List(suite.userID, suite.teamID).Return(nil, apperrors.ErrNotTeamMember)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.tasksURL(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Access denied")
}

func (suite *TeamTaskHandlerTestSuite) TestUpdateTask() {
	taskID := uuid.New()
	url := suite.tasksURL() + "/" + taskID.String()

	suite.Run("omitted datetime stays nil", func() {
		status := "Doing"
		suite.mockService.EXPECT().
			Update(gomock.Any(), suite.userID, suite.teamID, taskID, &service.UpdateTeamTaskRequest{Status: &status}).
			Return(&service.TeamTaskResponse{ID: taskID, Status: "Doing"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]string{"status": status})

		var response handlers.TaskUpdatedResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Equal("Task updated", response.Message)
	})

	suite.Run("explicit empty datetime is forwarded", func() {
		empty := ""
		suite.mockService.EXPECT().
			Update(gomock.Any(), suite.userID, suite.teamID, taskID, &service.UpdateTeamTaskRequest{TargetDatetime: &empty}).
			Return(&service.TeamTaskResponse{ID: taskID}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]string{"targetDatetime": ""})

		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("bystander", func() {
		suite.mockService.EXPECT().Update(gomock.Any(), suite.userID, suite.teamID, taskID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamAdminOrAssignee)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]string{"status": "Done"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Only team admin or assignee can modify status")
	})

	suite.Run("task in other team", func() {
		suite.mockService.EXPECT().Update(gomock.Any(), suite.userID, suite.teamID, taskID, gomock.Any()).
			Return(nil, apperrors.ErrTeamTaskNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, url, map[string]string{"status": "Done"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Task not found")
	})
}

// TestTeamTaskHandlerTestSuite runs the test suite
func TestTeamTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamTaskHandlerTestSuite))
}
