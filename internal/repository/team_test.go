//go:build integration
// +build integration

package repository

import (
	"testing"

	"task-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TeamRepository
	userRepo       *UserRepository
	membershipRepo *MembershipRepository
	factories      *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.membershipRepo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithCreator tests that the creator is enrolled as admin
func (suite *TeamRepositoryTestSuite) TestCreateWithCreator() {
	creator := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(creator))

	team := suite.factories.Team.WithCreator(creator.ID)
	err := suite.repo.CreateWithCreator(team)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)

	members, err := suite.membershipRepo.ListMembers(team.ID)
	suite.NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(creator.ID, members[0].ID)
	suite.True(members[0].IsAdmin)
}

// TestCreateWithUnknownCreatorRollsBack tests that a failed membership insert leaves no team behind
func (suite *TeamRepositoryTestSuite) TestCreateWithUnknownCreatorRollsBack() {
	team := suite.factories.Team.WithCreator(uuid.New())

	err := suite.repo.CreateWithCreator(team)
	suite.Error(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListForUser tests listing a user's teams with the admin flag
func (suite *TeamRepositoryTestSuite) TestListForUser() {
	alice := suite.factories.User.Create()
	bob := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(alice))
	suite.Require().NoError(suite.userRepo.Create(bob))

	owned := suite.factories.Team.WithCreator(alice.ID)
	owned.Name = "Owned"
	suite.Require().NoError(suite.repo.CreateWithCreator(owned))

	joined := suite.factories.Team.WithCreator(bob.ID)
	joined.Name = "Joined"
	suite.Require().NoError(suite.repo.CreateWithCreator(joined))
	_, err := suite.membershipRepo.Add(joined.ID, alice.ID, false)
	suite.Require().NoError(err)

	other := suite.factories.Team.WithCreator(bob.ID)
	suite.Require().NoError(suite.repo.CreateWithCreator(other))

	teams, err := suite.repo.ListForUser(alice.ID)
	suite.NoError(err)
	suite.Require().Len(teams, 2)

	roles := map[string]bool{}
	for _, t := range teams {
		roles[t.Name] = t.IsAdmin
	}
	suite.Equal(map[string]bool{"Owned": true, "Joined": false}, roles)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
