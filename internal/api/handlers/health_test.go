//go:build integration
// +build integration

package handlers_test

import (
	"net/http"
	"testing"

	"task-tracker-backend/internal/api/handlers"
	"task-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite runs the health endpoints against a real database
type HealthHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *HealthHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewHealthHandler(suite.baseTestSuite.DB, "test")
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

func (suite *HealthHandlerTestSuite) TestHealth() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("healthy", response.Status)
	suite.Equal("test", response.Version)
	suite.Equal("healthy", response.Services["database"])
}

func (suite *HealthHandlerTestSuite) TestReady() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
