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

// TodoHandlerTestSuite defines the test suite for TodoHandler
type TodoHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTodoServiceInterface
	handler     *handlers.TodoHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TodoHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTodoServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTodoHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	todos := suite.httpSuite.Router.Group("/api/todos")
	todos.Use(testutils.AuthenticateAs(suite.userID, "ann"))
	{
		todos.GET("", suite.handler.ListTodos)
		todos.POST("", suite.handler.CreateTodo)
		todos.PUT("/:id", suite.handler.UpdateTodo)
		todos.DELETE("/:id", suite.handler.DeleteTodo)
	}
}

// TearDownTest cleans up after each test
func (suite *TodoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TodoHandlerTestSuite) TestListTodos() {
	target := "2030-01-02T15:04:05Z"
	todos := []service.TodoResponse{{ID: uuid.New(), Task: "buy milk", Status: "Todo", TargetDatetime: &target}}
	suite.mockService.EXPECT().List(suite.userID).Return(todos, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/todos", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("2030-01-02T15:04:05Z", response[0]["targetDatetime"])
}

func (suite *TodoHandlerTestSuite) TestCreateTodo() {
	todoID := uuid.New()
	suite.mockService.EXPECT().
		Create(suite.userID, &service.CreateTodoRequest{Task: "buy milk", TargetDatetime: "2030-01-02T15:04"}).
		Return(&service.TodoResponse{ID: todoID, Task: "buy milk", Status: "Todo"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/todos", map[string]string{
		"task":           "buy milk",
		"targetDatetime": "2030-01-02T15:04",
	})

	var response service.TodoResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(todoID, response.ID)
}

func (suite *TodoHandlerTestSuite) TestUpdateAndDelete() {
	todoID := uuid.New()
	status := "Done"

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:    "update owned todo",
			Request: testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/todos/" + todoID.String(), Body: map[string]string{"status": status}},
			Setup: func() {
				suite.mockService.EXPECT().
					Update(suite.userID, todoID, &service.UpdateTodoRequest{Status: &status}).
					Return(&service.TodoResponse{ID: todoID, Status: "Done"}, nil)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
		},
		{
			Name:    "update someone else's todo",
			Request: testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/todos/" + todoID.String(), Body: map[string]string{"status": status}},
			Setup: func() {
				suite.mockService.EXPECT().Update(suite.userID, todoID, gomock.Any()).Return(nil, apperrors.ErrTodoNotFound)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]string{"message": "Todo not found"}},
		},
		{
			Name:             "malformed id",
			Request:          testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/todos/42", Body: map[string]string{"status": status}},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"message": "Invalid todo ID"}},
		},
		{
			Name:    "delete",
			Request: testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/todos/" + todoID.String()},
			Setup: func() {
				suite.mockService.EXPECT().Delete(suite.userID, todoID).Return(nil)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK, Body: map[string]string{"message": "Todo deleted"}},
		},
		{
			Name:    "delete missing",
			Request: testutils.MockHTTPRequest{Method: http.MethodDelete, URL: "/api/todos/" + todoID.String()},
			Setup: func() {
				suite.mockService.EXPECT().Delete(suite.userID, todoID).Return(apperrors.ErrTodoNotFound)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]string{"message": "Todo not found"}},
		},
	})
}

func (suite *TodoHandlerTestSuite) TestCreateTodo_Validation() {
	suite.mockService.EXPECT().Create(suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("Task", "Task and targetDatetime are required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/todos", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Task and targetDatetime are required")
}

// TestTodoHandlerTestSuite runs the test suite
func TestTodoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TodoHandlerTestSuite))
}
