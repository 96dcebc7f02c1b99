//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/rajeshprivate007/taskflow-backend/internal/adapter/db"
	httpadapter "github.com/rajeshprivate007/taskflow-backend/internal/adapter/http"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/dto"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/handlers"
	appservice "github.com/rajeshprivate007/taskflow-backend/internal/app/service"
	"github.com/rajeshprivate007/taskflow-backend/pkg/translator"
)

const integrationSecret = "integration-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

type TodosIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTodosIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TodosIntegrationSuite))
}

func (s *TodosIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB, nil)
	todoRepository := dbadapter.NewTodoRepository(s.DB)
	todoService := appservice.NewTodoService(todoRepository, nil)
	todoHandler := handlers.NewTodoHandler(todoService)
	httpadapter.RegisterRoutes(router, healthHandler, todoHandler, integrationSecret)

	s.router = router
}

type seedTodo struct {
	userID   string
	title    string
	status   string
	priority string
	category string
	starred  bool
	archived bool
	dueDate  *string
	order    int
}

func (s *TodosIntegrationSuite) insertTodo(seed seedTodo) uint64 {
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	result, err := s.DB.Exec(
		`INSERT INTO todos (user_id, title, priority, status, category, tags, due_date, starred, archived, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, NULLIF(?, ''), '[]', ?, ?, ?, ?, ?, ?)`,
		seed.userID, seed.title, seed.priority, seed.status, seed.category,
		seed.dueDate, seed.starred, seed.archived, seed.order, now, now,
	)
	s.Require().NoError(err)

	id, err := result.LastInsertId()
	s.Require().NoError(err)
	return uint64(id)
}

func (s *TodosIntegrationSuite) token(userID string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(integrationSecret))
	s.Require().NoError(err)
	return token
}

func (s *TodosIntegrationSuite) do(method, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID))
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type integrationEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *dto.Pagination `json:"pagination"`
}

func (s *TodosIntegrationSuite) decode(rec *httptest.ResponseRecorder) integrationEnvelope {
	var envelope integrationEnvelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func (s *TodosIntegrationSuite) TestListTodos_ScopedToCallerAndExcludesArchived() {
	s.insertTodo(seedTodo{userID: "user-1", title: "mine pending", status: "pending", priority: "medium"})
	s.insertTodo(seedTodo{userID: "user-1", title: "mine archived", status: "pending", priority: "medium", archived: true})
	s.insertTodo(seedTodo{userID: "user-2", title: "not mine", status: "pending", priority: "medium"})

	rec := s.do(http.MethodGet, "/api/todos", "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	envelope := s.decode(rec)
	s.Require().True(envelope.Success)

	var items []dto.TodoItem
	s.Require().NoError(json.Unmarshal(envelope.Data, &items))
	s.Require().Len(items, 1)
	s.Require().Equal("mine pending", items[0].Title)

	s.Require().NotNil(envelope.Pagination)
	s.Require().Equal(1, envelope.Pagination.Current)
	s.Require().Equal(1, envelope.Pagination.Pages)
	s.Require().Equal(1, envelope.Pagination.Total)
}

func (s *TodosIntegrationSuite) TestListTodos_StatusFilterAndOrdering() {
	s.insertTodo(seedTodo{userID: "user-1", title: "second", status: "pending", priority: "low", order: 2})
	s.insertTodo(seedTodo{userID: "user-1", title: "first", status: "pending", priority: "low", order: 1})
	s.insertTodo(seedTodo{userID: "user-1", title: "done", status: "completed", priority: "low", order: 0})

	rec := s.do(http.MethodGet, "/api/todos?status=pending", "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var items []dto.TodoItem
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &items))
	s.Require().Len(items, 2)
	s.Require().Equal("first", items[0].Title)
	s.Require().Equal("second", items[1].Title)
}

func (s *TodosIntegrationSuite) TestListTodos_Pagination() {
	for i := 0; i < 5; i++ {
		s.insertTodo(seedTodo{userID: "user-1", title: "todo", status: "pending", priority: "low", order: i})
	}

	rec := s.do(http.MethodGet, "/api/todos?page=3&limit=2", "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	envelope := s.decode(rec)
	var items []dto.TodoItem
	s.Require().NoError(json.Unmarshal(envelope.Data, &items))
	s.Require().Len(items, 1)

	s.Require().Equal(3, envelope.Pagination.Current)
	s.Require().Equal(3, envelope.Pagination.Pages)
	s.Require().Equal(5, envelope.Pagination.Total)
}

func (s *TodosIntegrationSuite) TestCreateTodo_PersistsRow() {
	rec := s.do(http.MethodPost, "/api/todos", "user-1", `{
		"title": "Buy milk",
		"priority": "high",
		"tags": ["errand"],
		"dueDate": "2026-09-01"
	}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var item dto.TodoItem
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &item))
	s.Require().NotZero(item.ID)
	s.Require().Equal("Buy milk", item.Title)
	s.Require().Equal("high", item.Priority)
	s.Require().Equal("pending", item.Status)
	s.Require().Equal([]string{"errand"}, item.Tags)

	var count int
	s.Require().NoError(s.DB.Get(&count,
		"SELECT COUNT(*) FROM todos WHERE id = ? AND user_id = ?", item.ID, "user-1"))
	s.Require().Equal(1, count)
}

func (s *TodosIntegrationSuite) TestToggleTodo_StampsCompletedAt() {
	id := s.insertTodo(seedTodo{userID: "user-1", title: "toggle me", status: "pending", priority: "medium"})

	rec := s.do(http.MethodPatch, "/api/todos/"+itoa(id)+"/toggle", "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var item dto.TodoItem
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &item))
	s.Require().Equal("completed", item.Status)
	s.Require().NotNil(item.CompletedAt)

	var completedAt sql.NullTime
	s.Require().NoError(s.DB.Get(&completedAt, "SELECT completed_at FROM todos WHERE id = ?", id))
	s.Require().True(completedAt.Valid)
}

func (s *TodosIntegrationSuite) TestGetStats_CountsOverdue() {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	s.insertTodo(seedTodo{userID: "user-1", title: "late", status: "pending", priority: "high", dueDate: &yesterday})
	s.insertTodo(seedTodo{userID: "user-1", title: "on time", status: "pending", priority: "low", dueDate: &tomorrow})
	s.insertTodo(seedTodo{userID: "user-1", title: "done late", status: "completed", priority: "low", dueDate: &yesterday})

	rec := s.do(http.MethodGet, "/api/todos/stats/overview", "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var stats dto.StatsItem
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &stats))
	s.Require().Equal(3, stats.Total)
	s.Require().Equal(1, stats.Completed)
	s.Require().Equal(2, stats.Pending)
	s.Require().Equal(1, stats.HighPriority)
	s.Require().Equal(1, stats.Overdue)
}

func (s *TodosIntegrationSuite) TestBulkDelete_SkipsOtherUsersRows() {
	mine1 := s.insertTodo(seedTodo{userID: "user-1", title: "a", status: "pending", priority: "low"})
	mine2 := s.insertTodo(seedTodo{userID: "user-1", title: "b", status: "pending", priority: "low"})
	theirs := s.insertTodo(seedTodo{userID: "user-2", title: "c", status: "pending", priority: "low"})

	rec := s.do(http.MethodPost, "/api/todos/bulk", "user-1",
		`{"action": "delete", "todoIds": [`+itoa(mine1)+`, `+itoa(mine2)+`, `+itoa(theirs)+`]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var result dto.BulkResult
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &result))
	s.Require().Equal(int64(2), result.ModifiedCount)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM todos WHERE id = ?", theirs))
	s.Require().Equal(1, count)
}

func (s *TodosIntegrationSuite) TestSubtasks_AddAndToggle() {
	id := s.insertTodo(seedTodo{userID: "user-1", title: "with steps", status: "pending", priority: "medium"})

	rec := s.do(http.MethodPost, "/api/todos/"+itoa(id)+"/subtasks", "user-1", `{"title": "step one"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var item dto.TodoItem
	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &item))
	s.Require().Len(item.Subtasks, 1)
	s.Require().Equal("step one", item.Subtasks[0].Title)
	s.Require().False(item.Subtasks[0].Completed)

	rec = s.do(http.MethodPatch, "/api/todos/"+itoa(id)+"/subtasks/"+item.Subtasks[0].ID, "user-1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Require().NoError(json.Unmarshal(s.decode(rec).Data, &item))
	s.Require().True(item.Subtasks[0].Completed)
}

func (s *TodosIntegrationSuite) TestGetTodo_OtherUsersTodoIsNotFound() {
	theirs := s.insertTodo(seedTodo{userID: "user-2", title: "private", status: "pending", priority: "low"})

	rec := s.do(http.MethodGet, "/api/todos/"+itoa(theirs), "user-1", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *TodosIntegrationSuite) TestListTodos_MissingTokenIsUnauthorized() {
	rec := s.do(http.MethodGet, "/api/todos", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
