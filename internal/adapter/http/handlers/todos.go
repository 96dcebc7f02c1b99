package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/dto"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/mapper"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/middleware"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/validation"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/ports"
	"github.com/rajeshprivate007/taskflow-backend/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	filter, fieldErrors := validation.BuildListFilter(dto.ListTodosQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Starred:  c.Query("starred"),
		Search:   c.Query("search"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
	})
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	page, err := h.todoService.List(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to list todos", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateInternalError(lang, err))
		return
	}

	pagination := mapper.ToPagination(page)
	c.JSON(http.StatusOK, dto.Response{
		Success:    true,
		Data:       mapper.ToTodoItems(page.Items),
		Pagination: &pagination,
	})
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), userID, todoID)
	if err != nil {
		h.respondError(c, lang, err, "failed to get todo", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: mapper.ToTodoItem(todo)})
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	in, fieldErrors := validation.BuildCreateTodoInput(userID, req)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("failed to create todo", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateInternalError(lang, err))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgTodoCreated, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	var req dto.UpdateTodoRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	in, fieldErrors := validation.BuildUpdateTodoInput(req, raw)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), userID, todoID, in)
	if err != nil {
		h.respondError(c, lang, err, "failed to update todo", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgTodoUpdated, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Toggle(c.Request.Context(), userID, todoID)
	if err != nil {
		h.respondError(c, lang, err, "failed to toggle todo", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgTodoUpdated, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), userID, todoID); err != nil {
		h.respondError(c, lang, err, "failed to delete todo", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgTodoDeleted, lang),
	})
}

func (h *TodoHandler) ArchiveTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.Archive(c.Request.Context(), userID, todoID)
	if err != nil {
		h.respondError(c, lang, err, "failed to archive todo", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgTodoArchived, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) AddSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	var req dto.AddSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	title, fieldErrors := validation.BuildSubtaskTitle(req)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	todo, err := h.todoService.AddSubtask(c.Request.Context(), userID, todoID, title)
	if err != nil {
		h.respondError(c, lang, err, "failed to add subtask", todoID)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgSubtaskAdded, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) ToggleSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	subtaskID := c.Param("subtaskId")
	if subtaskID == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	todo, err := h.todoService.ToggleSubtask(c.Request.Context(), userID, todoID, subtaskID)
	if err != nil {
		if errors.Is(err, domain.ErrSubtaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubtaskNotFound, lang))
			return
		}
		h.respondError(c, lang, err, "failed to toggle subtask", todoID)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgSubtaskToggled, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) AddComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	text, fieldErrors := validation.BuildCommentText(req)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	todo, err := h.todoService.AddComment(c.Request.Context(), userID, todoID, text)
	if err != nil {
		h.respondError(c, lang, err, "failed to add comment", todoID)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgCommentAdded, lang),
		Data:    mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) GetStats(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	stats, err := h.todoService.Stats(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to compute stats", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateInternalError(lang, err))
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: mapper.ToStatsItem(stats)})
}

func (h *TodoHandler) BulkAction(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	in, fieldErrors := validation.BuildBulkInput(req)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, fieldErrors))
		return
	}

	affected, err := h.todoService.Bulk(c.Request.Context(), userID, in)
	if err != nil {
		zap.L().Error("failed to apply bulk action",
			zap.String("user_id", userID),
			zap.String("action", string(in.Action)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateInternalError(lang, err))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: apierrors.Translate(apierrors.MsgBulkApplied, lang),
		Data:    dto.BulkResult{ModifiedCount: affected},
	})
}

func (h *TodoHandler) respondError(c *gin.Context, lang string, err error, logMsg string, todoID uint64) {
	if errors.Is(err, domain.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang))
		return
	}

	zap.L().Error(logMsg, zap.Uint64("todo_id", todoID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apierrors.CreateInternalError(lang, err))
}

// parseTodoID rejects malformed path IDs before any storage call.
func parseTodoID(c *gin.Context, lang string) (uint64, bool) {
	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || todoID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang))
		return 0, false
	}
	return todoID, true
}
