package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/dto"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
	"github.com/rajeshprivate007/taskflow-backend/pkg/apierrors"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxCategoryLen    = 50
	maxTagLen         = 30
	maxCommentLen     = 500
	maxDueTimeLen     = 20
	dueDateLayout     = "2006-01-02"
)

// BuildListFilter validates the raw list query. The sentinel value "all" is
// treated exactly like an absent parameter.
func BuildListFilter(q dto.ListTodosQuery) (domain.ListFilter, []apierrors.FieldError) {
	var fieldErrors []apierrors.FieldError
	filter := domain.ListFilter{
		Page:  domain.DefaultPage,
		Limit: domain.DefaultLimit,
	}

	if status := normalizeFilterValue(q.Status); status != "" {
		if !domain.Status(status).Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", q.Status)})
		} else {
			filter.Status = status
		}
	}

	if priority := normalizeFilterValue(q.Priority); priority != "" {
		if !domain.Priority(priority).Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", q.Priority)})
		} else {
			filter.Priority = priority
		}
	}

	filter.Category = normalizeFilterValue(q.Category)

	if starred := normalizeFilterValue(q.Starred); starred != "" {
		if starred != "true" && starred != "false" {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "starred", Message: fmt.Sprintf("starred must be %q or %q, got %q", "true", "false", q.Starred)})
		} else {
			filter.Starred = starred
		}
	}

	filter.Search = strings.TrimSpace(q.Search)

	if q.Page != "" {
		page, err := strconv.Atoi(q.Page)
		if err != nil || page < 1 {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "page", Message: "page must be a positive integer"})
		} else {
			filter.Page = page
		}
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil || limit < 1 || limit > domain.MaxLimit {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "limit", Message: fmt.Sprintf("limit must be between 1 and %d", domain.MaxLimit)})
		} else {
			filter.Limit = limit
		}
	}

	if len(fieldErrors) > 0 {
		return domain.ListFilter{}, fieldErrors
	}
	return filter, nil
}

func BuildCreateTodoInput(userID string, req dto.CreateTodoRequest) (domain.CreateTodoInput, []apierrors.FieldError) {
	var fieldErrors []apierrors.FieldError

	title := strings.TrimSpace(req.Title)
	if title == "" {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > maxTitleLen {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
	}

	if req.Description != nil && len(*req.Description) > maxDescriptionLen {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
		if !priority.Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", *req.Priority)})
		}
	}

	if req.Category != nil && len(*req.Category) > maxCategoryLen {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "category", Message: fmt.Sprintf("category must be at most %d characters", maxCategoryLen)})
	}

	fieldErrors = append(fieldErrors, validateTags(req.Tags)...)

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueDate", Message: "dueDate must be formatted as YYYY-MM-DD"})
		} else {
			dueDate = &parsed
		}
	}

	var dueTime *string
	if req.DueTime != nil && *req.DueTime != "" {
		if len(*req.DueTime) > maxDueTimeLen {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueTime", Message: fmt.Sprintf("dueTime must be at most %d characters", maxDueTimeLen)})
		} else {
			dueTime = req.DueTime
		}
	}

	if len(fieldErrors) > 0 {
		return domain.CreateTodoInput{}, fieldErrors
	}

	starred := false
	if req.Starred != nil {
		starred = *req.Starred
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.CreateTodoInput{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Category:    req.Category,
		Tags:        tags,
		DueDate:     dueDate,
		DueTime:     dueTime,
		Starred:     starred,
	}, nil
}

// BuildUpdateTodoInput validates a partial update. The raw message map tells
// apart absent fields from fields explicitly set to null.
func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, []apierrors.FieldError) {
	var fieldErrors []apierrors.FieldError
	var in domain.UpdateTodoInput

	if len(raw) == 0 {
		return domain.UpdateTodoInput{}, []apierrors.FieldError{{Field: "body", Message: "no updatable fields provided"}}
	}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "title", Message: "title cannot be null"})
		} else {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "title", Message: "title is required"})
			} else if len(title) > maxTitleLen {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
			} else {
				in.Title = &title
			}
		}
	}

	if hasJSONField(raw, "description") {
		in.DescriptionSet = true
		if !isJSONNull(raw["description"]) {
			if req.Description == nil {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "description", Message: "description must be a string"})
			} else if len(*req.Description) > maxDescriptionLen {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
			} else {
				in.Description = req.Description
			}
		}
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil || !domain.Priority(*req.Priority).Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "priority", Message: "unknown priority"})
		} else {
			priority := domain.Priority(*req.Priority)
			in.Priority = &priority
		}
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil || !domain.Status(*req.Status).Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "status", Message: "unknown status"})
		} else {
			status := domain.Status(*req.Status)
			in.Status = &status
		}
	}

	if hasJSONField(raw, "category") {
		in.CategorySet = true
		if !isJSONNull(raw["category"]) {
			if req.Category == nil {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "category", Message: "category must be a string"})
			} else if len(*req.Category) > maxCategoryLen {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "category", Message: fmt.Sprintf("category must be at most %d characters", maxCategoryLen)})
			} else {
				in.Category = req.Category
			}
		}
	}

	if hasJSONField(raw, "tags") {
		in.TagsSet = true
		if tagErrors := validateTags(req.Tags); len(tagErrors) > 0 {
			fieldErrors = append(fieldErrors, tagErrors...)
		} else {
			tags := req.Tags
			if tags == nil {
				tags = []string{}
			}
			in.Tags = tags
		}
	}

	if hasJSONField(raw, "dueDate") {
		in.DueDateSet = true
		if !isJSONNull(raw["dueDate"]) {
			if req.DueDate == nil {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueDate", Message: "dueDate must be a string"})
			} else {
				parsed, err := time.Parse(dueDateLayout, *req.DueDate)
				if err != nil {
					fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueDate", Message: "dueDate must be formatted as YYYY-MM-DD"})
				} else {
					in.DueDate = &parsed
				}
			}
		}
	}

	if hasJSONField(raw, "dueTime") {
		in.DueTimeSet = true
		if !isJSONNull(raw["dueTime"]) {
			if req.DueTime == nil {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueTime", Message: "dueTime must be a string"})
			} else if len(*req.DueTime) > maxDueTimeLen {
				fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "dueTime", Message: fmt.Sprintf("dueTime must be at most %d characters", maxDueTimeLen)})
			} else {
				in.DueTime = req.DueTime
			}
		}
	}

	if hasJSONField(raw, "starred") {
		if req.Starred == nil {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "starred", Message: "starred must be a boolean"})
		} else {
			in.Starred = req.Starred
		}
	}

	if hasJSONField(raw, "order") {
		if req.Order == nil {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "order", Message: "order must be a number"})
		} else {
			in.Order = req.Order
		}
	}

	if len(fieldErrors) > 0 {
		return domain.UpdateTodoInput{}, fieldErrors
	}
	return in, nil
}

func BuildSubtaskTitle(req dto.AddSubtaskRequest) (string, []apierrors.FieldError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", []apierrors.FieldError{{Field: "title", Message: "title is required"}}
	}
	if len(title) > maxTitleLen {
		return "", []apierrors.FieldError{{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)}}
	}
	return title, nil
}

func BuildCommentText(req dto.AddCommentRequest) (string, []apierrors.FieldError) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", []apierrors.FieldError{{Field: "text", Message: "text is required"}}
	}
	if len(text) > maxCommentLen {
		return "", []apierrors.FieldError{{Field: "text", Message: fmt.Sprintf("text must be at most %d characters", maxCommentLen)}}
	}
	return text, nil
}

func BuildBulkInput(req dto.BulkRequest) (domain.BulkInput, []apierrors.FieldError) {
	var fieldErrors []apierrors.FieldError

	action := domain.BulkAction(req.Action)
	if !action.Valid() {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "action", Message: fmt.Sprintf("unknown action %q", req.Action)})
	}

	if len(req.TodoIDs) == 0 {
		fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "todoIds", Message: "todoIds must be a non-empty array"})
	}

	var status *domain.Status
	if action == domain.BulkActionUpdateStatus {
		if req.Status == nil {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "status", Message: "status is required for update-status"})
		} else if value := domain.Status(*req.Status); !value.Valid() {
			fieldErrors = append(fieldErrors, apierrors.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", *req.Status)})
		} else {
			status = &value
		}
	}

	if len(fieldErrors) > 0 {
		return domain.BulkInput{}, fieldErrors
	}

	return domain.BulkInput{
		Action:  action,
		TodoIDs: req.TodoIDs,
		Status:  status,
	}, nil
}

func validateTags(tags []string) []apierrors.FieldError {
	var fieldErrors []apierrors.FieldError
	for i, tag := range tags {
		if len(tag) > maxTagLen {
			fieldErrors = append(fieldErrors, apierrors.FieldError{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: fmt.Sprintf("tag must be at most %d characters", maxTagLen),
			})
		}
	}
	return fieldErrors
}

// normalizeFilterValue maps the "all" sentinel onto an absent filter.
func normalizeFilterValue(value string) string {
	value = strings.TrimSpace(value)
	if value == domain.FilterAll {
		return ""
	}
	return value
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
