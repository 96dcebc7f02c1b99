package mapper

import (
	"time"

	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/dto"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:        todo.ID,
		Title:     todo.Title,
		Priority:  string(todo.Priority),
		Status:    string(todo.Status),
		Tags:      todo.Tags,
		Starred:   todo.Starred,
		Archived:  todo.Archived,
		Order:     todo.Order,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt: todo.UpdatedAt.Format(time.RFC3339),
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}
	if todo.Category != nil {
		value := *todo.Category
		item.Category = &value
	}
	if todo.DueDate != nil {
		value := todo.DueDate.Format(dueDateLayout)
		item.DueDate = &value
	}
	if todo.DueTime != nil {
		value := *todo.DueTime
		item.DueTime = &value
	}
	if todo.CompletedAt != nil {
		value := todo.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	item.Subtasks = make([]dto.SubtaskItem, 0, len(todo.Subtasks))
	for _, subtask := range todo.Subtasks {
		item.Subtasks = append(item.Subtasks, dto.SubtaskItem{
			ID:        subtask.ID,
			Title:     subtask.Title,
			Completed: subtask.Completed,
			CreatedAt: subtask.CreatedAt.Format(time.RFC3339),
		})
	}

	item.Comments = make([]dto.CommentItem, 0, len(todo.Comments))
	for _, comment := range todo.Comments {
		item.Comments = append(item.Comments, dto.CommentItem{
			ID:        comment.ID,
			Text:      comment.Text,
			User:      comment.UserID,
			CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		})
	}

	item.Attachments = make([]dto.AttachmentItem, 0, len(todo.Attachments))
	for _, attachment := range todo.Attachments {
		item.Attachments = append(item.Attachments, dto.AttachmentItem{
			ID:           attachment.ID,
			Filename:     attachment.Filename,
			OriginalName: attachment.OriginalName,
			MimeType:     attachment.MimeType,
			Size:         attachment.Size,
			URL:          attachment.URL,
			UploadedAt:   attachment.UploadedAt.Format(time.RFC3339),
		})
	}

	return item
}

func ToStatsItem(stats domain.Stats) dto.StatsItem {
	return dto.StatsItem{
		Total:        stats.Total,
		Completed:    stats.Completed,
		Pending:      stats.Pending,
		InProgress:   stats.InProgress,
		HighPriority: stats.HighPriority,
		Overdue:      stats.Overdue,
	}
}

func ToPagination(page domain.TodoPage) dto.Pagination {
	return dto.Pagination{
		Current: page.Page,
		Pages:   page.Pages(),
		Total:   page.Total,
	}
}
