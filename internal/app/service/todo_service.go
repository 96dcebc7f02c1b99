package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	statsCache     ports.StatsCache
}

var _ ports.TodoService = (*TodoService)(nil)

// NewTodoService wires the repository and an optional stats cache; pass a nil
// cache to disable caching.
func NewTodoService(todoRepository ports.TodoRepository, statsCache ports.StatsCache) *TodoService {
	return &TodoService{todoRepository: todoRepository, statsCache: statsCache}
}

func (s *TodoService) List(ctx context.Context, userID string, filter domain.ListFilter) (domain.TodoPage, error) {
	items, total, err := s.todoRepository.List(ctx, userID, filter)
	if err != nil {
		return domain.TodoPage{}, err
	}

	return domain.TodoPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *TodoService) Get(ctx context.Context, userID string, id uint64) (domain.Todo, error) {
	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) Create(ctx context.Context, in domain.CreateTodoInput) (domain.Todo, error) {
	todo, err := s.todoRepository.Create(ctx, in)
	if err != nil {
		return domain.Todo{}, err
	}

	s.invalidateStats(ctx, in.UserID)
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, userID string, id uint64, in domain.UpdateTodoInput) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.ApplyUpdate(in, time.Now().UTC())
	if err := s.todoRepository.Update(ctx, todo); err != nil {
		return domain.Todo{}, err
	}

	s.invalidateStats(ctx, userID)
	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) Toggle(ctx context.Context, userID string, id uint64) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.Toggle(time.Now().UTC())
	if err := s.todoRepository.Update(ctx, todo); err != nil {
		return domain.Todo{}, err
	}

	s.invalidateStats(ctx, userID)
	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) Delete(ctx context.Context, userID string, id uint64) error {
	if err := s.todoRepository.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	return nil
}

func (s *TodoService) Archive(ctx context.Context, userID string, id uint64) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.Archived = true
	if err := s.todoRepository.Update(ctx, todo); err != nil {
		return domain.Todo{}, err
	}

	s.invalidateStats(ctx, userID)
	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) AddSubtask(ctx context.Context, userID string, id uint64, title string) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	subtask := domain.NewSubtask(title, time.Now().UTC())
	if err := s.todoRepository.AddSubtask(ctx, todo.ID, len(todo.Subtasks), subtask); err != nil {
		return domain.Todo{}, err
	}

	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) ToggleSubtask(ctx context.Context, userID string, id uint64, subtaskID string) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	subtask, err := todo.ToggleSubtask(subtaskID)
	if err != nil {
		return domain.Todo{}, err
	}

	if err := s.todoRepository.SaveSubtask(ctx, todo.ID, subtask); err != nil {
		return domain.Todo{}, err
	}

	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) AddComment(ctx context.Context, userID string, id uint64, text string) (domain.Todo, error) {
	todo, err := s.todoRepository.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Todo{}, err
	}

	comment := domain.NewComment(userID, text, time.Now().UTC())
	if err := s.todoRepository.AddComment(ctx, todo.ID, len(todo.Comments), comment); err != nil {
		return domain.Todo{}, err
	}

	return s.todoRepository.GetByID(ctx, userID, id)
}

func (s *TodoService) Stats(ctx context.Context, userID string) (domain.Stats, error) {
	if s.statsCache != nil {
		if stats, ok := s.statsCache.Get(ctx, userID); ok {
			return stats, nil
		}
	}

	rows, err := s.todoRepository.StatsRows(ctx, userID)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.ComputeStats(rows, time.Now().UTC())
	if s.statsCache != nil {
		s.statsCache.Set(ctx, userID, stats)
	}
	return stats, nil
}

func (s *TodoService) Bulk(ctx context.Context, userID string, in domain.BulkInput) (int64, error) {
	var (
		affected int64
		err      error
	)

	switch in.Action {
	case domain.BulkActionDelete:
		affected, err = s.todoRepository.BulkDelete(ctx, userID, in.TodoIDs)
	case domain.BulkActionArchive:
		affected, err = s.todoRepository.BulkArchive(ctx, userID, in.TodoIDs)
	case domain.BulkActionUpdateStatus:
		var completedAt *time.Time
		if *in.Status == domain.StatusCompleted {
			now := time.Now().UTC()
			completedAt = &now
		}
		affected, err = s.todoRepository.BulkSetStatus(ctx, userID, in.TodoIDs, *in.Status, completedAt)
	default:
		return 0, fmt.Errorf("unsupported bulk action %q", in.Action)
	}

	if err != nil {
		return 0, err
	}

	s.invalidateStats(ctx, userID)
	return affected, nil
}

func (s *TodoService) invalidateStats(ctx context.Context, userID string) {
	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx, userID)
	}
}
