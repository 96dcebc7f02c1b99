package ports

import (
	"context"
	"time"

	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, in domain.CreateTodoInput) (domain.Todo, error)
	GetByID(ctx context.Context, userID string, id uint64) (domain.Todo, error)
	List(ctx context.Context, userID string, filter domain.ListFilter) ([]domain.Todo, int, error)
	Update(ctx context.Context, todo domain.Todo) error
	Delete(ctx context.Context, userID string, id uint64) error
	AddSubtask(ctx context.Context, todoID uint64, position int, subtask domain.Subtask) error
	SaveSubtask(ctx context.Context, todoID uint64, subtask domain.Subtask) error
	AddComment(ctx context.Context, todoID uint64, position int, comment domain.Comment) error
	StatsRows(ctx context.Context, userID string) ([]domain.StatsRow, error)
	BulkDelete(ctx context.Context, userID string, ids []uint64) (int64, error)
	BulkArchive(ctx context.Context, userID string, ids []uint64) (int64, error)
	BulkSetStatus(ctx context.Context, userID string, ids []uint64, status domain.Status, completedAt *time.Time) (int64, error)
}

type TodoService interface {
	List(ctx context.Context, userID string, filter domain.ListFilter) (domain.TodoPage, error)
	Get(ctx context.Context, userID string, id uint64) (domain.Todo, error)
	Create(ctx context.Context, in domain.CreateTodoInput) (domain.Todo, error)
	Update(ctx context.Context, userID string, id uint64, in domain.UpdateTodoInput) (domain.Todo, error)
	Toggle(ctx context.Context, userID string, id uint64) (domain.Todo, error)
	Delete(ctx context.Context, userID string, id uint64) error
	Archive(ctx context.Context, userID string, id uint64) (domain.Todo, error)
	AddSubtask(ctx context.Context, userID string, id uint64, title string) (domain.Todo, error)
	ToggleSubtask(ctx context.Context, userID string, id uint64, subtaskID string) (domain.Todo, error)
	AddComment(ctx context.Context, userID string, id uint64, text string) (domain.Todo, error)
	Stats(ctx context.Context, userID string) (domain.Stats, error)
	Bulk(ctx context.Context, userID string, in domain.BulkInput) (int64, error)
}

// StatsCache is a best-effort cache for per-user statistics. Implementations
// must never fail a request: misses and backend errors both surface as a
// plain "not found".
type StatsCache interface {
	Get(ctx context.Context, userID string) (domain.Stats, bool)
	Set(ctx context.Context, userID string, stats domain.Stats)
	Invalidate(ctx context.Context, userID string)
}
