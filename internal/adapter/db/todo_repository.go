package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/ports"
)

const insertTodoQuery = `
INSERT INTO todos
  (user_id, title, description, priority, status, category, tags, due_date, due_time, starred, archived, sort_order, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?);
`

const getTodoQuery = `
SELECT * FROM todos WHERE id = ? AND user_id = ?;
`

const updateTodoQuery = `
UPDATE todos SET
  title = ?,
  description = ?,
  priority = ?,
  status = ?,
  category = ?,
  tags = ?,
  due_date = ?,
  due_time = ?,
  completed_at = ?,
  starred = ?,
  archived = ?,
  sort_order = ?,
  updated_at = ?
WHERE id = ? AND user_id = ?;
`

const statsRowsQuery = `
SELECT status, priority, due_date, due_time FROM todos WHERE user_id = ? AND archived = 0;
`

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          uint64         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	Category    sql.NullString `db:"category"`
	Tags        []byte         `db:"tags"`
	DueDate     sql.NullTime   `db:"due_date"`
	DueTime     sql.NullString `db:"due_time"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	Starred     bool           `db:"starred"`
	Archived    bool           `db:"archived"`
	SortOrder   int            `db:"sort_order"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type subtaskRow struct {
	ID        string    `db:"id"`
	TodoID    uint64    `db:"todo_id"`
	Title     string    `db:"title"`
	Completed bool      `db:"completed"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

type commentRow struct {
	ID        string    `db:"id"`
	TodoID    uint64    `db:"todo_id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

type attachmentRow struct {
	ID           string    `db:"id"`
	TodoID       uint64    `db:"todo_id"`
	Filename     string    `db:"filename"`
	OriginalName string    `db:"original_name"`
	MimeType     string    `db:"mime_type"`
	Size         int64     `db:"size"`
	URL          string    `db:"url"`
	Position     int       `db:"position"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

type statsRow struct {
	Status   string         `db:"status"`
	Priority string         `db:"priority"`
	DueDate  sql.NullTime   `db:"due_date"`
	DueTime  sql.NullString `db:"due_time"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, in domain.CreateTodoInput) (domain.Todo, error) {
	tags, err := marshalTags(in.Tags)
	if err != nil {
		return domain.Todo{}, err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, insertTodoQuery,
		in.UserID,
		in.Title,
		in.Description,
		string(in.Priority),
		string(domain.StatusPending),
		in.Category,
		tags,
		in.DueDate,
		in.DueTime,
		in.Starred,
		now,
		now,
	)
	if err != nil {
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Todo{}, err
	}

	return r.GetByID(ctx, in.UserID, uint64(id))
}

func (r *TodoRepository) GetByID(ctx context.Context, userID string, id uint64) (domain.Todo, error) {
	var row todoRow
	if err := r.db.GetContext(ctx, &row, getTodoQuery, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	todo, err := mapTodoRowToDomainTodo(row)
	if err != nil {
		return domain.Todo{}, err
	}

	todos := []domain.Todo{todo}
	if err := r.loadChildren(ctx, todos); err != nil {
		return domain.Todo{}, err
	}

	return todos[0], nil
}

func (r *TodoRepository) List(ctx context.Context, userID string, filter domain.ListFilter) ([]domain.Todo, int, error) {
	where, args := buildListWhere(userID, filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM todos WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf("SELECT * FROM todos WHERE %s %s LIMIT ? OFFSET ?", where, listOrderClause)
	listArgs := append(args, filter.Limit, filter.Offset())

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, listArgs...); err != nil {
		return nil, 0, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todo, err := mapTodoRowToDomainTodo(row)
		if err != nil {
			return nil, 0, err
		}
		todos = append(todos, todo)
	}

	if err := r.loadChildren(ctx, todos); err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) error {
	tags, err := marshalTags(todo.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, updateTodoQuery,
		todo.Title,
		todo.Description,
		string(todo.Priority),
		string(todo.Status),
		todo.Category,
		tags,
		todo.DueDate,
		todo.DueTime,
		todo.CompletedAt,
		todo.Starred,
		todo.Archived,
		todo.Order,
		time.Now().UTC(),
		todo.ID,
		todo.UserID,
	)
	return err
}

func (r *TodoRepository) Delete(ctx context.Context, userID string, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) AddSubtask(ctx context.Context, todoID uint64, position int, subtask domain.Subtask) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO subtasks (id, todo_id, title, completed, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		subtask.ID, todoID, subtask.Title, subtask.Completed, position, subtask.CreatedAt,
	)
	if err != nil {
		return err
	}
	return r.touchTodo(ctx, todoID)
}

func (r *TodoRepository) SaveSubtask(ctx context.Context, todoID uint64, subtask domain.Subtask) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE subtasks SET completed = ? WHERE id = ? AND todo_id = ?",
		subtask.Completed, subtask.ID, todoID,
	)
	if err != nil {
		return err
	}
	return r.touchTodo(ctx, todoID)
}

func (r *TodoRepository) AddComment(ctx context.Context, todoID uint64, position int, comment domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (id, todo_id, user_id, text, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		comment.ID, todoID, comment.UserID, comment.Text, position, comment.CreatedAt,
	)
	if err != nil {
		return err
	}
	return r.touchTodo(ctx, todoID)
}

func (r *TodoRepository) StatsRows(ctx context.Context, userID string) ([]domain.StatsRow, error) {
	var rows []statsRow
	if err := r.db.SelectContext(ctx, &rows, statsRowsQuery, userID); err != nil {
		return nil, err
	}

	out := make([]domain.StatsRow, 0, len(rows))
	for _, row := range rows {
		item := domain.StatsRow{
			Status:   domain.Status(row.Status),
			Priority: domain.Priority(row.Priority),
		}
		if row.DueDate.Valid {
			value := row.DueDate.Time
			item.DueDate = &value
		}
		if row.DueTime.Valid {
			value := row.DueTime.String
			item.DueTime = &value
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TodoRepository) BulkDelete(ctx context.Context, userID string, ids []uint64) (int64, error) {
	query, args, err := sqlx.In("DELETE FROM todos WHERE user_id = ? AND id IN (?)", userID, ids)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TodoRepository) BulkArchive(ctx context.Context, userID string, ids []uint64) (int64, error) {
	query, args, err := sqlx.In(
		"UPDATE todos SET archived = 1, updated_at = ? WHERE user_id = ? AND id IN (?)",
		time.Now().UTC(), userID, ids,
	)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TodoRepository) BulkSetStatus(ctx context.Context, userID string, ids []uint64, status domain.Status, completedAt *time.Time) (int64, error) {
	var (
		query string
		args  []interface{}
		err   error
	)

	// Moving into completed stamps completed_at; any other target status
	// leaves completed_at as it was.
	if completedAt != nil {
		query, args, err = sqlx.In(
			"UPDATE todos SET status = ?, completed_at = ?, updated_at = ? WHERE user_id = ? AND id IN (?)",
			string(status), *completedAt, time.Now().UTC(), userID, ids,
		)
	} else {
		query, args, err = sqlx.In(
			"UPDATE todos SET status = ?, updated_at = ? WHERE user_id = ? AND id IN (?)",
			string(status), time.Now().UTC(), userID, ids,
		)
	}
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TodoRepository) touchTodo(ctx context.Context, todoID uint64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE todos SET updated_at = ? WHERE id = ?", time.Now().UTC(), todoID)
	return err
}

// loadChildren attaches subtasks, comments and attachments to the given todos
// with one batched query per child table.
func (r *TodoRepository) loadChildren(ctx context.Context, todos []domain.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(todos))
	index := make(map[uint64]*domain.Todo, len(todos))
	for i := range todos {
		ids = append(ids, todos[i].ID)
		index[todos[i].ID] = &todos[i]
		todos[i].Subtasks = make([]domain.Subtask, 0)
		todos[i].Comments = make([]domain.Comment, 0)
		todos[i].Attachments = make([]domain.Attachment, 0)
	}

	query, args, err := sqlx.In("SELECT * FROM subtasks WHERE todo_id IN (?) ORDER BY position ASC", ids)
	if err != nil {
		return err
	}
	var subtasks []subtaskRow
	if err := r.db.SelectContext(ctx, &subtasks, query, args...); err != nil {
		return err
	}
	for _, row := range subtasks {
		parent := index[row.TodoID]
		parent.Subtasks = append(parent.Subtasks, domain.Subtask{
			ID:        row.ID,
			Title:     row.Title,
			Completed: row.Completed,
			CreatedAt: row.CreatedAt,
		})
	}

	query, args, err = sqlx.In("SELECT * FROM comments WHERE todo_id IN (?) ORDER BY position ASC", ids)
	if err != nil {
		return err
	}
	var comments []commentRow
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return err
	}
	for _, row := range comments {
		parent := index[row.TodoID]
		parent.Comments = append(parent.Comments, domain.Comment{
			ID:        row.ID,
			Text:      row.Text,
			UserID:    row.UserID,
			CreatedAt: row.CreatedAt,
		})
	}

	query, args, err = sqlx.In("SELECT * FROM attachments WHERE todo_id IN (?) ORDER BY position ASC", ids)
	if err != nil {
		return err
	}
	var attachments []attachmentRow
	if err := r.db.SelectContext(ctx, &attachments, query, args...); err != nil {
		return err
	}
	for _, row := range attachments {
		parent := index[row.TodoID]
		parent.Attachments = append(parent.Attachments, domain.Attachment{
			ID:           row.ID,
			Filename:     row.Filename,
			OriginalName: row.OriginalName,
			MimeType:     row.MimeType,
			Size:         row.Size,
			URL:          row.URL,
			UploadedAt:   row.UploadedAt,
		})
	}

	return nil
}

func mapTodoRowToDomainTodo(row todoRow) (domain.Todo, error) {
	todo := domain.Todo{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Priority:  domain.Priority(row.Priority),
		Status:    domain.Status(row.Status),
		Starred:   row.Starred,
		Archived:  row.Archived,
		Order:     row.SortOrder,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		todo.Description = &value
	}
	if row.Category.Valid {
		value := row.Category.String
		todo.Category = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		todo.DueDate = &value
	}
	if row.DueTime.Valid {
		value := row.DueTime.String
		todo.DueTime = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		todo.CompletedAt = &value
	}

	tags, err := unmarshalTags(row.Tags)
	if err != nil {
		return domain.Todo{}, err
	}
	todo.Tags = tags

	return todo, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func unmarshalTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
