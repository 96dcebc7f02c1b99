package domain

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Subtask struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

type Comment struct {
	ID        string
	Text      string
	UserID    string
	CreatedAt time.Time
}

type Attachment struct {
	ID           string
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	URL          string
	UploadedAt   time.Time
}

type Todo struct {
	ID          uint64
	UserID      string
	Title       string
	Description *string
	Priority    Priority
	Status      Status
	Category    *string
	Tags        []string
	DueDate     *time.Time
	DueTime     *string
	CompletedAt *time.Time
	Starred     bool
	Archived    bool
	Order       int
	Subtasks    []Subtask
	Comments    []Comment
	Attachments []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	UserID      string
	Title       string
	Description *string
	Priority    Priority
	Category    *string
	Tags        []string
	DueDate     *time.Time
	DueTime     *string
	Starred     bool
}

type UpdateTodoInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *Priority
	Status         *Status
	Category       *string
	CategorySet    bool
	Tags           []string
	TagsSet        bool
	DueDate        *time.Time
	DueDateSet     bool
	DueTime        *string
	DueTimeSet     bool
	Starred        *bool
	Order          *int
}

// Toggle flips a todo between completed and pending. Anything not yet
// completed (including in-progress) becomes completed; completing stamps
// CompletedAt, un-completing clears it.
func (t *Todo) Toggle(now time.Time) {
	if t.Status == StatusCompleted {
		t.Status = StatusPending
		t.CompletedAt = nil
		return
	}
	t.Status = StatusCompleted
	completedAt := now
	t.CompletedAt = &completedAt
}

// SetStatus stamps CompletedAt on the transition into completed. Moving away
// from completed leaves CompletedAt alone; only Toggle clears it.
func (t *Todo) SetStatus(status Status, now time.Time) {
	if status == StatusCompleted && t.Status != StatusCompleted {
		completedAt := now
		t.CompletedAt = &completedAt
	}
	t.Status = status
}

// ApplyUpdate applies a partial update to the todo in memory. Persistence is
// the caller's concern.
func (t *Todo) ApplyUpdate(in UpdateTodoInput, now time.Time) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.DescriptionSet {
		t.Description = in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Status != nil {
		t.SetStatus(*in.Status, now)
	}
	if in.CategorySet {
		t.Category = in.Category
	}
	if in.TagsSet {
		t.Tags = in.Tags
	}
	if in.DueDateSet {
		t.DueDate = in.DueDate
	}
	if in.DueTimeSet {
		t.DueTime = in.DueTime
	}
	if in.Starred != nil {
		t.Starred = *in.Starred
	}
	if in.Order != nil {
		t.Order = *in.Order
	}
}

// ToggleSubtask flips the completed flag of the subtask with the given ID.
func (t *Todo) ToggleSubtask(subtaskID string) (Subtask, error) {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return t.Subtasks[i], nil
		}
	}
	return Subtask{}, ErrSubtaskNotFound
}

// DueAt returns the combined due instant of the todo, if it has one.
func (t *Todo) DueAt() (time.Time, bool) {
	return CombineDueDateTime(t.DueDate, t.DueTime)
}

// dueTimeLayouts are tried in order against the free-form due time string.
var dueTimeLayouts = []string{"15:04", "15:04:05"}

// CombineDueDateTime merges a calendar date with a free-form time-of-day
// string into a single UTC instant. A missing or unparseable time falls back
// to midnight UTC; without a date there is no due instant at all.
func CombineDueDateTime(dueDate *time.Time, dueTime *string) (time.Time, bool) {
	if dueDate == nil {
		return time.Time{}, false
	}

	day := dueDate.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if dueTime == nil || *dueTime == "" {
		return midnight, true
	}

	for _, layout := range dueTimeLayouts {
		parsed, err := time.Parse(layout, *dueTime)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC), true
	}

	return midnight, true
}

func NewSubtask(title string, now time.Time) Subtask {
	return Subtask{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
		CreatedAt: now,
	}
}

func NewComment(userID, text string, now time.Time) Comment {
	return Comment{
		ID:        uuid.NewString(),
		Text:      text,
		UserID:    userID,
		CreatedAt: now,
	}
}
