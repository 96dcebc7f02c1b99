package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToggle_PendingBecomesCompleted(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusPending}

	todo.Toggle(now)

	require.Equal(t, StatusCompleted, todo.Status)
	require.NotNil(t, todo.CompletedAt)
	require.Equal(t, now, *todo.CompletedAt)
}

func TestToggle_CompletedBecomesPendingAndClearsCompletedAt(t *testing.T) {
	completedAt := time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusCompleted, CompletedAt: &completedAt}

	todo.Toggle(time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))

	require.Equal(t, StatusPending, todo.Status)
	require.Nil(t, todo.CompletedAt)
}

func TestToggle_InProgressBecomesCompleted(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusInProgress}

	todo.Toggle(now)

	require.Equal(t, StatusCompleted, todo.Status)
	require.NotNil(t, todo.CompletedAt)
}

func TestSetStatus_TransitionIntoCompletedStampsCompletedAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusInProgress}

	todo.SetStatus(StatusCompleted, now)

	require.Equal(t, StatusCompleted, todo.Status)
	require.NotNil(t, todo.CompletedAt)
	require.Equal(t, now, *todo.CompletedAt)
}

func TestSetStatus_MovingAwayFromCompletedKeepsCompletedAt(t *testing.T) {
	completedAt := time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusCompleted, CompletedAt: &completedAt}

	todo.SetStatus(StatusPending, time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))

	require.Equal(t, StatusPending, todo.Status)
	require.NotNil(t, todo.CompletedAt)
	require.Equal(t, completedAt, *todo.CompletedAt)
}

func TestSetStatus_AlreadyCompletedKeepsOriginalStamp(t *testing.T) {
	completedAt := time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)
	todo := Todo{Status: StatusCompleted, CompletedAt: &completedAt}

	todo.SetStatus(StatusCompleted, time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))

	require.Equal(t, completedAt, *todo.CompletedAt)
}

func TestApplyUpdate_PartialFields(t *testing.T) {
	description := "old"
	todo := Todo{
		Title:       "old title",
		Description: &description,
		Priority:    PriorityMedium,
		Status:      StatusPending,
	}

	title := "new title"
	priority := PriorityHigh
	todo.ApplyUpdate(UpdateTodoInput{Title: &title, Priority: &priority}, time.Now())

	require.Equal(t, "new title", todo.Title)
	require.Equal(t, PriorityHigh, todo.Priority)
	require.Equal(t, "old", *todo.Description)
	require.Equal(t, StatusPending, todo.Status)
}

func TestApplyUpdate_ClearsDescriptionWhenSetToNull(t *testing.T) {
	description := "something"
	todo := Todo{Description: &description}

	todo.ApplyUpdate(UpdateTodoInput{DescriptionSet: true, Description: nil}, time.Now())

	require.Nil(t, todo.Description)
}

func TestToggleSubtask_FlipsMatchingSubtask(t *testing.T) {
	todo := Todo{Subtasks: []Subtask{
		{ID: "a", Completed: false},
		{ID: "b", Completed: true},
	}}

	subtask, err := todo.ToggleSubtask("a")

	require.NoError(t, err)
	require.True(t, subtask.Completed)
	require.True(t, todo.Subtasks[0].Completed)
	require.True(t, todo.Subtasks[1].Completed)
}

func TestToggleSubtask_UnknownIDLeavesTodoUnmodified(t *testing.T) {
	todo := Todo{Subtasks: []Subtask{{ID: "a", Completed: false}}}

	_, err := todo.ToggleSubtask("missing")

	require.ErrorIs(t, err, ErrSubtaskNotFound)
	require.False(t, todo.Subtasks[0].Completed)
}

func TestCombineDueDateTime_NoDueDate(t *testing.T) {
	_, ok := CombineDueDateTime(nil, nil)
	require.False(t, ok)
}

func TestCombineDueDateTime_DateOnlyIsMidnightUTC(t *testing.T) {
	dueDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	dueAt, ok := CombineDueDateTime(&dueDate, nil)

	require.True(t, ok)
	require.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), dueAt)
}

func TestCombineDueDateTime_AppendsTimeOfDay(t *testing.T) {
	dueDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	dueTime := "23:59"

	dueAt, ok := CombineDueDateTime(&dueDate, &dueTime)

	require.True(t, ok)
	require.Equal(t, time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC), dueAt)
}

func TestCombineDueDateTime_WithSeconds(t *testing.T) {
	dueDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	dueTime := "08:30:45"

	dueAt, ok := CombineDueDateTime(&dueDate, &dueTime)

	require.True(t, ok)
	require.Equal(t, time.Date(2026, 8, 15, 8, 30, 45, 0, time.UTC), dueAt)
}

func TestCombineDueDateTime_UnparseableTimeFallsBackToMidnight(t *testing.T) {
	dueDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	dueTime := "around lunch"

	dueAt, ok := CombineDueDateTime(&dueDate, &dueTime)

	require.True(t, ok)
	require.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), dueAt)
}

func TestNewSubtask_Defaults(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	subtask := NewSubtask("write tests", now)

	require.NotEmpty(t, subtask.ID)
	require.Equal(t, "write tests", subtask.Title)
	require.False(t, subtask.Completed)
	require.Equal(t, now, subtask.CreatedAt)
}

func TestNewComment_CarriesAuthorAndTime(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	comment := NewComment("user-1", "looks good", now)

	require.NotEmpty(t, comment.ID)
	require.Equal(t, "user-1", comment.UserID)
	require.Equal(t, "looks good", comment.Text)
	require.Equal(t, now, comment.CreatedAt)
}

func TestNewSubtask_GeneratesUniqueIDs(t *testing.T) {
	now := time.Now()
	first := NewSubtask("a", now)
	second := NewSubtask("b", now)
	require.NotEqual(t, first.ID, second.ID)
}
