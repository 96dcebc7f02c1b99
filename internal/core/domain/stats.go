package domain

import "time"

// Stats holds the per-user summary counters. All fields are plain ints so an
// empty account serializes as explicit zeroes.
type Stats struct {
	Total        int
	Completed    int
	Pending      int
	InProgress   int
	HighPriority int
	Overdue      int
}

// StatsRow is the slim projection the aggregation runs over; one row per
// non-archived todo of the user.
type StatsRow struct {
	Status   Status
	Priority Priority
	DueDate  *time.Time
	DueTime  *string
}

// ComputeStats accumulates all six counters in a single pass. A todo is
// overdue when it is not completed, has a due instant, and that instant is
// before now.
func ComputeStats(rows []StatsRow, now time.Time) Stats {
	var stats Stats
	for _, row := range rows {
		stats.Total++

		switch row.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		}

		if row.Priority == PriorityHigh {
			stats.HighPriority++
		}

		if row.Status != StatusCompleted {
			if dueAt, ok := CombineDueDateTime(row.DueDate, row.DueTime); ok && dueAt.Before(now) {
				stats.Overdue++
			}
		}
	}
	return stats
}
