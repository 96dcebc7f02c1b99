package db

import (
	"strings"

	"github.com/rajeshprivate007/taskflow-backend/internal/core/domain"
)

// listOrderClause is the fixed listing order: manual ordering first, newest
// creations break ties.
const listOrderClause = "ORDER BY sort_order ASC, created_at DESC"

// buildListWhere emits the WHERE clause and arguments for a filtered listing.
// The ownership and archived restrictions are always present; every other
// clause is added only when its filter is set.
func buildListWhere(userID string, filter domain.ListFilter) (string, []interface{}) {
	clauses := []string{"user_id = ?", "archived = 0"}
	args := []interface{}{userID}

	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Priority != "" {
		clauses = append(clauses, "priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Starred != "" {
		clauses = append(clauses, "starred = ?")
		args = append(args, filter.Starred == "true")
	}
	if filter.Search != "" {
		clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		needle := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, needle, needle)
	}

	return strings.Join(clauses, " AND "), args
}
