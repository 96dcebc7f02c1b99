package domain

// FilterAll is the sentinel query value meaning "no filter"; it is treated
// exactly like an absent parameter.
const FilterAll = "all"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListFilter carries the optional list filters after validation. Empty
// strings mean the filter is not applied.
type ListFilter struct {
	Status   string
	Priority string
	Category string
	Starred  string // "true" or "false", compared for exact equality
	Search   string
	Page     int
	Limit    int
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TodoPage is one window of a filtered listing plus the total match count.
type TodoPage struct {
	Items []Todo
	Total int
	Page  int
	Limit int
}

// Pages returns the total page count, ceil(total/limit).
func (p TodoPage) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
