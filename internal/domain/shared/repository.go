package shared

// Filter carries paging, ordering, free-text search and context-specific
// criteria (category_id, has_user, price bounds...) to repositories.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter is page one of twenty, newest first
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]interface{}{},
	}
}

// With returns a copy carrying key=value. The Filters map is shared with f.
func (f Filter) With(key string, value interface{}) Filter {
	if f.Filters == nil {
		f.Filters = map[string]interface{}{}
	}
	f.Filters[key] = value
	return f
}

// Offset is the number of rows before the current page
func (f Filter) Offset() int {
	if f.Page < 2 || f.PageSize < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
