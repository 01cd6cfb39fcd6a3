package shared

// Filter is the list query a repository understands.
// Filters holds repository-specific equality and range conditions keyed by name.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// Set adds a named criterion
func (f *Filter) Set(key string, value any) {
	if f.Filters == nil {
		f.Filters = make(map[string]any)
	}
	f.Filters[key] = value
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
