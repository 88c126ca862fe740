package entity

import "strings"

// ListFilter is a domain-level filter applied at read time. It is never
// persisted.
type ListFilter struct {
	Query string // case-insensitive substring over the entity's display fields
}

// Searchable is implemented by every listed entity
type Searchable interface {
	Matches(q string) bool
}

// Accepts reports whether item passes the filter. A nil filter or a blank
// query accepts everything.
func (f *ListFilter) Accepts(item Searchable) bool {
	if f == nil {
		return true
	}
	q := strings.TrimSpace(f.Query)
	if q == "" {
		return true
	}
	return item.Matches(q)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
