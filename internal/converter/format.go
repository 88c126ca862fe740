package converter

import "time"

// Layouts accepted for stored dates, most specific first. "fecha" values come
// from datetime-local and date inputs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders a stored date as dd/mm/yyyy HH:MM. Input that does
// not parse is returned unchanged.
func FormatDateTime(iso string) string {
	if iso == "" {
		return ""
	}
	t, ok := parseDate(iso)
	if !ok {
		return iso
	}
	return t.Format("02/01/2006 15:04")
}

// FormatDate renders a stored date as dd/mm/yyyy
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, ok := parseDate(iso)
	if !ok {
		return iso
	}
	return t.Format("02/01/2006")
}
