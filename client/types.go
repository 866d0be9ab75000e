package client

import "strings"

// Activity is the client-side view of an activity record. Dates are
// kept as strings: the registry holds the date-only portion, and the
// full timestamp is rebuilt when a record is submitted.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	Venue       string `json:"venue"`
}

// normalizeDate truncates an ISO-8601 timestamp to its date-only
// portion before the record enters the registry.
func normalizeDate(a Activity) Activity {
	if i := strings.IndexByte(a.Date, 'T'); i >= 0 {
		a.Date = a.Date[:i]
	}
	return a
}

// expandDate turns a date-only value back into a full timestamp for
// submission. Values that already carry a time portion pass through.
func expandDate(d string) string {
	if d == "" || strings.ContainsRune(d, 'T') {
		return d
	}
	return d + "T00:00:00Z"
}
