package controllers

import "time"

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD value that binding already checked.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}
