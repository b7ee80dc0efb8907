package repository

import "time"

// formatTimestamp renders t as RFC3339 in UTC. Every stored timestamp shares
// the Z offset, so textual order in SQL matches chronological order.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
