package domain

import "time"

// WorkSession is the record of one completed work interval. ID is zero until
// the session store assigns the row id.
type WorkSession struct {
	ID              int64
	StartedAt       time.Time
	CompletedAt     time.Time
	DurationSeconds int64
}

// NewWorkSession builds a record for an interval that ran from startedAt to
// completedAt. Both instants are normalized to UTC and the duration is
// truncated to whole seconds.
func NewWorkSession(startedAt, completedAt time.Time) WorkSession {
	startedAt = startedAt.UTC()
	completedAt = completedAt.UTC()
	return WorkSession{
		StartedAt:       startedAt,
		CompletedAt:     completedAt,
		DurationSeconds: int64(completedAt.Sub(startedAt) / time.Second),
	}
}

// StartOfDay returns local midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
