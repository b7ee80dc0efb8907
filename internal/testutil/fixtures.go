package testutil

import (
	"time"

	"github.com/alexanderramin/pocketflow/internal/domain"
)

// WorkSessionOption adjusts a fixture built by NewTestWorkSession.
type WorkSessionOption func(*domain.WorkSession)

func WithStartedAt(t time.Time) WorkSessionOption {
	return func(s *domain.WorkSession) {
		d := s.CompletedAt.Sub(s.StartedAt)
		s.StartedAt = t.UTC()
		s.CompletedAt = t.UTC().Add(d)
	}
}

func WithDurationSeconds(n int64) WorkSessionOption {
	return func(s *domain.WorkSession) {
		s.CompletedAt = s.StartedAt.Add(time.Duration(n) * time.Second)
		s.DurationSeconds = n
	}
}

// NewTestWorkSession returns a 25-minute session that started an hour ago.
func NewTestWorkSession(opts ...WorkSessionOption) *domain.WorkSession {
	start := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	s := domain.NewWorkSession(start, start.Add(25*time.Minute))
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}
