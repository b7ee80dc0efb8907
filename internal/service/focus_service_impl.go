package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pocketflow/internal/domain"
	"github.com/alexanderramin/pocketflow/internal/repository"
	"github.com/alexanderramin/pocketflow/internal/timer"
)

type focusService struct {
	sessions   repository.SessionRepo
	timer      *timer.Timer
	clock      timer.Clock
	observer   UseCaseObserver
	todayCount int
}

// NewFocusService wraps tm and seeds the daily count from sessions. A failed
// count query is reported to the observer and treated as zero.
func NewFocusService(
	ctx context.Context,
	sessions repository.SessionRepo,
	tm *timer.Timer,
	clock timer.Clock,
	observers ...UseCaseObserver,
) FocusService {
	s := &focusService{
		sessions: sessions,
		timer:    tm,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
	s.todayCount = countToday(ctx, sessions, clock, s.observer)
	return s
}

func (s *focusService) Status() FocusStatus {
	return FocusStatus{Snapshot: s.timer.Snapshot(), TodayCount: s.todayCount}
}

func (s *focusService) Start() (timer.Signals, error) {
	return s.timer.Start(s.clock.Now())
}

func (s *focusService) Pause() error {
	return s.timer.Pause()
}

func (s *focusService) Restart() error {
	return s.timer.Restart()
}

func (s *focusService) StartWork() (timer.Signals, error) {
	return s.timer.StartWork()
}

func (s *focusService) SkipBreak() (timer.Signals, error) {
	return s.timer.SkipBreak(s.clock.Now())
}

func (s *focusService) MinimizeBreak() (timer.Signals, error) {
	return s.timer.MinimizeBreak()
}

func (s *focusService) Tick(ctx context.Context) timer.Signals {
	res := s.timer.Tick(s.clock.Now())
	if res.Completed != nil {
		s.record(ctx, res.Completed)
	}
	return res.Signals
}

// record persists a completed interval. A failed save is logged and not
// retried; the daily count only moves for durable records.
func (s *focusService) record(ctx context.Context, ws *domain.WorkSession) {
	startedAt := time.Now()
	fields := map[string]any{
		"started_at":       ws.StartedAt.Format(time.RFC3339),
		"duration_seconds": ws.DurationSeconds,
	}

	id, err := s.sessions.Save(ctx, ws)
	if err == nil {
		ws.ID = id
		s.todayCount++
		fields["session_id"] = id
		fields["today_count"] = s.todayCount
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "save-work-session",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

type todayService struct {
	sessions repository.SessionRepo
	clock    timer.Clock
	observer UseCaseObserver
}

// NewTodayService creates a TodayService.
func NewTodayService(sessions repository.SessionRepo, clock timer.Clock, observers ...UseCaseObserver) TodayService {
	return &todayService{sessions: sessions, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

func (s *todayService) CountToday(ctx context.Context) int {
	return countToday(ctx, s.sessions, s.clock, s.observer)
}

func countToday(ctx context.Context, sessions repository.SessionRepo, clock timer.Clock, observer UseCaseObserver) int {
	startedAt := time.Now()
	midnight := domain.StartOfDay(clock.Now())
	count, err := sessions.CountSince(ctx, midnight)
	if err != nil {
		count = 0
	}
	observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "count-today",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"since": midnight.Format(time.RFC3339), "count": count},
	})
	return count
}
