package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/budgetwise/internal/metrics"
)

// recordingObserver keeps every use-case event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fakeRecorder struct {
	solves []metrics.Solve
	err    error
}

func (f *fakeRecorder) ObserveSolve(s metrics.Solve) error {
	f.solves = append(f.solves, s)
	return f.err
}

func floatPtr(v float64) *float64 { return &v }
