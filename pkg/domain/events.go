package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPhaseEnter EventType = "phase_enter"
	EventMotion     EventType = "motion"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// PhaseEvent is emitted when the orchestrator enters a phase.
type PhaseEvent struct {
	EventBase
	Phase     Phase `json:"phase"`
	PathIndex int   `json:"path_index"`
}

// MotionEvent is emitted after every planned motion, executed or not.
type MotionEvent struct {
	EventBase
	Phase     Phase         `json:"phase"`
	PathIndex int           `json:"path_index"`
	Waypoints int           `json:"waypoints"`
	Fraction  float64       `json:"fraction"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for orchestrator observability.
type LifecycleHooks struct {
	OnPhaseEnter func(context.Context, *PhaseEvent)
	OnMotion     func(context.Context, *MotionEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnPhaseEnter: chain(h.OnPhaseEnter, other.OnPhaseEnter),
		OnMotion:     chain(h.OnMotion, other.OnMotion),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
