package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommand    EventType = "command"
	EventTransition EventType = "transition"
	EventAction     EventType = "action"
	EventSync       EventType = "sync"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent is emitted once per dispatched command.
type CommandEvent struct {
	EventBase
	Command Command `json:"command"`
	// Handled is false when no region had a matching transition.
	Handled bool `json:"handled"`
}

// TransitionEvent is emitted whenever a region changes value, either through
// a table transition or through re-projection from the document.
type TransitionEvent struct {
	EventBase
	Region  Region     `json:"region"`
	From    StateValue `json:"from"`
	To      StateValue `json:"to"`
	Command Command    `json:"command,omitempty"`
}

// ActionRunEvent reports a bound action that finished running.
type ActionRunEvent struct {
	EventBase
	Action   string        `json:"action"`
	Region   Region        `json:"region"`
	Command  Command       `json:"command"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for coordinator observability.
type LifecycleHooks struct {
	OnCommand    func(context.Context, *CommandEvent)
	OnTransition func(context.Context, *TransitionEvent)
	OnAction     func(context.Context, *ActionRunEvent)
}

// Merge returns hooks that call h first and then o.
func (h LifecycleHooks) Merge(o LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCommand:    chain(h.OnCommand, o.OnCommand),
		OnTransition: chain(h.OnTransition, o.OnTransition),
		OnAction:     chain(h.OnAction, o.OnAction),
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
