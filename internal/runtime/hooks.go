package runtime

import (
	"context"
	"time"

	"github.com/aretw0/inkwell/pkg/domain"
)

func (e *Engine) emitCommand(ctx context.Context, cmd domain.Command, handled bool) {
	if e.hooks.OnCommand == nil {
		return
	}
	e.hooks.OnCommand(ctx, &domain.CommandEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommand},
		Command:   cmd,
		Handled:   handled,
	})
}

func (e *Engine) emitTransition(ctx context.Context, r domain.Region, from, to domain.StateValue, cmd domain.Command) {
	if e.hooks.OnTransition == nil {
		return
	}
	typ := domain.EventTransition
	if cmd == "" {
		typ = domain.EventSync
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Region:    r,
		From:      from,
		To:        to,
		Command:   cmd,
	})
}

func (e *Engine) emitAction(ctx context.Context, ev domain.ActionEvent, took time.Duration) {
	if e.hooks.OnAction == nil {
		return
	}
	e.hooks.OnAction(ctx, &domain.ActionRunEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAction},
		Action:    ev.Action,
		Region:    ev.Region,
		Command:   ev.Command,
		Duration:  took,
	})
}
