package logging

import (
	"context"
	"log/slog"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Hooks returns lifecycle hooks that log every machine event at debug level.
func Hooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			logger.DebugContext(ctx, "command", "command", e.Command, "handled", e.Handled)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, string(e.Type),
				"region", e.Region,
				"from", e.From,
				"to", e.To,
				"command", e.Command,
			)
		},
		OnAction: func(ctx context.Context, e *domain.ActionRunEvent) {
			logger.DebugContext(ctx, "action",
				"action", e.Action,
				"region", e.Region,
				"duration", e.Duration,
			)
		},
	}
}
