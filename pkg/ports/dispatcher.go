package ports

import (
	"context"

	"github.com/aretw0/inkwell/pkg/domain"
)

// CommandDispatcher is what input front-ends (hotkeys, scripts, TUI) talk to.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd domain.Command) domain.Snapshot
}
