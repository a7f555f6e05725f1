package ports

import (
	"context"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Coordinator is the parallel-region format machine as seen by its host.
type Coordinator interface {
	// Dispatch broadcasts cmd to every region. Unknown commands are absorbed.
	Dispatch(ctx context.Context, cmd domain.Command) domain.Snapshot

	// Sync re-derives region state from the document.
	Sync(ctx context.Context) domain.Snapshot

	// Snapshot returns the current value of every region.
	Snapshot() domain.Snapshot

	// Definition returns the machine definition for introspection.
	Definition() domain.Definition
}

// Projector derives a snapshot from document truth.
// Regions missing from the result keep their current value.
type Projector func(ctx context.Context) domain.Snapshot
