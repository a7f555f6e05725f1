package runtime

import (
	"context"
	"time"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Dispatch broadcasts cmd to every region in definition order.
// A region with a matching transition moves to its target and then runs the
// transition's actions, once each, before the next region is evaluated.
// Commands outside the closed set, or with no matching transition anywhere,
// leave every region unchanged.
// When a projector is configured and something moved, region state is
// re-derived from the document before Dispatch returns.
func (e *Engine) Dispatch(ctx context.Context, cmd domain.Command) domain.Snapshot {
	if !cmd.Valid() {
		e.logger.Debug("ignoring unknown command", "command", cmd)
		e.emitCommand(ctx, cmd, false)
		return e.Snapshot()
	}

	handled := false
	for _, r := range e.def.Regions {
		from := e.state[r.ID]
		t, ok := r.Lookup(from, cmd)
		if !ok {
			continue
		}
		handled = true

		e.state[r.ID] = t.Target
		e.logger.Debug("region transition", "region", r.ID, "command", cmd, "from", from, "to", t.Target)
		e.emitTransition(ctx, r.ID, from, t.Target, cmd)

		for _, name := range t.Actions {
			e.runAction(ctx, name, domain.ActionEvent{
				Action:   name,
				Command:  cmd,
				Region:   r.ID,
				From:     from,
				To:       t.Target,
				Snapshot: e.state.Clone(),
			})
		}
	}

	e.emitCommand(ctx, cmd, handled)

	if handled {
		return e.Sync(ctx)
	}
	return e.Snapshot()
}

func (e *Engine) runAction(ctx context.Context, name string, ev domain.ActionEvent) {
	fn, err := e.actions.Lookup(name)
	if err != nil {
		// Validate rejects definitions with unregistered actions, so this only
		// happens when the registry was changed after the engine was built.
		e.logger.Error("action vanished from registry", "action", name, "err", err)
		return
	}

	start := time.Now()
	fn(ctx, ev)
	e.emitAction(ctx, ev, time.Since(start))
}
