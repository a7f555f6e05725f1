package runtime

import (
	"context"
	"log/slog"

	"github.com/aretw0/inkwell/internal/logging"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/ports"
	"github.com/aretw0/inkwell/pkg/registry"
)

// Engine is the parallel-region format machine.
// It holds one value per region and routes every dispatched command to all of them.
// An Engine belongs to a single editing session and is not safe for concurrent use.
type Engine struct {
	def       domain.Definition
	state     domain.Snapshot
	actions   *registry.Registry
	projector ports.Projector
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithRegistry sets the registry that transition action names resolve against.
func WithRegistry(r *registry.Registry) EngineOption {
	return func(e *Engine) {
		e.actions = r
	}
}

// WithProjector sets the function that derives region state from the document.
// Without one, region state follows the transition tables alone.
func WithProjector(p ports.Projector) EngineOption {
	return func(e *Engine) {
		e.projector = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine validates def and creates an engine with every region at its initial value.
func NewEngine(def domain.Definition, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		def:     def,
		state:   def.InitialSnapshot(),
		actions: registry.NewRegistry(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := Validate(def, e.actions); err != nil {
		return nil, err
	}
	return e, nil
}

// Snapshot returns a copy of the current value of every region.
func (e *Engine) Snapshot() domain.Snapshot {
	return e.state.Clone()
}

// Value returns the current value of one region.
func (e *Engine) Value(r domain.Region) domain.StateValue {
	return e.state[r]
}

// Definition returns the machine definition.
func (e *Engine) Definition() domain.Definition {
	return e.def
}

// Sync replaces region values with the projector's view of the document.
// Regions the projector does not report, or reports with an unknown value,
// keep their current value.
func (e *Engine) Sync(ctx context.Context) domain.Snapshot {
	if e.projector == nil {
		return e.Snapshot()
	}

	projected := e.projector(ctx)
	for _, r := range e.def.Regions {
		v, ok := projected[r.ID]
		if !ok || v == e.state[r.ID] {
			continue
		}
		if _, known := r.State(v); !known {
			e.logger.Warn("projector reported unknown state", "region", r.ID, "value", v)
			continue
		}
		from := e.state[r.ID]
		e.state[r.ID] = v
		e.logger.Debug("region re-derived", "region", r.ID, "from", from, "to", v)
		e.emitTransition(ctx, r.ID, from, v, "")
	}
	return e.Snapshot()
}

var _ ports.Coordinator = (*Engine)(nil)
