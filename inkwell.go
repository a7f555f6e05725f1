package inkwell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/inkwell/internal/logging"
	"github.com/aretw0/inkwell/internal/runtime"
	"github.com/aretw0/inkwell/pkg/document"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/format"
	"github.com/aretw0/inkwell/pkg/ports"
	"github.com/aretw0/inkwell/pkg/registry"
)

// Editor is the high-level entry point for the inkwell library.
// It owns one document, one selection and one format machine for a single
// editing session. An Editor is not safe for concurrent use.
type Editor struct {
	runtime  ports.Coordinator
	doc      *document.Document
	sel      domain.Selection
	actions  *registry.Registry
	value    []domain.Node
	def      *domain.Definition
	strict   bool
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	external map[string]domain.Action
}

var _ ports.CommandDispatcher = (*Editor)(nil)

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Editor) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithValue seeds the document. The default is the demo document.
func WithValue(value []domain.Node) Option {
	return func(e *Editor) {
		e.value = value
	}
}

// WithStrict controls whether a structure change that breaks a document
// invariant panics (the default) or is only logged.
func WithStrict(strict bool) Option {
	return func(e *Editor) {
		e.strict = strict
	}
}

// WithDefinition replaces the format machine. Its actions must be registered
// by the editor or through WithAction.
func WithDefinition(def domain.Definition) Option {
	return func(e *Editor) {
		e.def = &def
	}
}

// WithAction registers an extra action the machine definition may bind.
// Built-in names cannot be overridden.
func WithAction(name string, fn domain.Action) Option {
	return func(e *Editor) {
		if e.external == nil {
			e.external = make(map[string]domain.Action)
		}
		e.external[name] = fn
	}
}

// New initializes an editor over the seed document with every region derived
// from the start of the first text run.
func New(opts ...Option) (*Editor, error) {
	e := &Editor{strict: true}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.value == nil {
		e.value = document.DemoValue()
	}
	if e.def == nil {
		def := FormatDefinition()
		e.def = &def
	}

	doc, err := document.New(e.value,
		document.WithStrict(e.strict),
		document.WithLogger(e.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	e.doc = doc

	if leaves := doc.Leaves(); len(leaves) > 0 {
		e.sel = domain.Caret(domain.Point{Leaf: leaves[0]})
	}

	e.actions = registry.NewRegistry()
	for name, fn := range e.external {
		e.actions.Register(name, fn)
	}
	e.registerActions()

	e.runtime, err = runtime.NewEngine(*e.def,
		runtime.WithRegistry(e.actions),
		runtime.WithProjector(e.project),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger.With("machine", e.def.ID)),
	)
	if err != nil {
		return nil, err
	}
	e.runtime.Sync(context.Background())

	return e, nil
}

func (e *Editor) registerActions() {
	for _, m := range domain.Marks {
		m := m // per-iteration copy (go.mod targets pre-1.22 loop semantics)
		e.actions.Register(MarkAction(m), func(_ context.Context, _ domain.ActionEvent) {
			e.sel = format.ToggleMark(e.doc, e.sel, m)
		})
	}
	for _, kind := range domain.BlockKinds {
		if kind == domain.KindParagraph || kind == domain.KindListItem {
			continue
		}
		kind := kind // per-iteration copy (go.mod targets pre-1.22 loop semantics)
		e.actions.Register(BlockAction(kind), func(_ context.Context, _ domain.ActionEvent) {
			e.sel = format.ToggleBlock(e.doc, e.sel, kind)
		})
	}
	e.actions.Register(ActionLogEvent, func(ctx context.Context, ev domain.ActionEvent) {
		e.logger.InfoContext(ctx, "format event",
			"command", ev.Command,
			"region", ev.Region,
			"from", ev.From,
			"to", ev.To,
		)
	})
}

func (e *Editor) project(context.Context) domain.Snapshot {
	return format.Project(e.doc, e.sel)
}

// Dispatch sends a formatting command to every region and returns the
// resulting snapshot. Unknown commands change nothing.
func (e *Editor) Dispatch(ctx context.Context, cmd domain.Command) domain.Snapshot {
	return e.runtime.Dispatch(ctx, cmd)
}

// Select moves the selection and re-derives every region from the document.
// Pending marks are dropped.
func (e *Editor) Select(ctx context.Context, sel domain.Selection) domain.Snapshot {
	e.doc.ClearPending()
	e.sel = sel
	return e.runtime.Sync(ctx)
}

// SelectText selects the first occurrence of needle inside a single run.
func (e *Editor) SelectText(ctx context.Context, needle string) (domain.Snapshot, error) {
	sel, ok := e.doc.FindText(needle)
	if !ok {
		return e.Snapshot(), fmt.Errorf("text %q not found", needle)
	}
	return e.Select(ctx, sel), nil
}

// InsertText types text at the selection, replacing nothing. On a caret the
// pending marks apply to the new text.
func (e *Editor) InsertText(ctx context.Context, text string) domain.Snapshot {
	e.sel = e.doc.InsertText(e.sel, text)
	return e.runtime.Sync(ctx)
}

// Selection returns the current selection.
func (e *Editor) Selection() domain.Selection {
	return e.sel
}

// Snapshot returns the current value of every region.
func (e *Editor) Snapshot() domain.Snapshot {
	return e.runtime.Snapshot()
}

// Definition returns the format machine definition.
func (e *Editor) Definition() domain.Definition {
	return e.runtime.Definition()
}

// Document returns the underlying document.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Value returns a copy of the document tree.
func (e *Editor) Value() []domain.Node {
	return e.doc.Value()
}

// IsMarkActive reports whether mark is active at the selection.
func (e *Editor) IsMarkActive(mark domain.Mark) bool {
	return format.IsMarkActive(e.doc, e.sel, mark)
}

// IsBlockActive reports whether a block of kind encloses or lies inside the selection.
func (e *Editor) IsBlockActive(kind domain.BlockKind) bool {
	return format.IsBlockActive(e.doc, e.sel, kind)
}
