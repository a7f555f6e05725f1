package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/inkwell/internal/runtime"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/dsl"
	"github.com/aretw0/inkwell/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	action string
	ev     domain.ActionEvent
}

func recorder(calls *[]call) domain.Action {
	return func(_ context.Context, ev domain.ActionEvent) {
		*calls = append(*calls, call{action: ev.Action, ev: ev})
	}
}

func testMachine(t *testing.T) (*runtime.Engine, *[]call) {
	t.Helper()

	var calls []call
	reg := registry.NewRegistry()
	for _, name := range []string{"bold", "italic", "numbered", "bulleted", "log"} {
		reg.Register(name, recorder(&calls))
	}

	b := dsl.New("test")
	b.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("bold").OnDeactivate("log")
	b.Toggle(domain.RegionItalic, domain.CmdToggleItalic).Do("italic")
	b.Choice(domain.RegionLayout, domain.StateParagraph).
		Option(domain.StateNumbered, domain.CmdSetNumbered, "numbered").
		Option(domain.StateBulleted, domain.CmdSetBulleted, "bulleted").
		Clear(domain.CmdSetParagraph)

	e, err := runtime.NewEngine(b.MustBuild(), runtime.WithRegistry(reg))
	require.NoError(t, err)
	return e, &calls
}

func TestEngine_InitialState(t *testing.T) {
	e, _ := testMachine(t)

	snap := e.Snapshot()
	assert.Equal(t, domain.Snapshot{
		domain.RegionBold:   domain.StateInactive,
		domain.RegionItalic: domain.StateInactive,
		domain.RegionLayout: domain.StateParagraph,
	}, snap)
}

func TestEngine_ToggleRoundTrip(t *testing.T) {
	e, calls := testMachine(t)
	ctx := context.Background()

	snap := e.Dispatch(ctx, domain.CmdToggleBold)
	assert.Equal(t, domain.StateActive, snap[domain.RegionBold])
	assert.Equal(t, domain.StateInactive, snap[domain.RegionItalic], "other regions must not move")

	snap = e.Dispatch(ctx, domain.CmdToggleBold)
	assert.Equal(t, domain.StateInactive, snap[domain.RegionBold])

	require.Len(t, *calls, 3)
	assert.Equal(t, "bold", (*calls)[0].action)
	assert.Equal(t, "bold", (*calls)[1].action)
	assert.Equal(t, "log", (*calls)[2].action)

	// Actions see the state after the region moved.
	assert.Equal(t, domain.StateActive, (*calls)[0].ev.Snapshot[domain.RegionBold])
	assert.Equal(t, domain.StateInactive, (*calls)[0].ev.From)
	assert.Equal(t, domain.StateActive, (*calls)[0].ev.To)
	assert.Equal(t, domain.CmdToggleBold, (*calls)[0].ev.Command)
}

func TestEngine_ChoiceRegion(t *testing.T) {
	e, calls := testMachine(t)
	ctx := context.Background()

	e.Dispatch(ctx, domain.CmdSetNumbered)
	assert.Equal(t, domain.StateNumbered, e.Value(domain.RegionLayout))

	e.Dispatch(ctx, domain.CmdSetBulleted)
	assert.Equal(t, domain.StateBulleted, e.Value(domain.RegionLayout))

	e.Dispatch(ctx, domain.CmdSetBulleted)
	assert.Equal(t, domain.StateParagraph, e.Value(domain.RegionLayout))

	e.Dispatch(ctx, domain.CmdSetNumbered)
	e.Dispatch(ctx, domain.CmdSetParagraph)
	assert.Equal(t, domain.StateParagraph, e.Value(domain.RegionLayout))

	var names []string
	for _, c := range *calls {
		names = append(names, c.action)
	}
	assert.Equal(t, []string{"numbered", "bulleted", "bulleted", "numbered", "numbered"}, names)
}

func TestEngine_UnhandledCommands(t *testing.T) {
	e, calls := testMachine(t)
	ctx := context.Background()

	var events []*domain.CommandEvent
	e2, err := runtime.NewEngine(e.Definition(),
		runtime.WithRegistry(mustRegistry(calls)),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnCommand: func(_ context.Context, ev *domain.CommandEvent) { events = append(events, ev) },
		}),
	)
	require.NoError(t, err)

	before := e2.Snapshot()

	// Unknown to the closed command set.
	assert.Equal(t, before, e2.Dispatch(ctx, domain.Command("MAKE_PURPLE")))
	// Known, but SET_PARAGRAPH from paragraph has no transition.
	assert.Equal(t, before, e2.Dispatch(ctx, domain.CmdSetParagraph))
	// Known, but no region of this machine listens to it.
	assert.Equal(t, before, e2.Dispatch(ctx, domain.CmdToggleCode))

	assert.Empty(t, *calls)
	require.Len(t, events, 3)
	for _, ev := range events {
		assert.False(t, ev.Handled)
	}
}

func mustRegistry(calls *[]call) *registry.Registry {
	reg := registry.NewRegistry()
	for _, name := range []string{"bold", "italic", "numbered", "bulleted", "log"} {
		reg.Register(name, recorder(calls))
	}
	return reg
}

func TestEngine_Hooks(t *testing.T) {
	var (
		transitions []*domain.TransitionEvent
		actions     []*domain.ActionRunEvent
	)
	var calls []call
	b := dsl.New("hooks")
	b.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("bold")

	e, err := runtime.NewEngine(b.MustBuild(),
		runtime.WithRegistry(mustRegistry(&calls)),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(_ context.Context, ev *domain.TransitionEvent) { transitions = append(transitions, ev) },
			OnAction:     func(_ context.Context, ev *domain.ActionRunEvent) { actions = append(actions, ev) },
		}),
	)
	require.NoError(t, err)

	e.Dispatch(context.Background(), domain.CmdToggleBold)

	require.Len(t, transitions, 1)
	assert.Equal(t, domain.EventTransition, transitions[0].Type)
	assert.Equal(t, domain.RegionBold, transitions[0].Region)
	assert.Equal(t, domain.StateInactive, transitions[0].From)
	assert.Equal(t, domain.StateActive, transitions[0].To)

	require.Len(t, actions, 1)
	assert.Equal(t, "bold", actions[0].Action)
	assert.Equal(t, domain.CmdToggleBold, actions[0].Command)
}

func TestEngine_SyncFromProjector(t *testing.T) {
	truth := domain.Snapshot{domain.RegionBold: domain.StateInactive}
	var syncs []*domain.TransitionEvent

	var calls []call
	b := dsl.New("sync")
	b.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("bold")

	e, err := runtime.NewEngine(b.MustBuild(),
		runtime.WithRegistry(mustRegistry(&calls)),
		runtime.WithProjector(func(context.Context) domain.Snapshot { return truth }),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(_ context.Context, ev *domain.TransitionEvent) {
				if ev.Type == domain.EventSync {
					syncs = append(syncs, ev)
				}
			},
		}),
	)
	require.NoError(t, err)
	ctx := context.Background()

	// The action had no effect on the document, so the region is re-derived.
	snap := e.Dispatch(ctx, domain.CmdToggleBold)
	assert.Equal(t, domain.StateInactive, snap[domain.RegionBold])
	require.Len(t, syncs, 1)

	truth[domain.RegionBold] = domain.StateActive
	assert.Equal(t, domain.StateActive, e.Sync(ctx)[domain.RegionBold])

	// Unknown values are ignored.
	truth[domain.RegionBold] = "purple"
	assert.Equal(t, domain.StateActive, e.Sync(ctx)[domain.RegionBold])
}

func TestEngine_SnapshotIsACopy(t *testing.T) {
	e, _ := testMachine(t)

	snap := e.Snapshot()
	snap[domain.RegionBold] = domain.StateActive

	assert.Equal(t, domain.StateInactive, e.Value(domain.RegionBold))
}

func TestValidate(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("known", func(context.Context, domain.ActionEvent) {})

	valid := dsl.New("ok")
	valid.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("known")

	unknownAction := dsl.New("unknown-action")
	unknownAction.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("missing")

	tests := []struct {
		name    string
		def     domain.Definition
		wantErr bool
		is      error
	}{
		{name: "valid", def: valid.MustBuild()},
		{name: "empty", def: domain.Definition{ID: "empty"}, wantErr: true},
		{name: "unknown action", def: unknownAction.MustBuild(), wantErr: true, is: domain.ErrUnknownAction},
		{
			name: "missing initial",
			def: domain.Definition{ID: "m", Regions: []domain.RegionDef{{
				ID: domain.RegionBold, Initial: "nowhere",
				States: []domain.StateDef{{Value: domain.StateInactive}},
			}}},
			wantErr: true,
		},
		{
			name: "undeclared target",
			def: domain.Definition{ID: "m", Regions: []domain.RegionDef{{
				ID: domain.RegionBold, Initial: domain.StateInactive,
				States: []domain.StateDef{{
					Value: domain.StateInactive,
					On:    []domain.Transition{{Event: domain.CmdToggleBold, Target: domain.StateActive}},
				}},
			}}},
			wantErr: true,
		},
		{
			name: "unknown command",
			def: domain.Definition{ID: "m", Regions: []domain.RegionDef{{
				ID: domain.RegionBold, Initial: domain.StateInactive,
				States: []domain.StateDef{{
					Value: domain.StateInactive,
					On:    []domain.Transition{{Event: "MAKE_PURPLE", Target: domain.StateInactive}},
				}},
			}}},
			wantErr: true,
		},
		{
			name: "duplicate region",
			def: domain.Definition{ID: "m", Regions: []domain.RegionDef{
				{ID: domain.RegionBold, Initial: domain.StateInactive, States: []domain.StateDef{{Value: domain.StateInactive}}},
				{ID: domain.RegionBold, Initial: domain.StateInactive, States: []domain.StateDef{{Value: domain.StateInactive}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runtime.Validate(tt.def, reg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "expected %v in %v", tt.is, err)
			}
		})
	}
}

func TestNewEngine_RejectsInvalidDefinition(t *testing.T) {
	b := dsl.New("bad")
	b.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("unregistered")

	_, err := runtime.NewEngine(b.MustBuild())
	require.Error(t, err)

	var defErr *runtime.DefinitionError
	require.True(t, errors.As(err, &defErr))
	assert.Equal(t, domain.RegionBold, defErr.Region)
}
