package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	c := New()
	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnCommand(ctx, &domain.CommandEvent{Command: domain.CmdToggleBold, Handled: true})
	hooks.OnCommand(ctx, &domain.CommandEvent{Command: domain.CmdToggleBold, Handled: true})
	hooks.OnCommand(ctx, &domain.CommandEvent{Command: "NOPE"})

	hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Type: domain.EventTransition},
		Region:    domain.RegionBold,
		To:        domain.StateActive,
	})
	hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: domain.EventBase{Type: domain.EventSync},
		Region:    domain.RegionBold,
		To:        domain.StateInactive,
	})

	hooks.OnAction(ctx, &domain.ActionRunEvent{Action: "toggleMark:bold", Duration: time.Millisecond})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.commands.WithLabelValues("TOGGLE_BOLD", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commands.WithLabelValues("NOPE", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("bold", "active", "command")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("bold", "inactive", "sync")))

	expected := `
# HELP inkwell_commands_total Total number of dispatched commands
# TYPE inkwell_commands_total counter
inkwell_commands_total{command="NOPE",handled="false"} 1
inkwell_commands_total{command="TOGGLE_BOLD",handled="true"} 2
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "inkwell_commands_total"))

	count, err := testutil.GatherAndCount(c.Registry(), "inkwell_action_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
