package registry_test

import (
	"context"
	"testing"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := registry.NewRegistry()

	calls := 0
	r.Register("count", func(ctx context.Context, ev domain.ActionEvent) { calls++ })

	fn, err := r.Lookup("count")
	require.NoError(t, err)
	fn(context.Background(), domain.ActionEvent{})
	assert.Equal(t, 1, calls)

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestRegistry_Names(t *testing.T) {
	r := registry.NewRegistry()
	noop := func(context.Context, domain.ActionEvent) {}
	r.Register("b", noop)
	r.Register("a", noop)

	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.True(t, r.Has("a"))
	assert.False(t, r.Has("c"))
}
