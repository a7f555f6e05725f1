package tui

import (
	"strings"
	"testing"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestButtonActive(t *testing.T) {
	snap := domain.Snapshot{
		domain.RegionBold:    domain.StateActive,
		domain.RegionHeading: domain.StateHeading2,
		domain.RegionLayout:  domain.StateParagraph,
	}

	lit := map[string]bool{}
	for _, b := range Buttons {
		lit[b.Label] = b.Active(snap)
	}

	assert.True(t, lit["B"])
	assert.True(t, lit["H2"])
	assert.False(t, lit["H1"])
	assert.False(t, lit["I"])
	assert.False(t, lit["1."])
}

func TestPlainToolbar(t *testing.T) {
	snap := domain.Snapshot{
		domain.RegionItalic: domain.StateActive,
		domain.RegionLayout: domain.StateBulleted,
	}

	out := PlainToolbar(snap)
	assert.Contains(t, out, "[I]")
	assert.Contains(t, out, "[•]")
	assert.Contains(t, out, " B ")
	assert.Equal(t, 2, strings.Count(out, "["))
}

func TestToolbarContainsEveryLabel(t *testing.T) {
	out := Toolbar(domain.Snapshot{})
	for _, b := range Buttons {
		assert.Contains(t, out, b.Label)
	}
}

func TestPrintBanner(t *testing.T) {
	var sb strings.Builder
	PrintBanner(&sb, "1.2.3\n")
	assert.Contains(t, sb.String(), "v1.2.3")
}
