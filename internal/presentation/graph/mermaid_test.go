package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/inkwell/internal/presentation/graph"
	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/dsl"
)

func testDefinition() domain.Definition {
	b := dsl.New("format")
	b.Toggle(domain.RegionBold, domain.CmdToggleBold).Do("toggleMark:bold")
	b.Choice(domain.RegionHeading, domain.StateNone).
		Option(domain.StateHeading1, domain.CmdSetHeading1, "toggleBlock:heading-one").
		Clear(domain.CmdClearHeading)
	return b.MustBuild()
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(testDefinition(), nil)

	contains := []string{
		"stateDiagram-v2",
		"state format {",
		"state bold {",
		"[*] --> bold_inactive",
		"bold_inactive --> bold_active : TOGGLE_BOLD / toggleMark#58;bold",
		"        --\n",
		"state heading {",
		"heading_heading1 --> heading_none : CLEAR_HEADING / toggleBlock#58;heading-one",
	}
	for _, c := range contains {
		if !strings.Contains(out, c) {
			t.Errorf("Expected output to contain %q, got:\n%s", c, out)
		}
	}

	if strings.Contains(out, "classDef") {
		t.Error("Did not expect overlay styles without an overlay")
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	overlay := &graph.GraphOverlay{Current: domain.Snapshot{
		domain.RegionBold:    domain.StateActive,
		domain.RegionHeading: domain.StateNone,
	}}

	out := graph.GenerateMermaid(testDefinition(), overlay)

	for _, c := range []string{
		"classDef current",
		"class bold_active current",
		"class heading_none current",
	} {
		if !strings.Contains(out, c) {
			t.Errorf("Expected output to contain %q, got:\n%s", c, out)
		}
	}
	if strings.Contains(out, "class bold_inactive current") {
		t.Error("Inactive state should not be highlighted")
	}
}
