package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	Current domain.Snapshot
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for a parallel machine.
// Each region becomes a composite state; regions are separated by the
// concurrency divider. Transitions are labelled with their command and,
// when bound, their actions.
// With an overlay, the current value of every region is highlighted.
func GenerateMermaid(def domain.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	root := sanitizeMermaidID(def.ID)
	if root == "" {
		root = "machine"
	}
	sb.WriteString(fmt.Sprintf("    state %s {\n", root))

	for i, r := range def.Regions {
		if i > 0 {
			sb.WriteString("        --\n")
		}
		regionID := sanitizeMermaidID(string(r.ID))
		sb.WriteString(fmt.Sprintf("        state %s {\n", regionID))
		sb.WriteString(fmt.Sprintf("            [*] --> %s\n", stateID(r.ID, r.Initial)))

		for _, s := range r.States {
			from := stateID(r.ID, s.Value)
			sb.WriteString(fmt.Sprintf("            %s : %s\n", from, s.Value))
			for _, t := range s.On {
				label := string(t.Event)
				if len(t.Actions) > 0 {
					label += " / " + strings.Join(t.Actions, ", ")
				}
				sb.WriteString(fmt.Sprintf("            %s --> %s : %s\n", from, stateID(r.ID, t.Target), escapeLabel(label)))
			}
		}
		sb.WriteString("        }\n")
	}
	sb.WriteString("    }\n")

	if overlay != nil && len(overlay.Current) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, r := range def.Regions {
			if v, ok := overlay.Current[r.ID]; ok {
				sb.WriteString(fmt.Sprintf("    class %s current\n", stateID(r.ID, v)))
			}
		}
	}

	return sb.String()
}

// stateID qualifies a value with its region; values such as "active" repeat across regions.
func stateID(r domain.Region, v domain.StateValue) string {
	return sanitizeMermaidID(string(r) + "_" + string(v))
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, ":", "#58;")
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
