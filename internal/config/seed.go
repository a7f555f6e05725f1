package config

import (
	"fmt"
	"os"

	"github.com/aretw0/inkwell/pkg/domain"
	"gopkg.in/yaml.v3"
)

// seedNode is the file form of a document node. Mark flags match
// case-insensitively, so both "bold" and "BOLD" are accepted.
type seedNode struct {
	Type      string     `mapstructure:"type"`
	Text      string     `mapstructure:"text"`
	Bold      bool       `mapstructure:"bold"`
	Italic    bool       `mapstructure:"italic"`
	Underline bool       `mapstructure:"underline"`
	Code      bool       `mapstructure:"code"`
	Marks     []string   `mapstructure:"marks"`
	Children  []seedNode `mapstructure:"children"`
}

// LoadSeed reads a seed document from a YAML or JSON file.
func LoadSeed(path string) ([]domain.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	value, err := DecodeSeed(data)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", path, err)
	}
	return value, nil
}

// DecodeSeed decodes a list of top-level blocks.
func DecodeSeed(data []byte) ([]domain.Node, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var nodes []seedNode
	if err := decode(raw, &nodes, true); err != nil {
		return nil, err
	}

	value := make([]domain.Node, 0, len(nodes))
	for i, n := range nodes {
		v, err := n.toNode()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		value = append(value, v)
	}
	return value, nil
}

func (n seedNode) toNode() (domain.Node, error) {
	if n.Type == "" {
		marks := domain.NewMarkSet()
		marks = marks.Set(domain.MarkBold, n.Bold)
		marks = marks.Set(domain.MarkItalic, n.Italic)
		marks = marks.Set(domain.MarkUnderline, n.Underline)
		marks = marks.Set(domain.MarkCode, n.Code)
		for _, name := range n.Marks {
			m, err := domain.ParseMark(name)
			if err != nil {
				return domain.Node{}, err
			}
			marks = marks.With(m)
		}
		if len(n.Children) > 0 {
			return domain.Node{}, fmt.Errorf("text run %q has children", n.Text)
		}
		return domain.Node{Text: n.Text, Marks: marks}, nil
	}

	kind := domain.BlockKind(n.Type)
	if !kind.Valid() {
		return domain.Node{}, fmt.Errorf("%w: %q", domain.ErrUnknownBlockKind, n.Type)
	}
	out := domain.Node{Kind: kind, Children: make([]domain.Node, 0, len(n.Children))}
	for i, c := range n.Children {
		v, err := c.toNode()
		if err != nil {
			return domain.Node{}, fmt.Errorf("child %d: %w", i, err)
		}
		out.Children = append(out.Children, v)
	}
	return out, nil
}
