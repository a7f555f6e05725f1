package domain

import (
	"fmt"
	"strings"
)

// Mark is a boolean style attribute attached to a text run.
type Mark uint8

const (
	MarkBold Mark = iota
	MarkItalic
	MarkUnderline
	MarkCode
)

// Marks lists every mark in canonical order.
var Marks = []Mark{MarkBold, MarkItalic, MarkUnderline, MarkCode}

var markNames = [...]string{
	MarkBold:      "bold",
	MarkItalic:    "italic",
	MarkUnderline: "underline",
	MarkCode:      "code",
}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return fmt.Sprintf("mark(%d)", uint8(m))
}

// ParseMark resolves a mark by name. Matching is case-insensitive so that
// seeds written as {BOLD: true} resolve to MarkBold.
func ParseMark(name string) (Mark, error) {
	for i, n := range markNames {
		if strings.EqualFold(n, name) {
			return Mark(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMark, name)
}

// MarkSet is a set of marks. The zero value is the empty set.
// Marks are orthogonal: any subset may be active at once.
type MarkSet uint8

// NewMarkSet builds a set from the given marks.
func NewMarkSet(marks ...Mark) MarkSet {
	var s MarkSet
	for _, m := range marks {
		s = s.With(m)
	}
	return s
}

// Has reports whether m is in the set.
func (s MarkSet) Has(m Mark) bool { return s&(1<<m) != 0 }

// With returns the set with m added.
func (s MarkSet) With(m Mark) MarkSet { return s | 1<<m }

// Without returns the set with m removed.
func (s MarkSet) Without(m Mark) MarkSet { return s &^ (1 << m) }

// Set returns the set with m added or removed according to value.
func (s MarkSet) Set(m Mark, value bool) MarkSet {
	if value {
		return s.With(m)
	}
	return s.Without(m)
}

// Intersect returns the marks present in both sets.
func (s MarkSet) Intersect(o MarkSet) MarkSet { return s & o }

// Slice returns the marks in canonical order.
func (s MarkSet) Slice() []Mark {
	var out []Mark
	for _, m := range Marks {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s MarkSet) String() string {
	names := make([]string, 0, len(Marks))
	for _, m := range s.Slice() {
		names = append(names, m.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
