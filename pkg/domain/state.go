package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Region names one independent sub-machine of the coordinator.
type Region string

const (
	RegionBold      Region = "bold"
	RegionItalic    Region = "italic"
	RegionUnderline Region = "underlined"
	RegionQuote     Region = "quoted"
	RegionCode      Region = "code"
	RegionLayout    Region = "line_break"
	RegionHeading   Region = "heading"
)

// StateValue is the current state of a single region.
type StateValue string

const (
	StateActive   StateValue = "active"
	StateInactive StateValue = "inactive"

	StateParagraph StateValue = "paragraph"
	StateNumbered  StateValue = "numbers"
	StateBulleted  StateValue = "bullets"

	StateNone     StateValue = "none"
	StateHeading1 StateValue = "heading1"
	StateHeading2 StateValue = "heading2"
)

// Snapshot is the value of every region at a point in time.
// It is a plain map; callers receive copies and may keep them.
type Snapshot map[Region]StateValue

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Matches reports whether region r currently holds value v.
func (s Snapshot) Matches(r Region, v StateValue) bool {
	return s[r] == v
}

func (s Snapshot) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, s[Region(k)]))
	}
	return strings.Join(parts, " ")
}
