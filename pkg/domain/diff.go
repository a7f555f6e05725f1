package domain

import "sort"

// RegionChange records one region whose value differs between two snapshots.
type RegionChange struct {
	Region Region     `json:"region"`
	From   StateValue `json:"from,omitempty"`
	To     StateValue `json:"to"`
}

// Diff calculates the regions that changed between oldState and newState.
// If oldState is nil, every region of newState is reported (initial load).
// Changes are sorted by region name so the result is deterministic.
func Diff(oldState, newState Snapshot) []RegionChange {
	if newState == nil {
		return nil
	}

	var changes []RegionChange
	for r, v := range newState {
		prev, ok := oldState[r]
		if ok && prev == v {
			continue
		}
		changes = append(changes, RegionChange{Region: r, From: prev, To: v})
	}

	// Regions dropped from the new snapshot are reported with an empty target.
	for r, v := range oldState {
		if _, ok := newState[r]; !ok {
			changes = append(changes, RegionChange{Region: r, From: v})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Region < changes[j].Region })
	return changes
}
