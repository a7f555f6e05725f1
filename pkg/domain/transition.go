package domain

// Transition moves a region from its current state to Target when Event is dispatched.
type Transition struct {
	Event  Command    `json:"event" yaml:"event"`
	Target StateValue `json:"target" yaml:"target"`

	// Actions are names resolved against the action registry.
	// They run in order, once each, after the region has moved.
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// StateDef lists the outgoing transitions of one state.
type StateDef struct {
	Value StateValue   `json:"value" yaml:"value"`
	On    []Transition `json:"on,omitempty" yaml:"on,omitempty"`
}

// RegionDef is one independent sub-machine: a closed set of states and a transition table.
type RegionDef struct {
	ID      Region     `json:"id" yaml:"id"`
	Initial StateValue `json:"initial" yaml:"initial"`
	States  []StateDef `json:"states" yaml:"states"`
}

// State returns the definition of v, if any.
func (r RegionDef) State(v StateValue) (StateDef, bool) {
	for _, s := range r.States {
		if s.Value == v {
			return s, true
		}
	}
	return StateDef{}, false
}

// Lookup returns the transition taken from state v on event e.
func (r RegionDef) Lookup(v StateValue, e Command) (Transition, bool) {
	s, ok := r.State(v)
	if !ok {
		return Transition{}, false
	}
	for _, t := range s.On {
		if t.Event == e {
			return t, true
		}
	}
	return Transition{}, false
}

// Definition is a parallel machine: every region receives every event.
// Regions are evaluated in slice order.
type Definition struct {
	ID      string      `json:"id" yaml:"id"`
	Regions []RegionDef `json:"regions" yaml:"regions"`
}

// Region returns the definition of region id, if any.
func (d Definition) Region(id Region) (RegionDef, bool) {
	for _, r := range d.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return RegionDef{}, false
}

// InitialSnapshot returns every region at its initial state.
func (d Definition) InitialSnapshot() Snapshot {
	s := make(Snapshot, len(d.Regions))
	for _, r := range d.Regions {
		s[r.ID] = r.Initial
	}
	return s
}
