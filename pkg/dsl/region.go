package dsl

import "github.com/aretw0/inkwell/pkg/domain"

// ToggleBuilder configures a binary region.
type ToggleBuilder struct {
	region     domain.Region
	cmd        domain.Command
	activate   []string
	deactivate []string
}

// Do binds actions to both directions of the toggle.
func (t *ToggleBuilder) Do(actions ...string) *ToggleBuilder {
	t.activate = append(t.activate, actions...)
	t.deactivate = append(t.deactivate, actions...)
	return t
}

// OnActivate binds actions to the inactive -> active transition only.
func (t *ToggleBuilder) OnActivate(actions ...string) *ToggleBuilder {
	t.activate = append(t.activate, actions...)
	return t
}

// OnDeactivate binds actions to the active -> inactive transition only.
func (t *ToggleBuilder) OnDeactivate(actions ...string) *ToggleBuilder {
	t.deactivate = append(t.deactivate, actions...)
	return t
}

func (t *ToggleBuilder) id() domain.Region { return t.region }

func (t *ToggleBuilder) build() domain.RegionDef {
	return domain.RegionDef{
		ID:      t.region,
		Initial: domain.StateInactive,
		States: []domain.StateDef{
			{
				Value: domain.StateInactive,
				On:    []domain.Transition{{Event: t.cmd, Target: domain.StateActive, Actions: clone(t.activate)}},
			},
			{
				Value: domain.StateActive,
				On:    []domain.Transition{{Event: t.cmd, Target: domain.StateInactive, Actions: clone(t.deactivate)}},
			},
		},
	}
}

type option struct {
	value   domain.StateValue
	cmd     domain.Command
	actions []string
}

// ChoiceBuilder configures an exclusive-choice region.
type ChoiceBuilder struct {
	region  domain.Region
	def     domain.StateValue
	options []option
	clears  []domain.Command
}

// Option adds a value selected by cmd. The actions run on every transition cmd
// triggers: entering the value from anywhere, and leaving it back to the default.
func (c *ChoiceBuilder) Option(value domain.StateValue, cmd domain.Command, actions ...string) *ChoiceBuilder {
	c.options = append(c.options, option{value: value, cmd: cmd, actions: actions})
	return c
}

// Clear adds a command that routes any non-default value back to the default,
// running the actions of the value being left.
func (c *ChoiceBuilder) Clear(cmd domain.Command) *ChoiceBuilder {
	c.clears = append(c.clears, cmd)
	return c
}

func (c *ChoiceBuilder) id() domain.Region { return c.region }

func (c *ChoiceBuilder) build() domain.RegionDef {
	values := []domain.StateValue{c.def}
	for _, o := range c.options {
		values = append(values, o.value)
	}

	r := domain.RegionDef{ID: c.region, Initial: c.def}
	for _, v := range values {
		s := domain.StateDef{Value: v}
		for _, o := range c.options {
			target := o.value
			if v == o.value {
				target = c.def
			}
			s.On = append(s.On, domain.Transition{Event: o.cmd, Target: target, Actions: clone(o.actions)})
		}
		if v != c.def {
			leaving := c.actionsOf(v)
			for _, cmd := range c.clears {
				s.On = append(s.On, domain.Transition{Event: cmd, Target: c.def, Actions: clone(leaving)})
			}
		}
		r.States = append(r.States, s)
	}
	return r
}

func (c *ChoiceBuilder) actionsOf(v domain.StateValue) []string {
	for _, o := range c.options {
		if o.value == v {
			return o.actions
		}
	}
	return nil
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
