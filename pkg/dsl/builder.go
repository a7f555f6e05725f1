package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/inkwell/pkg/domain"
)

// regionBuilder is implemented by every region flavour.
type regionBuilder interface {
	id() domain.Region
	build() domain.RegionDef
}

// Builder manages the machine construction. Regions keep insertion order,
// which is also the order they evaluate a dispatched command in.
type Builder struct {
	name    string
	regions []regionBuilder
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Toggle adds a binary region driven by cmd.
// If the region already exists as a toggle, the existing builder is returned.
func (b *Builder) Toggle(region domain.Region, cmd domain.Command) *ToggleBuilder {
	for _, r := range b.regions {
		if tb, ok := r.(*ToggleBuilder); ok && tb.region == region {
			return tb
		}
	}
	tb := &ToggleBuilder{region: region, cmd: cmd}
	b.regions = append(b.regions, tb)
	return tb
}

// Choice adds an exclusive-choice region resting in def.
// If the region already exists as a choice, the existing builder is returned.
func (b *Builder) Choice(region domain.Region, def domain.StateValue) *ChoiceBuilder {
	for _, r := range b.regions {
		if cb, ok := r.(*ChoiceBuilder); ok && cb.region == region {
			return cb
		}
	}
	cb := &ChoiceBuilder{region: region, def: def}
	b.regions = append(b.regions, cb)
	return cb
}

// Build compiles the regions into a machine definition.
func (b *Builder) Build() (domain.Definition, error) {
	def := domain.Definition{ID: b.name}
	seen := make(map[domain.Region]bool)
	var errs []error

	for _, r := range b.regions {
		id := r.id()
		if id == "" {
			errs = append(errs, errors.New("region with empty id"))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("region %q declared twice", id))
			continue
		}
		seen[id] = true
		def.Regions = append(def.Regions, r.build())
	}

	if err := errors.Join(errs...); err != nil {
		return domain.Definition{}, fmt.Errorf("failed to build machine %q: %w", b.name, err)
	}
	return def, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() domain.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
