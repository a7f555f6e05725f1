package runtime

import (
	"errors"
	"fmt"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/aretw0/inkwell/pkg/registry"
)

// DefinitionError describes one problem in a machine definition.
type DefinitionError struct {
	Region domain.Region
	State  domain.StateValue
	Reason string
	Err    error
}

func (e *DefinitionError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("region '%s' state '%s': %s", e.Region, e.State, e.Reason)
	}
	return fmt.Sprintf("region '%s': %s", e.Region, e.Reason)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// Validate checks that a definition is closed: every region has its initial
// state, every transition targets a declared state and a known command, and
// every action name resolves in the registry.
func Validate(def domain.Definition, actions *registry.Registry) error {
	if len(def.Regions) == 0 {
		return fmt.Errorf("machine '%s' has no regions", def.ID)
	}

	var errs []error
	seen := make(map[domain.Region]bool)

	for _, r := range def.Regions {
		if seen[r.ID] {
			errs = append(errs, &DefinitionError{Region: r.ID, Reason: "declared twice"})
			continue
		}
		seen[r.ID] = true

		if _, ok := r.State(r.Initial); !ok {
			errs = append(errs, &DefinitionError{Region: r.ID, Reason: fmt.Sprintf("initial state '%s' not declared", r.Initial)})
		}

		for _, s := range r.States {
			events := make(map[domain.Command]bool)
			for _, t := range s.On {
				if !t.Event.Valid() {
					errs = append(errs, &DefinitionError{Region: r.ID, State: s.Value, Reason: fmt.Sprintf("unknown command '%s'", t.Event)})
				}
				if events[t.Event] {
					errs = append(errs, &DefinitionError{Region: r.ID, State: s.Value, Reason: fmt.Sprintf("command '%s' handled twice", t.Event)})
				}
				events[t.Event] = true

				if _, ok := r.State(t.Target); !ok {
					errs = append(errs, &DefinitionError{Region: r.ID, State: s.Value, Reason: fmt.Sprintf("target '%s' not declared", t.Target)})
				}
				for _, name := range t.Actions {
					if _, err := actions.Lookup(name); err != nil {
						errs = append(errs, &DefinitionError{Region: r.ID, State: s.Value, Reason: err.Error(), Err: err})
					}
				}
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid machine '%s': %w", def.ID, err)
	}
	return nil
}
