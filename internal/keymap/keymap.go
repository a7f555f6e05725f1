// Package keymap binds hotkey chords such as "mod+b" to formatting commands.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/inkwell/pkg/domain"
)

// Binding pairs a normalized chord with the command it dispatches.
type Binding struct {
	Key     string
	Command domain.Command
}

// Keymap resolves chords to commands.
type Keymap struct {
	bindings map[string]domain.Command
}

// Default returns the mark hotkeys.
func Default() *Keymap {
	return &Keymap{bindings: map[string]domain.Command{
		"mod+b": domain.CmdToggleBold,
		"mod+i": domain.CmdToggleItalic,
		"mod+u": domain.CmdToggleUnderline,
		"mod+`": domain.CmdToggleCode,
	}}
}

// New returns the default keymap extended with bindings (chord -> command name).
// A binding to an empty command removes the chord.
func New(bindings map[string]string) (*Keymap, error) {
	k := Default()
	keys := make([]string, 0, len(bindings))
	for key := range bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := strings.TrimSpace(bindings[key])
		if name == "" {
			k.Unbind(key)
			continue
		}
		if err := k.Bind(key, domain.Command(strings.ToUpper(name))); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Bind maps key to cmd, replacing any previous binding.
func (k *Keymap) Bind(key string, cmd domain.Command) error {
	chord, err := Normalize(key)
	if err != nil {
		return err
	}
	if !cmd.Valid() {
		return fmt.Errorf("hotkey %q: unknown command %q", key, cmd)
	}
	k.bindings[chord] = cmd
	return nil
}

// Unbind removes key.
func (k *Keymap) Unbind(key string) {
	if chord, err := Normalize(key); err == nil {
		delete(k.bindings, chord)
	}
}

// Lookup returns the command bound to key.
func (k *Keymap) Lookup(key string) (domain.Command, bool) {
	chord, err := Normalize(key)
	if err != nil {
		return "", false
	}
	cmd, ok := k.bindings[chord]
	return cmd, ok
}

// Bindings returns every binding sorted by chord.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for key, cmd := range k.bindings {
		out = append(out, Binding{Key: key, Command: cmd})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

var modifierOrder = map[string]int{"mod": 0, "alt": 1, "shift": 2}

// Normalize lowercases a chord, folds ctrl/cmd/meta into "mod" and orders
// modifiers as mod, alt, shift. The last segment is the key itself.
func Normalize(key string) (string, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), "+")
	if len(parts) < 2 {
		return "", fmt.Errorf("hotkey %q: want modifier+key", key)
	}

	base := parts[len(parts)-1]
	if base == "" {
		return "", fmt.Errorf("hotkey %q: missing key", key)
	}

	seen := make(map[string]bool)
	mods := make([]string, 0, len(parts)-1)
	for _, m := range parts[:len(parts)-1] {
		switch strings.TrimSpace(m) {
		case "mod", "ctrl", "control", "cmd", "meta":
			m = "mod"
		case "alt", "option", "opt":
			m = "alt"
		case "shift":
			m = "shift"
		default:
			return "", fmt.Errorf("hotkey %q: unknown modifier %q", key, m)
		}
		if !seen[m] {
			seen[m] = true
			mods = append(mods, m)
		}
	}
	sort.Slice(mods, func(i, j int) bool { return modifierOrder[mods[i]] < modifierOrder[mods[j]] })

	return strings.Join(append(mods, base), "+"), nil
}
