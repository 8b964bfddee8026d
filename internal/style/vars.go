// Package style holds the styling-variable store the rain renderer reads its
// configuration from, plus loaders for theme files and name=value overrides.
package style

import (
	"fmt"
	"sort"
	"strings"
)

// Vars is an in-memory custom-property store. Names keep their leading "--".
type Vars struct {
	values map[string]string
}

// NewVars returns an empty store.
func NewVars() *Vars {
	return &Vars{values: map[string]string{}}
}

// Get returns the trimmed value for name, or "" when it is unset.
func (v *Vars) Get(name string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.values[name])
}

// Set stores value under name. An empty value removes the variable.
func (v *Vars) Set(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if strings.TrimSpace(value) == "" {
		delete(v.values, name)
		return
	}
	v.values[name] = value
}

// Apply copies every entry of m into the store.
func (v *Vars) Apply(m map[string]string) {
	for name, value := range m {
		v.Set(name, value)
	}
}

// Names lists the variables currently set, sorted.
func (v *Vars) Names() []string {
	names := make([]string, 0, len(v.values))
	for name := range v.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAssignment splits a "name=value" override. A missing "--" prefix is
// added so "matrix-speed=2" and "--matrix-speed=2" are equivalent.
func ParseAssignment(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || name == "--" {
		return "", "", fmt.Errorf("expected name=value, got %q", s)
	}
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return name, strings.TrimSpace(value), nil
}
