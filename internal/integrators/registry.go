package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/threebody/internal/dynamo"
)

// Default is the integrator the display firmware uses.
const Default = "euler"

var registry = map[string]func() dynamo.Integrator{
	"euler":    func() dynamo.Integrator { return NewSemiImplicitEuler() },
	"leapfrog": func() dynamo.Integrator { return NewLeapfrog() },
}

// Get returns a fresh integrator by name.
func Get(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
