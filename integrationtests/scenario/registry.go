package scenario

import (
	"context"
	"sort"
)

// Runner runs a single scenario with the given config.
type Runner func(ctx context.Context, cfg *Config) error

var registry = make(map[string]Runner)

// Register adds a scenario by name. Call from init() in scenario files.
func Register(name string, fn Runner) {
	if _, ok := registry[name]; ok {
		panic("scenario.registry.go: duplicate scenario " + name)
	}
	registry[name] = fn
}

// Names returns the registered scenario names in order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Run runs the named scenario.
func Run(ctx context.Context, name string, cfg *Config) error {
	fn, ok := registry[name]
	if !ok {
		return &UnknownScenarioError{Name: name}
	}
	return fn(ctx, cfg)
}
