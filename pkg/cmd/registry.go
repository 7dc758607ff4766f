package cmd

import "sort"

// DefaultRegistry is the global registry used by adapters.
var DefaultRegistry = NewRegistry()

// Registry stores commands by name and alias. It does not perform
// dispatch; each adapter looks up commands and invokes them with its own
// context.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under its name and any aliases. Usually called
// from init() or adapter setup.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
	if al, ok := Root(c).(Aliaser); ok {
		for _, a := range al.Aliases() {
			r.commands[a] = c
		}
	}
}

// Get returns the command registered under name (or an alias), or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// GetAll returns all registered commands once each, sorted by name.
func (r *Registry) GetAll() []Command {
	seen := make(map[string]bool, len(r.commands))
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
