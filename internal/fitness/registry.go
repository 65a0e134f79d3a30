package fitness

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a gene instance.
type Factory func() Gene

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	Register("holes", func() Gene { return Holes{} })
	Register("max_height", func() Gene { return MaxHeight{} })
	Register("bumpiness", func() Gene { return Bumpiness{} })
}

// Register adds a gene under a unique name.
// Panics if a gene with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("fitness: gene %q already registered", name))
	}
	factories[name] = f
}

// Names returns all registered gene names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a gene by name.
func Create(name string) (Gene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("fitness: unknown gene %q", name)
	}
	return f(), nil
}

// Exists checks if a gene with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
