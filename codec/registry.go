package codec

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownCodec is returned when no factory is registered for an identifier.
var ErrUnknownCodec = errors.New("unknown codec")

// Factory constructs a fresh Codec instance.
type Factory func() (Codec, error)

// Registry maps codec identifiers to factories. The zero value is not
// usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name, replacing any previous registration.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// New constructs a codec for name. An unregistered name or a failing
// factory is a configuration error for the caller.
func (r *Registry) New(name string) (Codec, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	c, err := f()
	if err != nil {
		return nil, fmt.Errorf("codec %q: %w", name, err)
	}
	return c, nil
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry pre-loaded with the builtin codecs.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry.
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}
