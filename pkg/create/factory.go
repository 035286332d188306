package create

import (
	"fmt"
	"sort"
	"sync"
)

// Ctor constructs one product instance. Construction must not fail once
// the tag has been resolved; fallible setup belongs in the caller.
type Ctor[T any] func() T

// Factory maps variant tags to constructors. The zero value is not
// usable; call NewFactory.
//
// An abstract factory falls out of the same type: register factories
// whose product type is itself an interface producing a consistent
// bundle (see internal/furniture).
type Factory[T any] struct {
	mu    sync.RWMutex
	ctors map[string]Ctor[T]
}

// NewFactory returns an empty factory.
func NewFactory[T any]() *Factory[T] {
	return &Factory[T]{ctors: make(map[string]Ctor[T])}
}

// Register binds tag to fn. Registering the same tag again overwrites
// the earlier binding (last write wins). A nil fn removes the binding.
func (f *Factory[T]) Register(tag string, fn Ctor[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if fn == nil {
		delete(f.ctors, tag)
		return
	}
	f.ctors[tag] = fn
}

// Create resolves tag and returns a newly constructed product.
// An unregistered tag yields ErrUnknownVariant.
func (f *Factory[T]) Create(tag string) (T, error) {
	f.mu.RLock()
	fn, ok := f.ctors[tag]
	f.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("create %q: %w", tag, ErrUnknownVariant)
	}
	return fn(), nil
}

// Has reports whether tag is registered.
func (f *Factory[T]) Has(tag string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.ctors[tag]
	return ok
}

// Variants returns all registered tags in sorted order.
func (f *Factory[T]) Variants() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	tags := make([]string, 0, len(f.ctors))
	for tag := range f.ctors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
