package create

import (
	"fmt"
	"sort"
	"sync"
)

// Cloner produces a deep, independently owned copy of itself. Mutating
// the copy must never affect the original or any other copy.
type Cloner[T any] interface {
	Clone() T
}

// Prototypes stores exemplar instances and answers clone requests,
// avoiding reconstruction of expensive-to-build products. Exemplars are
// owned by the registry; clones are owned by the caller.
type Prototypes[T Cloner[T]] struct {
	mu        sync.RWMutex
	exemplars map[string]T
}

// NewPrototypes returns an empty prototype registry.
func NewPrototypes[T Cloner[T]]() *Prototypes[T] {
	return &Prototypes[T]{exemplars: make(map[string]T)}
}

// Register stores exemplar under tag, overwriting any prior exemplar for
// that tag (last write wins).
func (p *Prototypes[T]) Register(tag string, exemplar T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.exemplars[tag] = exemplar
}

// Clone returns an independent copy of the exemplar registered under
// tag. An unregistered tag yields ErrUnknownVariant.
func (p *Prototypes[T]) Clone(tag string) (T, error) {
	p.mu.RLock()
	exemplar, ok := p.exemplars[tag]
	p.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("clone %q: %w", tag, ErrUnknownVariant)
	}
	return exemplar.Clone(), nil
}

// Has reports whether tag has a registered exemplar.
func (p *Prototypes[T]) Has(tag string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.exemplars[tag]
	return ok
}

// Variants returns all registered tags in sorted order.
func (p *Prototypes[T]) Variants() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	tags := make([]string, 0, len(p.exemplars))
	for tag := range p.exemplars {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
