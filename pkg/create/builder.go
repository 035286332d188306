package create

import (
	"fmt"
	"strings"
)

// Builder assembles a product across named steps. Apply mutates the
// in-progress build state; Extract yields the finished product and
// resets the builder for reuse.
//
// Applying the same step twice accumulates deterministically: each call
// contributes again, in call order. Builders wanting reject-on-repeat
// semantics enforce that inside Apply.
type Builder[T any] interface {
	Apply(step string) error
	Extract() (T, error)
}

// Director fixes the step order for a family of builders. Concrete
// builders vary only in what each step contributes, never in sequence.
type Director[T any] struct {
	sequence []string
}

// NewDirector returns a director that drives builders through steps in
// the given order.
func NewDirector[T any](steps ...string) *Director[T] {
	return &Director[T]{sequence: append([]string(nil), steps...)}
}

// Sequence returns the fixed step order.
func (d *Director[T]) Sequence() []string {
	return append([]string(nil), d.sequence...)
}

// Construct applies every step in order and extracts the product.
// Step errors are returned immediately with the step name attached.
func (d *Director[T]) Construct(b Builder[T]) (T, error) {
	var zero T
	for _, step := range d.sequence {
		if err := b.Apply(step); err != nil {
			return zero, fmt.Errorf("step %q: %w", step, err)
		}
	}
	return b.Extract()
}

// Progress tracks which required steps have run. Concrete builders embed
// one and call Mark from Apply; Done gates Extract.
type Progress struct {
	required []string
	applied  map[string]bool
}

// NewProgress returns a tracker over the given required steps.
func NewProgress(required ...string) Progress {
	return Progress{
		required: append([]string(nil), required...),
		applied:  make(map[string]bool),
	}
}

// Mark records that step has run. Marking an already applied step is a
// no-op for completeness purposes.
func (p *Progress) Mark(step string) {
	p.applied[step] = true
}

// Done returns nil once every required step has been marked, otherwise
// ErrIncompleteBuild naming the missing steps.
func (p *Progress) Done() error {
	var missing []string
	for _, step := range p.required {
		if !p.applied[step] {
			missing = append(missing, step)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing steps [%s]: %w", strings.Join(missing, ", "), ErrIncompleteBuild)
	}
	return nil
}

// Reset clears the applied set so the owning builder can be reused.
func (p *Progress) Reset() {
	p.applied = make(map[string]bool)
}
