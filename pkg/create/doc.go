// Package create is a small object-creation toolkit: tag-driven
// factories, step-ordered builders with a director, and a prototype
// registry for clone-based construction.
//
// The three pieces share one contract style: a caller supplies a
// discriminator (a string tag or a step name), the toolkit resolves it to
// a concrete product, and an unrecognized discriminator is always an
// error — never a silently substituted default. Branch on the sentinel
// errors with errors.Is:
//
//	m, err := catalog.Create("air")
//	if errors.Is(err, create.ErrUnknownVariant) { ... }
//
// Registries guard their internal maps with a mutex so one registry may
// be shared across goroutines; individual operations are plain
// synchronous computations with no I/O.
package create
