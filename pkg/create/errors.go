package create

import "errors"

// ErrUnknownVariant is returned when a tag has no registered constructor
// or prototype exemplar. Check with errors.Is.
var ErrUnknownVariant = errors.New("create: unknown variant")

// ErrIncompleteBuild is returned when a builder's Extract runs before
// every required step has been applied.
var ErrIncompleteBuild = errors.New("create: incomplete build")

// ErrUnknownStep is returned when a builder is asked to apply a step it
// does not implement.
var ErrUnknownStep = errors.New("create: unknown step")
