// Package shipping demonstrates the factory method pattern: three
// interchangeable shipping methods selected by tag, each with its own
// cost formula.
package shipping

import "github.com/Shubham8223/LLD-patterns/pkg/create"

// Variant tags accepted by Catalog.
const (
	Air    = "air"
	Sea    = "sea"
	Ground = "ground"
)

// Method is a bookable shipping method with a distance/weight cost model.
type Method interface {
	Book() string
	Cost(weight, distance float64) float64
}

type airShipping struct{}

func (airShipping) Book() string { return "Air shipping booked." }

func (airShipping) Cost(weight, distance float64) float64 {
	return weight * distance * 0.5
}

type seaShipping struct{}

func (seaShipping) Book() string { return "Sea shipping booked." }

func (seaShipping) Cost(weight, distance float64) float64 {
	return weight * distance * 0.3
}

type groundShipping struct{}

func (groundShipping) Book() string { return "Ground shipping booked." }

func (groundShipping) Cost(weight, distance float64) float64 {
	return weight * distance * 0.1
}

// Catalog returns a factory with every shipping method registered.
// Unknown tags fail with create.ErrUnknownVariant; there is no implicit
// ground fallback.
func Catalog() *create.Factory[Method] {
	f := create.NewFactory[Method]()
	f.Register(Air, func() Method { return airShipping{} })
	f.Register(Sea, func() Method { return seaShipping{} })
	f.Register(Ground, func() Method { return groundShipping{} })
	return f
}
