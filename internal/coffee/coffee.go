// Package coffee demonstrates the decorator pattern: add-ons layered
// over a base coffee, each contributing to cost and description.
package coffee

// Coffee is a priced, describable drink.
type Coffee interface {
	Cost() float64
	Description() string
}

type simple struct{}

func (simple) Cost() float64       { return 5.0 }
func (simple) Description() string { return "Simple Coffee" }

// NewSimple returns the undecorated base coffee.
func NewSimple() Coffee { return simple{} }

type addOn struct {
	inner Coffee
	name  string
	price float64
}

func (a addOn) Cost() float64       { return a.inner.Cost() + a.price }
func (a addOn) Description() string { return a.inner.Description() + ", " + a.name }

// WithMilk adds milk for 1.5.
func WithMilk(c Coffee) Coffee { return addOn{inner: c, name: "Milk", price: 1.5} }

// WithSugar adds sugar for 0.5.
func WithSugar(c Coffee) Coffee { return addOn{inner: c, name: "Sugar", price: 0.5} }

// WithWhippedCream adds whipped cream for 2.0.
func WithWhippedCream(c Coffee) Coffee { return addOn{inner: c, name: "Whipped Cream", price: 2.0} }
