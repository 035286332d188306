// Package furniture demonstrates the abstract factory pattern: families
// of mutually consistent products (a chair and a sofa that always share
// one style) selected by a family tag.
package furniture

import "github.com/Shubham8223/LLD-patterns/pkg/create"

// Family tags accepted by Families.
const (
	Victorian = "victorian"
	Modern    = "modern"
)

// Chair is a seating product.
type Chair interface {
	SitOn() string
	Style() string
}

// Sofa is a reclining product.
type Sofa interface {
	LieOn() string
	Style() string
}

// Factory produces one family of furniture. Every product from the same
// factory reports the same style.
type Factory interface {
	NewChair() Chair
	NewSofa() Sofa
}

type victorianChair struct{}

func (victorianChair) SitOn() string { return "Sitting on a Victorian chair." }
func (victorianChair) Style() string { return Victorian }

type victorianSofa struct{}

func (victorianSofa) LieOn() string { return "Lying on a Victorian sofa." }
func (victorianSofa) Style() string { return Victorian }

type victorianFactory struct{}

func (victorianFactory) NewChair() Chair { return victorianChair{} }
func (victorianFactory) NewSofa() Sofa   { return victorianSofa{} }

type modernChair struct{}

func (modernChair) SitOn() string { return "Sitting on a Modern chair." }
func (modernChair) Style() string { return Modern }

type modernSofa struct{}

func (modernSofa) LieOn() string { return "Lying on a Modern sofa." }
func (modernSofa) Style() string { return Modern }

type modernFactory struct{}

func (modernFactory) NewChair() Chair { return modernChair{} }
func (modernFactory) NewSofa() Sofa   { return modernSofa{} }

// Families returns a factory-of-factories: resolve a family tag to get a
// Factory whose products are guaranteed mutually consistent.
func Families() *create.Factory[Factory] {
	f := create.NewFactory[Factory]()
	f.Register(Victorian, func() Factory { return victorianFactory{} })
	f.Register(Modern, func() Factory { return modernFactory{} })
	return f
}
