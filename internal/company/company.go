// Package company demonstrates the composite pattern: leaf departments
// and divisions of departments described through one interface.
package company

// Department is the component interface; Describe returns one line per
// contained leaf.
type Department interface {
	Describe() []string
}

// Leaf is a department with no children.
type Leaf struct {
	Name string
}

// Describe returns the leaf's own name.
func (l *Leaf) Describe() []string {
	return []string{l.Name}
}

// Division is a composite holding sub-departments, which may themselves
// be divisions.
type Division struct {
	children []Department
}

// NewDivision returns a division over the given departments.
func NewDivision(departments ...Department) *Division {
	return &Division{children: append([]Department(nil), departments...)}
}

// Add appends a sub-department.
func (d *Division) Add(dept Department) {
	d.children = append(d.children, dept)
}

// Remove drops dept from the division; unknown departments are ignored.
func (d *Division) Remove(dept Department) {
	for i, c := range d.children {
		if c == dept {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return
		}
	}
}

// Describe flattens every contained department in insertion order.
func (d *Division) Describe() []string {
	var lines []string
	for _, c := range d.children {
		lines = append(lines, c.Describe()...)
	}
	return lines
}
