package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivisionDescribesLeaves(t *testing.T) {
	hr := &Leaf{Name: "HR Department"}
	finance := &Leaf{Name: "Finance Department"}

	head := NewDivision(hr, finance)

	assert.Equal(t, []string{"HR Department", "Finance Department"}, head.Describe())
}

func TestNestedDivisions(t *testing.T) {
	software := &Leaf{Name: "Software"}
	infra := &Leaf{Name: "Infrastructure"}
	it := NewDivision(software, infra)

	head := NewDivision(&Leaf{Name: "HR Department"})
	head.Add(it)

	assert.Equal(t, []string{"HR Department", "Software", "Infrastructure"}, head.Describe())
}

func TestRemoveDepartment(t *testing.T) {
	hr := &Leaf{Name: "HR Department"}
	finance := &Leaf{Name: "Finance Department"}
	head := NewDivision(hr, finance)

	head.Remove(hr)
	assert.Equal(t, []string{"Finance Department"}, head.Describe())

	head.Remove(&Leaf{Name: "Unknown"})
	assert.Equal(t, []string{"Finance Department"}, head.Describe())
}
