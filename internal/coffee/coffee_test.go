package coffee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoratorStacking(t *testing.T) {
	c := NewSimple()
	assert.InDelta(t, 5.0, c.Cost(), 1e-9)
	assert.Equal(t, "Simple Coffee", c.Description())

	c = WithMilk(c)
	assert.InDelta(t, 6.5, c.Cost(), 1e-9)

	c = WithSugar(c)
	assert.InDelta(t, 7.0, c.Cost(), 1e-9)

	c = WithWhippedCream(c)
	assert.InDelta(t, 9.0, c.Cost(), 1e-9)
	assert.Equal(t, "Simple Coffee, Milk, Sugar, Whipped Cream", c.Description())
}

func TestDecorationOrderShowsInDescription(t *testing.T) {
	c := WithMilk(WithWhippedCream(NewSimple()))
	assert.Equal(t, "Simple Coffee, Whipped Cream, Milk", c.Description())
	assert.InDelta(t, 8.5, c.Cost(), 1e-9)
}
