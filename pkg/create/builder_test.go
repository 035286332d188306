package create

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandwichBuilder assembles an ordered list of layers across the steps
// "bread" and "filling".
type sandwichBuilder struct {
	Progress
	layers []string
}

func newSandwichBuilder() *sandwichBuilder {
	return &sandwichBuilder{Progress: NewProgress("bread", "filling")}
}

func (b *sandwichBuilder) Apply(step string) error {
	switch step {
	case "bread":
		b.layers = append(b.layers, "bread")
	case "filling":
		b.layers = append(b.layers, "cheese")
	default:
		return ErrUnknownStep
	}
	b.Mark(step)
	return nil
}

func (b *sandwichBuilder) Extract() ([]string, error) {
	if err := b.Done(); err != nil {
		return nil, err
	}
	layers := b.layers
	b.layers = nil
	b.Reset()
	return layers, nil
}

func TestDirectorConstruct(t *testing.T) {
	d := NewDirector[[]string]("bread", "filling", "bread")

	got, err := d.Construct(newSandwichBuilder())
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "cheese", "bread"}, got)
}

func TestDirectorUnknownStep(t *testing.T) {
	d := NewDirector[[]string]("bread", "pickle")

	_, err := d.Construct(newSandwichBuilder())
	require.ErrorIs(t, err, ErrUnknownStep)
}

func TestExtractBeforeRequiredSteps(t *testing.T) {
	b := newSandwichBuilder()
	require.NoError(t, b.Apply("bread"))

	_, err := b.Extract()
	require.ErrorIs(t, err, ErrIncompleteBuild)
	assert.Contains(t, err.Error(), "filling")
}

func TestRepeatedStepsAccumulate(t *testing.T) {
	b := newSandwichBuilder()
	require.NoError(t, b.Apply("bread"))
	require.NoError(t, b.Apply("filling"))
	require.NoError(t, b.Apply("filling"))

	got, err := b.Extract()
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "cheese", "cheese"}, got)
}

func TestExtractResetsBuilder(t *testing.T) {
	b := newSandwichBuilder()
	d := NewDirector[[]string]("bread", "filling")

	first, err := d.Construct(b)
	require.NoError(t, err)
	require.Equal(t, []string{"bread", "cheese"}, first)

	// Reuse after extraction starts from a clean state.
	_, err = b.Extract()
	require.ErrorIs(t, err, ErrIncompleteBuild)

	second, err := d.Construct(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "cheese"}, second)
}

func TestDirectorSequenceIsCopied(t *testing.T) {
	d := NewDirector[[]string]("bread", "filling")
	seq := d.Sequence()
	seq[0] = "mutated"

	assert.Equal(t, []string{"bread", "filling"}, d.Sequence())
}
