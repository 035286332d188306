package furniture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham8223/LLD-patterns/pkg/create"
)

func TestFamiliesAreNeverMixed(t *testing.T) {
	families := Families()

	for _, tag := range []string{Victorian, Modern} {
		factory, err := families.Create(tag)
		require.NoError(t, err, tag)

		chair := factory.NewChair()
		sofa := factory.NewSofa()

		assert.Equal(t, tag, chair.Style(), "chair style for family %s", tag)
		assert.Equal(t, tag, sofa.Style(), "sofa style for family %s", tag)
		assert.Equal(t, chair.Style(), sofa.Style(), "family %s must be consistent", tag)
	}
}

func TestVictorianDescriptions(t *testing.T) {
	families := Families()

	factory, err := families.Create(Victorian)
	require.NoError(t, err)

	assert.Equal(t, "Sitting on a Victorian chair.", factory.NewChair().SitOn())
	assert.Equal(t, "Lying on a Victorian sofa.", factory.NewSofa().LieOn())
}

func TestUnknownFamily(t *testing.T) {
	_, err := Families().Create("baroque")
	require.ErrorIs(t, err, create.ErrUnknownVariant)
}
