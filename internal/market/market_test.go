package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/animal"
	"menagerie/internal/rng"
)

func TestGenerateRanges(t *testing.T) {
	src := rng.NewSeeded(11)
	for i := 0; i < 500; i++ {
		a := Generate(src)
		assert.GreaterOrEqual(t, a.AgeInDays, 1)
		assert.LessOrEqual(t, a.AgeInDays, 20)
		assert.GreaterOrEqual(t, a.Weight, 5)
		assert.LessOrEqual(t, a.Weight, 100)
		assert.Contains(t, animal.SpeciesTable[a.Climate], a.Species)
		assert.Equal(t, a.Climate == animal.Ocean, a.Aquatic())
		assert.Empty(t, a.Name, "market animals arrive unnamed")
	}
}

func TestGenerateScripted(t *testing.T) {
	// age 1+4, weight 5+10, ocean climate, carnivore, male, species 2.
	src := &rng.Scripted{Values: []int{4, 10, 3, 0, 0, 2}}
	a := Generate(src)
	assert.Equal(t, 5, a.AgeInDays)
	assert.Equal(t, 15, a.Weight)
	assert.Equal(t, animal.Ocean, a.Climate)
	assert.True(t, a.Carnivore)
	assert.Equal(t, animal.Male, a.Gender)
	assert.Equal(t, "Sea Dragon", a.Species)
	assert.True(t, a.Aquatic())
}

func TestRegenerateReplacesWholesale(t *testing.T) {
	src := rng.NewSeeded(3)
	p := New(src, 10)
	require.Len(t, p.Animals, 10)

	old := p.Animals[0]
	p.Regenerate(src, 10)
	require.Len(t, p.Animals, 10)
	for _, a := range p.Animals {
		assert.NotSame(t, old, a)
	}
}

func TestRefreshFee(t *testing.T) {
	src := rng.NewSeeded(5)
	p := New(src, 10)

	t.Run("free while young", func(t *testing.T) {
		assert.Zero(t, p.RefreshFee(1, 10, 150))
		assert.Zero(t, p.RefreshFee(10, 10, 150))
	})

	t.Run("charged afterwards", func(t *testing.T) {
		assert.Equal(t, 150, p.RefreshFee(11, 10, 150))
	})

	t.Run("free once empty", func(t *testing.T) {
		empty := &Pool{}
		assert.Zero(t, empty.RefreshFee(20, 10, 150))
	})
}

func TestRemoveAt(t *testing.T) {
	src := rng.NewSeeded(9)
	p := New(src, 3)
	second := p.Animals[1]
	got := p.RemoveAt(1)
	assert.Same(t, second, got)
	assert.Len(t, p.Animals, 2)
}
