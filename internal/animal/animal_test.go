package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/rng"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		name string
		a    Animal
		want int
	}{
		{
			name: "young desert herbivore",
			a:    Animal{AgeInDays: 10, Weight: 20, Climate: Desert},
			want: 60 + 40, // base + weight*2, no age discount under 30 days
		},
		{
			name: "aged forest carnivore",
			a:    Animal{AgeInDays: 90, Weight: 30, Climate: Forest, Carnivore: true},
			want: 60 + 60 - 15 + 100 + 50,
		},
		{
			name: "ocean animal carries aquatic premium",
			a:    Animal{AgeInDays: 1, Weight: 10, Climate: Ocean},
			want: 60 + 20 + 150 + 200,
		},
		{
			name: "floor at minimum price",
			a:    Animal{AgeInDays: 3000, Weight: 5, Climate: Desert},
			want: 10,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Price())
		})
	}
}

func TestPriceIdempotent(t *testing.T) {
	a := Animal{AgeInDays: 45, Weight: 33, Climate: Arctic, Carnivore: true}
	require.Equal(t, a.Price(), a.Price())
}

func TestUpkeep(t *testing.T) {
	land := Animal{Weight: 40, Climate: Forest}
	aqua := Animal{Weight: 40, Climate: Ocean}
	assert.Equal(t, 40, land.Upkeep())
	assert.Equal(t, 80, aqua.Upkeep())
}

func TestAquaticFollowsClimate(t *testing.T) {
	for _, c := range Climates() {
		a := Animal{Climate: c}
		assert.Equal(t, c == Ocean, a.Aquatic(), "climate %s", c)
	}
}

func TestDiesOfOldAge(t *testing.T) {
	const threshold = 60

	t.Run("never below threshold", func(t *testing.T) {
		src := &rng.Scripted{Values: []int{0}}
		a := Animal{AgeInDays: 60}
		require.False(t, a.DiesOfOldAge(src, threshold))
		require.Zero(t, src.Consumed(), "no trial may be consumed under the threshold")
	})

	t.Run("one percent at 61", func(t *testing.T) {
		a := Animal{AgeInDays: 61}
		// Only a roll of exactly 0 out of 100 kills at one percent.
		require.True(t, a.DiesOfOldAge(&rng.Scripted{Values: []int{0}}, threshold))
		require.False(t, a.DiesOfOldAge(&rng.Scripted{Values: []int{1}}, threshold))
		require.False(t, a.DiesOfOldAge(&rng.Scripted{Values: []int{99}}, threshold))
	})

	t.Run("certain at 160", func(t *testing.T) {
		a := Animal{AgeInDays: 160}
		for _, roll := range []int{0, 50, 99} {
			require.True(t, a.DiesOfOldAge(&rng.Scripted{Values: []int{roll}}, threshold))
		}
	})
}

func TestSpeciesTable(t *testing.T) {
	for _, c := range Climates() {
		require.Len(t, SpeciesTable[c], 5, "climate %s", c)
	}
	src := &rng.Scripted{Values: []int{0, 1, 2, 3, 4}}
	for i := 0; i < 5; i++ {
		s := RandomSpecies(src, Arctic)
		assert.Contains(t, SpeciesTable[Arctic], s)
	}
}
