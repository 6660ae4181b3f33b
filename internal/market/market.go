// Package market produces the purchasable-animal pool. The pool is
// bounded and regenerated wholesale, never patched in place.
package market

import (
	"menagerie/internal/animal"
	"menagerie/internal/rng"
)

// Pool holds the animals currently for sale.
type Pool struct {
	Animals []*animal.Animal
}

// New builds a pool filled to size.
func New(src rng.Source, size int) *Pool {
	p := &Pool{}
	p.Regenerate(src, size)
	return p
}

// Generate rolls one market animal: age 1-20, weight 5-100, then
// uniform climate, diet, and gender, and a species from the climate
// table. Market animals arrive unnamed.
func Generate(src rng.Source) *animal.Animal {
	age := src.IntN(20) + 1
	weight := src.IntN(96) + 5
	climate := animal.Climate(src.IntN(4))
	carnivore := src.IntN(2) == 0
	gender := animal.Female
	if src.IntN(2) == 0 {
		gender = animal.Male
	}
	species := animal.RandomSpecies(src, climate)

	return &animal.Animal{
		Species:   species,
		AgeInDays: age,
		Weight:    weight,
		Climate:   climate,
		Carnivore: carnivore,
		Gender:    gender,
		Parents:   [2]string{"-", "-"},
	}
}

// Regenerate replaces the pool wholesale.
func (p *Pool) Regenerate(src rng.Source, size int) {
	p.Animals = make([]*animal.Animal, 0, size)
	for i := 0; i < size; i++ {
		p.Animals = append(p.Animals, Generate(src))
	}
}

// RefreshFee is the price of regenerating on the given day. The market
// is free while young or empty; afterwards the flat fee applies.
func (p *Pool) RefreshFee(day, freeDays, fee int) int {
	if day <= freeDays || len(p.Animals) == 0 {
		return 0
	}
	return fee
}

// RemoveAt takes a purchased animal out of the pool.
func (p *Pool) RemoveAt(i int) *animal.Animal {
	a := p.Animals[i]
	p.Animals = append(p.Animals[:i], p.Animals[i+1:]...)
	return a
}
