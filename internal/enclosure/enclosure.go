// Package enclosure holds animals of a single climate. Admission is
// all-or-nothing: a rejected animal leaves the enclosure untouched.
package enclosure

import (
	"errors"

	"menagerie/internal/animal"
)

// MaxLevel caps upgrades.
const MaxLevel = 3

var (
	ErrFull            = errors.New("enclosure is full")
	ErrClimateMismatch = errors.New("animal climate does not match enclosure")
	ErrHabitatMismatch = errors.New("aquatic and land animals cannot share an enclosure")
	ErrDietMismatch    = errors.New("carnivores and herbivores cannot share an enclosure")
	ErrMaxLevel        = errors.New("enclosure is at maximum level")
)

type Enclosure struct {
	Climate  animal.Climate   `json:"climate"`
	Capacity int              `json:"capacity"`
	Level    int              `json:"level"`
	// DailyCost is set from the cost formula at construction and changes
	// only through the upgrade ratchet, never when animals come and go.
	DailyCost int              `json:"daily_cost"`
	Animals   []*animal.Animal `json:"animals"`
}

// New builds an enclosure at level 1 with the daily cost locked in.
func New(capacity int, climate animal.Climate) *Enclosure {
	e := &Enclosure{Climate: climate, Capacity: capacity, Level: 1}
	e.DailyCost = e.costFormula()
	return e
}

// BuildCost is the construction price for the given size and climate.
func BuildCost(capacity int, climate animal.Climate) int {
	cost := 100 + capacity*10 + int(climate)*50
	if cost < 150 {
		cost = 150
	}
	return cost
}

// costFormula derives the running cost from current capacity, climate,
// and aquatic occupants.
func (e *Enclosure) costFormula() int {
	cost := 10 + e.Capacity/10 + int(e.Climate)*5
	for _, a := range e.Animals {
		if a.Aquatic() {
			cost += 10
		}
	}
	if cost < 10 {
		cost = 10
	}
	return cost
}

// CanAdmit checks the four admission preconditions. Any failure is a
// definitive rejection.
func (e *Enclosure) CanAdmit(a *animal.Animal) error {
	if len(e.Animals) >= e.Capacity {
		return ErrFull
	}
	if a.Climate != e.Climate {
		return ErrClimateMismatch
	}
	if e.Climate == animal.Ocean && !a.Aquatic() {
		return ErrHabitatMismatch
	}
	if e.Climate != animal.Ocean && a.Aquatic() {
		return ErrHabitatMismatch
	}
	if len(e.Animals) > 0 && e.Animals[0].Carnivore != a.Carnivore {
		return ErrDietMismatch
	}
	return nil
}

// Add admits the animal or returns the admission error unchanged.
func (e *Enclosure) Add(a *animal.Animal) error {
	if err := e.CanAdmit(a); err != nil {
		return err
	}
	e.Animals = append(e.Animals, a)
	return nil
}

// RemoveAt takes the animal out by display index.
func (e *Enclosure) RemoveAt(i int) *animal.Animal {
	a := e.Animals[i]
	e.Animals = append(e.Animals[:i], e.Animals[i+1:]...)
	return a
}

// UpgradeFee is charged before Upgrade and uses the pre-upgrade capacity
// and level.
func (e *Enclosure) UpgradeFee() int {
	return e.Capacity * 5 * (e.Level + 1)
}

// Upgrade doubles capacity and ratchets the daily cost up by half of a
// fresh recompute, which sees the doubled capacity and the animals
// currently housed.
func (e *Enclosure) Upgrade() error {
	if e.Level >= MaxLevel {
		return ErrMaxLevel
	}
	e.Capacity *= 2
	e.DailyCost += e.costFormula() / 2
	e.Level++
	return nil
}

// InfectedCount reports how many occupants currently carry the virus.
func (e *Enclosure) InfectedCount() int {
	n := 0
	for _, a := range e.Animals {
		if a.Infected {
			n++
		}
	}
	return n
}
