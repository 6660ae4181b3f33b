package animal

import "menagerie/internal/rng"

// Climate determines habitat compatibility and cost terms. The ordinal
// feeds the additive pricing formulas, so the order is load-bearing.
type Climate int

const (
	Desert Climate = iota
	Forest
	Arctic
	Ocean
)

func (c Climate) String() string {
	switch c {
	case Desert:
		return "Desert"
	case Forest:
		return "Forest"
	case Arctic:
		return "Arctic"
	case Ocean:
		return "Ocean"
	}
	return "Unknown"
}

// Climates returns all climates in ordinal order.
func Climates() []Climate {
	return []Climate{Desert, Forest, Arctic, Ocean}
}

type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Male {
		return "M"
	}
	return "F"
}

// Animal is owned by exactly one enclosure (or the market pool before
// purchase). Weight, climate, diet, and gender are fixed at creation.
type Animal struct {
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	AgeInDays int       `json:"age_in_days"`
	Weight    int       `json:"weight"`
	Climate   Climate   `json:"climate"`
	Carnivore bool      `json:"carnivore"`
	Gender    Gender    `json:"gender"`
	Infected  bool      `json:"infected"`
	Parents   [2]string `json:"parents"`
}

// Aquatic is derived from climate, never stored separately.
func (a *Animal) Aquatic() bool { return a.Climate == Ocean }

// Price is the market value in coins.
func (a *Animal) Price() int {
	price := 60 + a.Weight*2 - (a.AgeInDays/30)*5 + int(a.Climate)*50
	if a.Carnivore {
		price += 100
	}
	if a.Aquatic() {
		price += 200
	}
	if price < 10 {
		price = 10
	}
	return price
}

// Upkeep is the nominal daily maintenance cost. Aquatic animals need
// twice the care.
func (a *Animal) Upkeep() int {
	if a.Aquatic() {
		return a.Weight * 2
	}
	return a.Weight
}

// GrowOlder advances the animal by one day.
func (a *Animal) GrowOlder() { a.AgeInDays++ }

// DiesOfOldAge runs the daily mortality trial. Below the threshold the
// animal never dies of age; above it the chance is one percent per day
// of age past the threshold, so threshold+100 is certain death.
func (a *Animal) DiesOfOldAge(src rng.Source, threshold int) bool {
	if a.AgeInDays <= threshold {
		return false
	}
	return src.IntN(100) < a.AgeInDays-threshold
}
