// Package breeding pairs animals inside one enclosure and synthesizes
// offspring. Pairing is a plan step; nothing mutates until Commit.
package breeding

import (
	"errors"
	"fmt"
	"strings"

	"menagerie/internal/animal"
	"menagerie/internal/enclosure"
	"menagerie/internal/rng"
)

// ErrIncompatible marks a caller-chosen pair that can never breed. This
// is a hard failure, distinct from a scan that simply finds no pair.
var ErrIncompatible = errors.New("incompatible breeding pair")

// Outcome reports what a pairing attempt produced.
type Outcome int

const (
	Paired Outcome = iota
	NoEligiblePair
	Incompatible
)

func (o Outcome) String() string {
	switch o {
	case Paired:
		return "paired"
	case NoEligiblePair:
		return "no eligible pair"
	case Incompatible:
		return "incompatible"
	}
	return "unknown"
}

// Namer supplies a name for offspring i of the given species.
type Namer func(i int, species string) string

// Plan is a cancelable pairing. Dropping it without Commit leaves the
// enclosure untouched.
type Plan struct {
	enc     *enclosure.Enclosure
	Parent1 *animal.Animal
	Parent2 *animal.Animal
}

// Propose scans occupants in order and selects the first
// opposite-gender pair where both animals are older than minAge days.
func Propose(enc *enclosure.Enclosure, minAge int) (*Plan, Outcome) {
	if len(enc.Animals) < 2 {
		return nil, NoEligiblePair
	}
	for i := 0; i < len(enc.Animals); i++ {
		for j := i + 1; j < len(enc.Animals); j++ {
			p1, p2 := enc.Animals[i], enc.Animals[j]
			if p1.Gender != p2.Gender && p1.AgeInDays > minAge && p2.AgeInDays > minAge {
				return &Plan{enc: enc, Parent1: p1, Parent2: p2}, Paired
			}
		}
	}
	return nil, NoEligiblePair
}

// ProposePair validates a caller-chosen pair. Same gender or same
// species cannot breed.
func ProposePair(enc *enclosure.Enclosure, p1, p2 *animal.Animal) (*Plan, error) {
	if p1 == p2 {
		return nil, fmt.Errorf("%w: an animal cannot pair with itself", ErrIncompatible)
	}
	if p1.Gender == p2.Gender {
		return nil, fmt.Errorf("%w: same gender", ErrIncompatible)
	}
	if p1.Species == p2.Species {
		return nil, fmt.Errorf("%w: same species", ErrIncompatible)
	}
	return &Plan{enc: enc, Parent1: p1, Parent2: p2}, nil
}

// Commit synthesizes offspring and places them in the enclosure. One
// offspring is born, two at twinPct percent, but never beyond remaining
// capacity; with no room the attempt aborts and returns nil.
func (p *Plan) Commit(src rng.Source, twinPct int, namer Namer) []*animal.Animal {
	count := 1
	if src.IntN(100) < twinPct {
		count = 2
	}
	if room := p.enc.Capacity - len(p.enc.Animals); count > room {
		count = room
	}
	if count <= 0 {
		return nil
	}

	born := make([]*animal.Animal, 0, count)
	for i := 0; i < count; i++ {
		species := CombineSpecies(src, p.Parent1.Species, p.Parent2.Species)
		gender := animal.Female
		if src.IntN(2) == 0 {
			gender = animal.Male
		}
		child := &animal.Animal{
			Species:   species,
			AgeInDays: 1,
			Weight:    (p.Parent1.Weight + p.Parent2.Weight) / 2,
			Climate:   p.Parent1.Climate,
			Carnivore: p.Parent1.Carnivore || p.Parent2.Carnivore,
			Gender:    gender,
			Parents:   [2]string{p.Parent1.Name, p.Parent2.Name},
		}
		if namer != nil {
			child.Name = namer(i, species)
		}
		p.enc.Animals = append(p.enc.Animals, child)
		born = append(born, child)
	}
	return born
}

// CombineSpecies forms an offspring species from one token of each
// parent species, a lexical recombination rather than any genetics.
func CombineSpecies(src rng.Source, first, second string) string {
	return strings.TrimSpace(pickToken(src, first) + " " + pickToken(src, second))
}

func pickToken(src rng.Source, species string) string {
	words := strings.Fields(species)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return words[src.IntN(len(words))]
}
