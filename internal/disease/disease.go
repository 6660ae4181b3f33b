// Package disease runs the two daily infection passes over an
// enclosure: seeding, then spread or die-off once infection holds a
// majority.
package disease

import (
	"menagerie/internal/animal"
	"menagerie/internal/enclosure"
	"menagerie/internal/rng"
)

// Seed scans occupants in order and infects the first animal that
// fails its trial. At most one animal is seeded per enclosure per day.
func Seed(enc *enclosure.Enclosure, src rng.Source, chancePct int) *animal.Animal {
	if chancePct <= 0 {
		return nil
	}
	for _, a := range enc.Animals {
		if a.Infected {
			continue
		}
		if src.IntN(100) < chancePct {
			a.Infected = true
			return a
		}
	}
	return nil
}

// Result reports what one spread pass did to an enclosure.
type Result struct {
	Infected []string
	Died     []string
}

// Spread runs the daily progression. With infection past a strict
// floor-half majority the sick start dying; the majority condition is
// re-evaluated after every removal and the pass ends when it no longer
// holds or the list is exhausted. Below the majority every infected
// occupant, including ones infected earlier in the same pass, tries to
// infect up to two healthy occupants scanning from the front.
func Spread(enc *enclosure.Enclosure, src rng.Source, spreadPct, deathPct int) Result {
	var res Result

	infected := enc.InfectedCount()
	if infected > len(enc.Animals)/2 {
		for i := 0; i < len(enc.Animals) && infected > len(enc.Animals)/2; {
			a := enc.Animals[i]
			if a.Infected && src.IntN(100) < deathPct {
				res.Died = append(res.Died, a.Name)
				enc.RemoveAt(i)
				infected--
				continue
			}
			i++
		}
		return res
	}

	for i := 0; i < len(enc.Animals); i++ {
		if !enc.Animals[i].Infected {
			continue
		}
		infections := 0
		for j := 0; j < len(enc.Animals) && infections < 2; j++ {
			b := enc.Animals[j]
			if !b.Infected && src.IntN(100) < spreadPct {
				b.Infected = true
				infections++
				res.Infected = append(res.Infected, b.Name)
			}
		}
	}
	return res
}
