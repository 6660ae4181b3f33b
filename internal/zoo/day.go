package zoo

import (
	"fmt"

	"menagerie/internal/disease"
	"menagerie/internal/event"
	"menagerie/internal/telemetry"
)

// Death is one fatality in a day report.
type Death struct {
	Name  string `json:"name"`
	Cause string `json:"cause"`
}

// DayReport is the structured outcome of one full day.
type DayReport struct {
	Day              int          `json:"day"`
	Event            *event.Event `json:"event,omitempty"`
	Visitors         int          `json:"visitors"`
	Income           int          `json:"income"`
	Payroll          int          `json:"payroll"`
	FacilityExpense  int          `json:"facility_expense"`
	FoodExpense      int          `json:"food_expense"`
	FoodConsumed     int          `json:"food_consumed"`
	Deaths           []Death      `json:"deaths"`
	Infected         []string     `json:"infected"`
	PopularityBefore int          `json:"popularity_before"`
	PopularityAfter  int          `json:"popularity_after"`
	Status           Status       `json:"status"`
}

// NextDay advances the simulation by one full day. The step order is
// fixed: event, aging, disease, popularity penalty, income, payroll,
// staffing, facility costs, feeding, drift, bankruptcy check. Money
// observed negative once the pipeline has run ends the run.
func (z *Zoo) NextDay() (DayReport, error) {
	if z.status != StatusRunning {
		return DayReport{}, fmt.Errorf("%w: %s", ErrRunOver, z.status)
	}

	report := DayReport{Day: z.Day, PopularityBefore: z.Popularity}
	z.boughtToday = 0

	// At most one random event per day, applied immediately.
	if ev, ok := event.Roll(z.src, z.balance.EventChancePct); ok {
		z.Money += ev.MoneyDelta
		z.Popularity += ev.PopDelta
		if z.Popularity < 0 {
			z.Popularity = 0
		}
		report.Event = &ev
		z.record(telemetry.EventIncident, telemetry.EventMetadata{
			"name": ev.Name, "money": ev.MoneyDelta, "popularity": ev.PopDelta,
		})
	}

	// Aging and old-age mortality, removal in place.
	for _, enc := range z.Enclosures {
		for i := 0; i < len(enc.Animals); {
			a := enc.Animals[i]
			a.GrowOlder()
			if a.DiesOfOldAge(z.src, z.balance.OldAgeThreshold) {
				enc.RemoveAt(i)
				report.Deaths = append(report.Deaths, Death{Name: a.Name, Cause: telemetry.CauseOldAge})
				z.record(telemetry.EventAnimalDied, telemetry.EventMetadata{
					"name": a.Name, "cause": telemetry.CauseOldAge,
				})
				continue
			}
			i++
		}
	}

	// Disease: seeding across every enclosure, then the spread pass.
	for _, enc := range z.Enclosures {
		if a := disease.Seed(enc, z.src, z.balance.SeedChancePct); a != nil {
			report.Infected = append(report.Infected, a.Name)
			z.record(telemetry.EventAnimalInfected, telemetry.EventMetadata{"name": a.Name})
		}
	}
	for _, enc := range z.Enclosures {
		res := disease.Spread(enc, z.src, z.balance.SpreadChancePct, z.balance.PlagueDeathPct)
		for _, name := range res.Infected {
			report.Infected = append(report.Infected, name)
			z.record(telemetry.EventAnimalInfected, telemetry.EventMetadata{"name": name})
		}
		for _, name := range res.Died {
			report.Deaths = append(report.Deaths, Death{Name: name, Cause: telemetry.CausePlague})
			z.record(telemetry.EventAnimalDied, telemetry.EventMetadata{
				"name": name, "cause": telemetry.CausePlague,
			})
		}
	}

	// Sick animals keep visitors away.
	z.Popularity -= z.TotalInfected()
	if z.Popularity < 0 {
		z.Popularity = 0
	}

	// Income. The living count from here also sets the food requirement.
	living := z.TotalAnimals()
	report.Visitors = 2 * z.Popularity
	report.Income = report.Visitors * living
	z.Money += report.Income

	// Payroll, unconditional, and the daily assignment reset.
	for _, emp := range z.Roster {
		report.Payroll += emp.Position.Salary()
		emp.ResetDay()
	}
	z.Money -= report.Payroll

	// Staffing allocation is accounting only. Occupants may be counted
	// by several employees; a filled employee ends the scan for the
	// current enclosure.
	for _, enc := range z.Enclosures {
		herd := len(enc.Animals)
		for _, emp := range z.Roster {
			spare := emp.Position.MaxAnimals() - emp.Assigned
			if spare <= 0 {
				continue
			}
			take := spare
			if take > herd {
				take = herd
			}
			emp.Assigned += take
			if emp.Assigned >= emp.Position.MaxAnimals() {
				break
			}
		}
	}

	// Facility upkeep at each enclosure's locked-in daily cost.
	for _, enc := range z.Enclosures {
		report.FacilityExpense += enc.DailyCost
	}
	z.Money -= report.FacilityExpense

	// Feeding. A full stock feeds everyone; a shortfall starves the
	// herd one trial at a time until the deficit is covered.
	if z.Food >= living {
		z.Food -= living
		report.FoodConsumed = living
		report.FoodExpense = living * z.balance.FoodUnitCost
		z.Money -= report.FoodExpense
	} else {
		deficit := living - z.Food
		report.FoodConsumed = z.Food
		for _, enc := range z.Enclosures {
			for i := 0; i < len(enc.Animals) && deficit > 0; {
				a := enc.Animals[i]
				if z.src.IntN(100) < z.balance.StarveDeathPct {
					enc.RemoveAt(i)
					deficit--
					report.Deaths = append(report.Deaths, Death{Name: a.Name, Cause: telemetry.CauseStarvation})
					z.record(telemetry.EventAnimalDied, telemetry.EventMetadata{
						"name": a.Name, "cause": telemetry.CauseStarvation,
					})
					continue
				}
				i++
			}
		}
		z.Food = 0
	}

	// Popularity drift, uniform in [-f, +f].
	if f := z.Popularity * z.balance.DriftPct / 100; f > 0 {
		z.Popularity += z.src.IntN(2*f+1) - f
		if z.Popularity < 0 {
			z.Popularity = 0
		}
	}

	report.PopularityAfter = z.Popularity

	if z.Money < 0 {
		z.status = StatusBankrupt
	}

	z.record(telemetry.EventDayCompleted, telemetry.EventMetadata{
		"money": z.Money, "popularity": z.Popularity, "animals": z.TotalAnimals(), "food": z.Food,
	})
	z.logger.Printf("day %d complete: money=%d popularity=%d animals=%d food=%d",
		z.Day, z.Money, z.Popularity, z.TotalAnimals(), z.Food)

	if z.status == StatusRunning {
		z.Day++
		if z.Day > z.balance.DayLimit {
			z.status = StatusVictory
			z.logger.Printf("run complete: %s survived %d days", z.Name, z.balance.DayLimit)
		}
	} else {
		z.logger.Printf("run over: %s went bankrupt on day %d", z.Name, z.Day)
	}

	report.Status = z.status
	return report, nil
}
