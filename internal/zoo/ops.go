package zoo

import (
	"fmt"

	"menagerie/internal/animal"
	"menagerie/internal/breeding"
	"menagerie/internal/enclosure"
	"menagerie/internal/staff"
	"menagerie/internal/telemetry"
)

func (z *Zoo) enclosureAt(i int) (*enclosure.Enclosure, error) {
	if i < 0 || i >= len(z.Enclosures) {
		return nil, fmt.Errorf("%w: enclosure %d", ErrInvalidSelection, i)
	}
	return z.Enclosures[i], nil
}

func (z *Zoo) animalAt(enclosureIdx, animalIdx int) (*enclosure.Enclosure, *animal.Animal, error) {
	enc, err := z.enclosureAt(enclosureIdx)
	if err != nil {
		return nil, nil, err
	}
	if animalIdx < 0 || animalIdx >= len(enc.Animals) {
		return nil, nil, fmt.Errorf("%w: animal %d", ErrInvalidSelection, animalIdx)
	}
	return enc, enc.Animals[animalIdx], nil
}

// PurchaseResult reports a completed market purchase.
type PurchaseResult struct {
	Animal *animal.Animal `json:"animal"`
	Price  int            `json:"price"`
}

// BuyAnimal moves a market animal into an enclosure under the given
// name. Selection, the daily purchase limit, admission, and funds are
// all checked before anything moves.
func (z *Zoo) BuyAnimal(marketIdx, enclosureIdx int, name string) (PurchaseResult, error) {
	if marketIdx < 0 || marketIdx >= len(z.Market.Animals) {
		return PurchaseResult{}, fmt.Errorf("%w: market slot %d", ErrInvalidSelection, marketIdx)
	}
	enc, err := z.enclosureAt(enclosureIdx)
	if err != nil {
		return PurchaseResult{}, err
	}
	if z.Day > z.balance.MarketFreeDays && z.boughtToday >= z.balance.DailyPurchaseLimit {
		return PurchaseResult{}, fmt.Errorf("%w: daily purchase limit reached", ErrPolicyViolation)
	}
	a := z.Market.Animals[marketIdx]
	if err := enc.CanAdmit(a); err != nil {
		return PurchaseResult{}, fmt.Errorf("%w: %w", ErrPolicyViolation, err)
	}
	price := a.Price()
	if z.Money < price {
		return PurchaseResult{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, price, z.Money)
	}

	z.Money -= price
	z.Market.RemoveAt(marketIdx)
	a.Name = name
	_ = enc.Add(a)
	z.boughtToday++
	z.record(telemetry.EventAnimalBought, telemetry.EventMetadata{
		"name": a.Name, "species": a.Species, "price": price,
	})
	return PurchaseResult{Animal: a, Price: price}, nil
}

// SaleResult reports a completed sale.
type SaleResult struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Proceeds int    `json:"proceeds"`
}

// SellAnimal releases an animal back to the trade at the sell rate, 80
// percent of market price by default.
func (z *Zoo) SellAnimal(enclosureIdx, animalIdx int) (SaleResult, error) {
	enc, a, err := z.animalAt(enclosureIdx, animalIdx)
	if err != nil {
		return SaleResult{}, err
	}

	proceeds := a.Price() * z.balance.SellRatePct / 100
	enc.RemoveAt(animalIdx)
	z.Money += proceeds
	z.record(telemetry.EventAnimalSold, telemetry.EventMetadata{
		"name": a.Name, "species": a.Species, "proceeds": proceeds,
	})
	return SaleResult{Name: a.Name, Species: a.Species, Proceeds: proceeds}, nil
}

// CureAnimal clears an infection for a flat fee. The target must
// actually be infected.
func (z *Zoo) CureAnimal(enclosureIdx, animalIdx int) error {
	_, a, err := z.animalAt(enclosureIdx, animalIdx)
	if err != nil {
		return err
	}
	if !a.Infected {
		return fmt.Errorf("%w: %q is not infected", ErrInvalidSelection, a.Name)
	}
	if z.Money < z.balance.CureCost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, z.balance.CureCost, z.Money)
	}

	z.Money -= z.balance.CureCost
	a.Infected = false
	z.record(telemetry.EventAnimalCured, telemetry.EventMetadata{"name": a.Name})
	return nil
}

// RenameAnimal assigns a new display name.
func (z *Zoo) RenameAnimal(enclosureIdx, animalIdx int, name string) error {
	_, a, err := z.animalAt(enclosureIdx, animalIdx)
	if err != nil {
		return err
	}
	a.Name = name
	return nil
}

// BuildEnclosure erects a new enclosure and charges the build cost.
func (z *Zoo) BuildEnclosure(capacity int, climate animal.Climate) (*enclosure.Enclosure, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidSelection)
	}
	cost := enclosure.BuildCost(capacity, climate)
	if z.Money < cost {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, cost, z.Money)
	}

	z.Money -= cost
	enc := enclosure.New(capacity, climate)
	z.Enclosures = append(z.Enclosures, enc)
	z.record(telemetry.EventEnclosureBuilt, telemetry.EventMetadata{
		"climate": climate.String(), "capacity": capacity, "cost": cost,
	})
	return enc, nil
}

// UpgradeResult reports the post-upgrade shape of an enclosure.
type UpgradeResult struct {
	Fee       int `json:"fee"`
	Capacity  int `json:"capacity"`
	Level     int `json:"level"`
	DailyCost int `json:"daily_cost"`
}

// UpgradeEnclosure charges the fee and doubles capacity. The fee is
// computed on the pre-upgrade capacity and level.
func (z *Zoo) UpgradeEnclosure(enclosureIdx int) (UpgradeResult, error) {
	enc, err := z.enclosureAt(enclosureIdx)
	if err != nil {
		return UpgradeResult{}, err
	}
	if enc.Level >= enclosure.MaxLevel {
		return UpgradeResult{}, fmt.Errorf("%w: %w", ErrPolicyViolation, enclosure.ErrMaxLevel)
	}
	fee := enc.UpgradeFee()
	if z.Money < fee {
		return UpgradeResult{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, fee, z.Money)
	}

	z.Money -= fee
	_ = enc.Upgrade()
	z.record(telemetry.EventEnclosureUpgraded, telemetry.EventMetadata{
		"fee": fee, "capacity": enc.Capacity, "level": enc.Level,
	})
	return UpgradeResult{Fee: fee, Capacity: enc.Capacity, Level: enc.Level, DailyCost: enc.DailyCost}, nil
}

// Hire adds an employee and debits one salary as the hiring fee. The
// director seat is filled at creation and is not open.
func (z *Zoo) Hire(name string, pos staff.Position) (*staff.Employee, error) {
	if pos == staff.Director {
		return nil, fmt.Errorf("%w: the director seat is not open", ErrPolicyViolation)
	}
	fee := pos.Salary()
	if z.Money < fee {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, fee, z.Money)
	}

	z.Money -= fee
	emp := &staff.Employee{Name: name, Position: pos}
	z.Roster = append(z.Roster, emp)
	z.record(telemetry.EventStaffHired, telemetry.EventMetadata{
		"name": name, "position": pos.String(),
	})
	return emp, nil
}

// Fire dismisses an employee. The director cannot be dismissed.
func (z *Zoo) Fire(rosterIdx int) (*staff.Employee, error) {
	if rosterIdx < 0 || rosterIdx >= len(z.Roster) {
		return nil, fmt.Errorf("%w: employee %d", ErrInvalidSelection, rosterIdx)
	}
	emp := z.Roster[rosterIdx]
	if emp.Position == staff.Director {
		return nil, fmt.Errorf("%w: the director cannot be dismissed", ErrPolicyViolation)
	}

	z.Roster = append(z.Roster[:rosterIdx], z.Roster[rosterIdx+1:]...)
	z.record(telemetry.EventStaffFired, telemetry.EventMetadata{
		"name": emp.Name, "position": emp.Position.String(),
	})
	return emp, nil
}

// BuyFood adds kilograms to the stock at the per-kg rate.
func (z *Zoo) BuyFood(kg int) error {
	if kg <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidSelection)
	}
	cost := kg * z.balance.FoodUnitCost
	if z.Money < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, cost, z.Money)
	}

	z.Money -= cost
	z.Food += kg
	z.record(telemetry.EventFoodPurchased, telemetry.EventMetadata{"kg": kg, "cost": cost})
	return nil
}

// RunAdCampaign converts spend into popularity and returns the points
// gained.
func (z *Zoo) RunAdCampaign(spend int) (int, error) {
	if spend <= 0 {
		return 0, fmt.Errorf("%w: spend must be positive", ErrInvalidSelection)
	}
	if z.Money < spend {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, spend, z.Money)
	}

	z.Money -= spend
	gained := spend / z.balance.AdPointCost
	z.Popularity += gained
	z.record(telemetry.EventAdCampaign, telemetry.EventMetadata{"spend": spend, "gained": gained})
	return gained, nil
}

// RefreshMarket regenerates the pool wholesale and returns the fee
// paid, zero while the market is young or empty. Short funds refuse
// with no debit and no regeneration.
func (z *Zoo) RefreshMarket() (int, error) {
	fee := z.Market.RefreshFee(z.Day, z.balance.MarketFreeDays, z.balance.MarketRefreshFee)
	if z.Money < fee {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, fee, z.Money)
	}

	z.Money -= fee
	z.Market.Regenerate(z.src, z.balance.MarketPoolSize)
	z.record(telemetry.EventMarketRefreshed, telemetry.EventMetadata{"fee": fee})
	return fee, nil
}

// PlanBreeding scans an enclosure for the first eligible pair. The
// plan mutates nothing until committed.
func (z *Zoo) PlanBreeding(enclosureIdx int) (*breeding.Plan, breeding.Outcome, error) {
	enc, err := z.enclosureAt(enclosureIdx)
	if err != nil {
		return nil, breeding.NoEligiblePair, err
	}
	plan, outcome := breeding.Propose(enc, z.balance.BreedingMinAge)
	return plan, outcome, nil
}

// PlanBreedingPair validates a caller-chosen pair. Same gender or same
// species is a hard incompatibility.
func (z *Zoo) PlanBreedingPair(enclosureIdx, i, j int) (*breeding.Plan, error) {
	enc, err := z.enclosureAt(enclosureIdx)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(enc.Animals) || j < 0 || j >= len(enc.Animals) {
		return nil, fmt.Errorf("%w: pair %d,%d", ErrInvalidSelection, i, j)
	}
	return breeding.ProposePair(enc, enc.Animals[i], enc.Animals[j])
}

// CommitBreeding births the planned offspring and records each one.
func (z *Zoo) CommitBreeding(plan *breeding.Plan, namer breeding.Namer) []*animal.Animal {
	born := plan.Commit(z.src, z.balance.TwinChancePct, namer)
	for _, child := range born {
		z.record(telemetry.EventAnimalBorn, telemetry.EventMetadata{
			"name": child.Name, "species": child.Species, "parents": child.Parents,
		})
	}
	return born
}

// SuitableEnclosures lists indices of enclosures that would admit the
// animal right now.
func (z *Zoo) SuitableEnclosures(a *animal.Animal) []int {
	var out []int
	for i, enc := range z.Enclosures {
		if enc.CanAdmit(a) == nil {
			out = append(out, i)
		}
	}
	return out
}
