package zoo

import (
	"testing"

	"menagerie/internal/animal"
	"menagerie/internal/enclosure"
	"menagerie/internal/rng"
	"menagerie/internal/staff"
	"menagerie/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDay_DeterministicLedger(t *testing.T) {
	src := &rng.Scripted{Values: []int{0}}
	z := newZooForTest(1000, quietBalance(), src)
	z.Food = 5
	enc := enclosure.New(50, animal.Forest)
	enc.Animals = append(enc.Animals,
		forestHerbivore("A", animal.Female, 10),
		forestHerbivore("B", animal.Male, 10),
		forestHerbivore("C", animal.Female, 10),
	)
	z.Enclosures = append(z.Enclosures, enc)

	report, err := z.NextDay()
	require.NoError(t, err)

	// No employees, so income minus facility and food is the whole ledger:
	// 1000 + 2*50*3 - 20 - 3*2.
	assert.Equal(t, 100, report.Visitors)
	assert.Equal(t, 300, report.Income)
	assert.Equal(t, 0, report.Payroll)
	assert.Equal(t, 20, report.FacilityExpense)
	assert.Equal(t, 3, report.FoodConsumed)
	assert.Equal(t, 6, report.FoodExpense)
	assert.Equal(t, 1274, z.Money)
	assert.Equal(t, 2, z.Food)
	assert.Equal(t, 50, report.PopularityBefore)
	assert.Equal(t, 50, report.PopularityAfter)
	assert.Empty(t, report.Deaths)
	assert.Empty(t, report.Infected)
	assert.Nil(t, report.Event)
	assert.Equal(t, StatusRunning, report.Status)
	assert.Equal(t, 2, z.Day)

	// With every stochastic knob off the day must not touch the source.
	assert.Equal(t, 0, src.Consumed())
}

func TestNextDay_CapitalIdentityWithEvent(t *testing.T) {
	bal := quietBalance()
	bal.EventChancePct = 20
	// Gate fires, coin picks the negative pool, index 4 is the fine.
	src := &rng.Scripted{Values: []int{10, 1, 4}}
	z := newZooForTest(1000, bal, src)
	z.Food = 3
	z.Roster = append(z.Roster,
		&staff.Employee{Name: "Director", Position: staff.Director},
		&staff.Employee{Name: "Odette", Position: staff.Feeder},
	)
	enc := enclosure.New(50, animal.Forest)
	enc.Animals = append(enc.Animals,
		forestHerbivore("A", animal.Female, 10),
		forestHerbivore("B", animal.Male, 10),
		forestHerbivore("C", animal.Female, 10),
	)
	z.Enclosures = append(z.Enclosures, enc)

	before := z.Money
	report, err := z.NextDay()
	require.NoError(t, err)

	require.NotNil(t, report.Event)
	assert.Equal(t, "Environmental Fine", report.Event.Name)
	assert.Equal(t, -200, report.Event.MoneyDelta)
	assert.Equal(t, 150, report.Payroll)

	want := before + report.Event.MoneyDelta + report.Income -
		report.Payroll - report.FacilityExpense - report.FoodExpense
	assert.Equal(t, want, z.Money)
	assert.Equal(t, 924, z.Money)
	assert.Equal(t, 3, src.Consumed())
}

func TestNextDay_EventClampsPopularity(t *testing.T) {
	bal := quietBalance()
	bal.EventChancePct = 20
	src := &rng.Scripted{Values: []int{0, 1, 3}} // Zoo Fire
	z := newZooForTest(1000, bal, src)
	z.Popularity = 5

	report, err := z.NextDay()
	require.NoError(t, err)

	require.NotNil(t, report.Event)
	assert.Equal(t, "Zoo Fire", report.Event.Name)
	assert.Equal(t, 5, report.PopularityBefore)
	assert.Equal(t, 0, report.PopularityAfter)
	assert.Equal(t, 0, z.Popularity)
	assert.Equal(t, 500, z.Money)
	assert.Equal(t, 3, src.Consumed())
}

func TestNextDay_OldAgeRemoval(t *testing.T) {
	src := &rng.Scripted{Values: []int{50}}
	z := newZooForTest(1000, quietBalance(), src)
	z.Food = 1
	enc := enclosure.New(50, animal.Forest)
	enc.Animals = append(enc.Animals,
		forestHerbivore("Elder", animal.Female, 159),
		forestHerbivore("Young", animal.Male, 10),
	)
	z.Enclosures = append(z.Enclosures, enc)

	report, err := z.NextDay()
	require.NoError(t, err)

	// A hundred days past the threshold the trial cannot be survived.
	require.Len(t, report.Deaths, 1)
	assert.Equal(t, Death{Name: "Elder", Cause: telemetry.CauseOldAge}, report.Deaths[0])
	require.Len(t, enc.Animals, 1)
	assert.Equal(t, "Young", enc.Animals[0].Name)
	assert.Equal(t, 11, enc.Animals[0].AgeInDays)

	// Income counts survivors only: 1000 + 2*50*1 - 20 - 2.
	assert.Equal(t, 1078, z.Money)
	assert.Equal(t, 1, src.Consumed())

	died, err := z.events.GetEvents(0, []telemetry.EventType{telemetry.EventAnimalDied})
	require.NoError(t, err)
	require.Len(t, died, 1)
	assert.Contains(t, died[0].Metadata, telemetry.CauseOldAge)
}

func TestNextDay_SeedingPenalizesPopularity(t *testing.T) {
	bal := quietBalance()
	bal.SeedChancePct = 30
	// First occupant seeds, then two failed spread trials.
	src := &rng.Scripted{Values: []int{0, 99, 99}}
	z := newZooForTest(1000, bal, src)
	z.Food = 5
	enc := enclosure.New(50, animal.Forest)
	enc.Animals = append(enc.Animals,
		forestHerbivore("A", animal.Female, 10),
		forestHerbivore("B", animal.Male, 10),
		forestHerbivore("C", animal.Female, 10),
	)
	z.Enclosures = append(z.Enclosures, enc)

	report, err := z.NextDay()
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, report.Infected)
	assert.True(t, enc.Animals[0].Infected)
	assert.Equal(t, 49, report.PopularityAfter)
	assert.Equal(t, 98, report.Visitors)
	assert.Equal(t, 294, report.Income)
	assert.Equal(t, 1268, z.Money)
	assert.Equal(t, 3, src.Consumed())

	infections, err := z.events.GetEvents(0, []telemetry.EventType{telemetry.EventAnimalInfected})
	require.NoError(t, err)
	assert.Len(t, infections, 1)
}

func TestNextDay_StarvationCoversDeficit(t *testing.T) {
	src := &rng.Scripted{Values: []int{0, 99, 0}}
	z := newZooForTest(1000, quietBalance(), src)
	z.Food = 1
	enc := enclosure.New(50, animal.Forest)
	enc.Animals = append(enc.Animals,
		forestHerbivore("A", animal.Female, 10),
		forestHerbivore("B", animal.Male, 10),
		forestHerbivore("C", animal.Female, 10),
	)
	z.Enclosures = append(z.Enclosures, enc)

	report, err := z.NextDay()
	require.NoError(t, err)

	// Deficit of two: A dies, B survives its trial, C dies.
	require.Len(t, report.Deaths, 2)
	assert.Equal(t, Death{Name: "A", Cause: telemetry.CauseStarvation}, report.Deaths[0])
	assert.Equal(t, Death{Name: "C", Cause: telemetry.CauseStarvation}, report.Deaths[1])
	require.Len(t, enc.Animals, 1)
	assert.Equal(t, "B", enc.Animals[0].Name)

	// The shortfall branch consumes the stock but never buys food.
	assert.Equal(t, 1, report.FoodConsumed)
	assert.Equal(t, 0, report.FoodExpense)
	assert.Equal(t, 0, z.Food)

	// Income was computed before the losses: 1000 + 2*50*3 - 20.
	assert.Equal(t, 1280, z.Money)
	assert.Equal(t, 3, src.Consumed())
}

func TestNextDay_StaffingSharesHerd(t *testing.T) {
	z := newZooForTest(1000, quietBalance(), nil)
	z.Food = 5
	feeder := &staff.Employee{Name: "Odette", Position: staff.Feeder}
	cleaner := &staff.Employee{Name: "Pavel", Position: staff.Cleaner}
	z.Roster = append(z.Roster, feeder, cleaner)
	enc := enclosure.New(50, animal.Forest)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		enc.Animals = append(enc.Animals, forestHerbivore(name, animal.Female, 10))
	}
	z.Enclosures = append(z.Enclosures, enc)

	report, err := z.NextDay()
	require.NoError(t, err)

	// Allocation is per employee against the whole herd, so the same
	// five animals land on both counters.
	assert.Equal(t, 5, feeder.Assigned)
	assert.Equal(t, 5, cleaner.Assigned)
	assert.Equal(t, 180, report.Payroll)
}

func TestNextDay_StaffingBreaksWhenFilled(t *testing.T) {
	z := newZooForTest(2000, quietBalance(), nil)
	z.Food = 17
	vet := &staff.Employee{Name: "Greta", Position: staff.Vet}
	feeder := &staff.Employee{Name: "Odette", Position: staff.Feeder}
	z.Roster = append(z.Roster, vet, feeder)

	big := enclosure.New(50, animal.Forest)
	for i := 0; i < 12; i++ {
		big.Animals = append(big.Animals, forestHerbivore("big", animal.Female, 10))
	}
	small := enclosure.New(50, animal.Forest)
	for i := 0; i < 5; i++ {
		small.Animals = append(small.Animals, forestHerbivore("small", animal.Male, 10))
	}
	z.Enclosures = append(z.Enclosures, big, small)

	_, err := z.NextDay()
	require.NoError(t, err)

	// The vet fills on the first enclosure and ends its scan there, so
	// the feeder only ever sees the second one.
	assert.Equal(t, 10, vet.Assigned)
	assert.Equal(t, 5, feeder.Assigned)
}

func TestNextDay_BankruptcyIsTerminal(t *testing.T) {
	z := newZooForTest(10, quietBalance(), nil)
	z.Roster = append(z.Roster, &staff.Employee{Name: "Director", Position: staff.Director})

	report, err := z.NextDay()
	require.NoError(t, err)

	assert.Equal(t, StatusBankrupt, report.Status)
	assert.Equal(t, StatusBankrupt, z.Status())
	assert.Equal(t, -40, z.Money)
	assert.Equal(t, 1, z.Day)

	_, err = z.NextDay()
	assert.ErrorIs(t, err, ErrRunOver)
}

func TestNextDay_VictoryAfterDayLimit(t *testing.T) {
	bal := quietBalance()
	bal.DayLimit = 3
	z := newZooForTest(100, bal, nil)

	var report DayReport
	var err error
	for i := 0; i < 3; i++ {
		report, err = z.NextDay()
		require.NoError(t, err)
	}

	assert.Equal(t, StatusVictory, report.Status)
	assert.Equal(t, StatusVictory, z.Status())
	assert.Equal(t, 4, z.Day)
	assert.Equal(t, 100, z.Money)

	_, err = z.NextDay()
	assert.ErrorIs(t, err, ErrRunOver)
}

func TestNextDay_ResetsDailyCounters(t *testing.T) {
	z := newZooForTest(200, quietBalance(), nil)
	cleaner := &staff.Employee{Name: "Pavel", Position: staff.Cleaner, Assigned: 7}
	z.Roster = append(z.Roster, cleaner)
	z.boughtToday = 2

	_, err := z.NextDay()
	require.NoError(t, err)

	assert.Equal(t, 0, z.BoughtToday())
	assert.Equal(t, 0, cleaner.Assigned)
	assert.Equal(t, 120, z.Money)
}
