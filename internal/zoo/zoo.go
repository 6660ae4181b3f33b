// Package zoo holds the aggregate root: the shared counters, the
// enclosure list, the staff roster, and the market pool, plus every
// operation that mutates them. All state changes go through methods on
// Zoo; nothing in this package reaches for a global.
package zoo

import (
	"io"
	"log"

	"menagerie/internal/config"
	"menagerie/internal/enclosure"
	"menagerie/internal/market"
	"menagerie/internal/rng"
	"menagerie/internal/staff"
	"menagerie/internal/telemetry"
)

// Status reports where a run stands. Bankruptcy and the day-limit
// victory are distinct terminal outcomes, never merged.
type Status int

const (
	StatusRunning Status = iota
	StatusBankrupt
	StatusVictory
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusBankrupt:
		return "bankrupt"
	case StatusVictory:
		return "victory"
	}
	return "unknown"
}

// Zoo is the aggregate root. Money may dip negative inside a day;
// a negative balance observed at day end ends the run.
type Zoo struct {
	Name       string
	Money      int
	Food       int
	Popularity int
	Day        int

	Enclosures []*enclosure.Enclosure
	Roster     []*staff.Employee
	Market     *market.Pool

	balance     config.Balance
	src         rng.Source
	logger      *log.Logger
	events      telemetry.Repository
	boughtToday int
	status      Status
}

// Options configures a new zoo. Zero values fall back to the default
// balance, an entropy-seeded randomness source, a silent logger, and
// an in-memory event recorder.
type Options struct {
	Name    string
	Capital int
	Balance config.Balance
	Source  rng.Source
	Logger  *log.Logger
	Events  telemetry.Repository
}

// New opens a zoo on day 1 with the market pre-filled and the director
// already on the roster.
func New(opts Options) *Zoo {
	if opts.Balance == (config.Balance{}) {
		opts.Balance = config.Default()
	}
	if opts.Source == nil {
		opts.Source = rng.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Events == nil {
		opts.Events = telemetry.NewMemoryRepository()
	}
	if opts.Capital < 0 {
		opts.Capital = 0
	}

	z := &Zoo{
		Name:       opts.Name,
		Money:      opts.Capital,
		Popularity: opts.Balance.StartingPopularity,
		Day:        1,
		balance:    opts.Balance,
		src:        opts.Source,
		logger:     opts.Logger,
		events:     opts.Events,
		status:     StatusRunning,
	}
	z.Market = market.New(z.src, z.balance.MarketPoolSize)
	z.Roster = append(z.Roster, &staff.Employee{Name: "Director", Position: staff.Director})
	z.record(telemetry.EventStaffHired, telemetry.EventMetadata{"position": staff.Director.String()})
	return z
}

// Status reports the current run state.
func (z *Zoo) Status() Status { return z.status }

// Balance exposes the active balance table, read-only by convention.
func (z *Zoo) Balance() config.Balance { return z.balance }

// BoughtToday reports purchases made since the last day advance.
func (z *Zoo) BoughtToday() int { return z.boughtToday }

// TotalAnimals counts every living animal across all enclosures.
func (z *Zoo) TotalAnimals() int {
	n := 0
	for _, enc := range z.Enclosures {
		n += len(enc.Animals)
	}
	return n
}

// TotalInfected counts every infected animal across all enclosures.
func (z *Zoo) TotalInfected() int {
	n := 0
	for _, enc := range z.Enclosures {
		n += enc.InfectedCount()
	}
	return n
}

func (z *Zoo) record(t telemetry.EventType, md telemetry.EventMetadata) {
	_ = z.events.RecordEvent(z.Day, t, md)
}
