// Package event holds the daily random-event table: two fixed pools of
// five, consulted once per day.
package event

import (
	"fmt"
	"strings"

	"menagerie/internal/rng"
)

type Kind int

const (
	Positive Kind = iota
	Negative
)

// Event is a fixed description with additive deltas. Popularity deltas
// are applied unclamped; the day pipeline clamps later.
type Event struct {
	Name       string `json:"name"`
	Kind       Kind   `json:"kind"`
	MoneyDelta int    `json:"money_delta"`
	PopDelta   int    `json:"pop_delta"`
}

// Describe renders the human-readable day-log line.
func (e Event) Describe() string {
	var parts []string
	if e.PopDelta != 0 {
		parts = append(parts, fmt.Sprintf("popularity %+d", e.PopDelta))
	}
	if e.MoneyDelta != 0 {
		parts = append(parts, fmt.Sprintf("%+d coins", e.MoneyDelta))
	}
	if len(parts) == 0 {
		return e.Name
	}
	return e.Name + ": " + strings.Join(parts, ", ")
}

var positive = []Event{
	{Name: "Celebrity Visitor", Kind: Positive, PopDelta: 10},
	{Name: "Sponsor Donation", Kind: Positive, MoneyDelta: 500},
	{Name: "Rare Guest", Kind: Positive, PopDelta: 5},
	{Name: "Wildlife Awareness Day", Kind: Positive, PopDelta: 15},
	{Name: "Charity Fund", Kind: Positive, MoneyDelta: 1000},
}

var negative = []Event{
	{Name: "Animal Escape", Kind: Negative, PopDelta: -10},
	{Name: "Burst Water Main", Kind: Negative, MoneyDelta: -300},
	{Name: "Staff Dispute", Kind: Negative, PopDelta: -5},
	{Name: "Zoo Fire", Kind: Negative, PopDelta: -15, MoneyDelta: -500},
	{Name: "Environmental Fine", Kind: Negative, MoneyDelta: -200},
}

// Pool returns the five events of the given kind.
func Pool(k Kind) []Event {
	if k == Positive {
		return positive
	}
	return negative
}

// Roll fires at most one event per day: the gate at chancePct percent,
// then an even coin between pools, then a uniform pick of five.
func Roll(src rng.Source, chancePct int) (Event, bool) {
	if chancePct <= 0 || src.IntN(100) >= chancePct {
		return Event{}, false
	}
	pool := negative
	if src.IntN(2) == 0 {
		pool = positive
	}
	return pool[src.IntN(len(pool))], true
}
