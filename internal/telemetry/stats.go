package telemetry

import (
	"encoding/json"
	"fmt"
)

type Stats struct {
	Period        string            `json:"period"`
	EventCounts   map[EventType]int `json:"event_counts"`
	BirthsPerDay  float64           `json:"births_per_day"`
	Births        int               `json:"births"`
	DeathsPerDay  float64           `json:"deaths_per_day"`
	Deaths        int               `json:"deaths"`
	DeathsByCause map[string]int    `json:"deaths_by_cause"`
	Purchases     int               `json:"purchases"`
	Sales         int               `json:"sales"`
	Infections    int               `json:"infections"`
	Cures         int               `json:"cures"`
	Incidents     int               `json:"incidents"`
	Days          int               `json:"days"`

	// Peaks are observed at day ends, from day_completed metadata.
	PeakMoney      int `json:"peak_money"`
	PeakPopularity int `json:"peak_popularity"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, sinceDay int) (Stats, error) {
	stats := Stats{
		Period:        fmt.Sprintf("day %d onward", sinceDay),
		EventCounts:   make(map[EventType]int),
		DeathsByCause: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		// Parse metadata for specific stats
		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventAnimalBorn:
			stats.Births++
		case EventAnimalDied:
			stats.Deaths++
			if cause, ok := metadata["cause"].(string); ok {
				stats.DeathsByCause[cause]++
			}
		case EventAnimalBought:
			stats.Purchases++
		case EventAnimalSold:
			stats.Sales++
		case EventAnimalInfected:
			stats.Infections++
		case EventAnimalCured:
			stats.Cures++
		case EventIncident:
			stats.Incidents++
		case EventDayCompleted:
			stats.Days++
			if v, ok := metadata["money"].(float64); ok && int(v) > stats.PeakMoney {
				stats.PeakMoney = int(v)
			}
			if v, ok := metadata["popularity"].(float64); ok && int(v) > stats.PeakPopularity {
				stats.PeakPopularity = int(v)
			}
		}
	}

	// Calculate per-day rates
	if stats.Days > 0 {
		stats.BirthsPerDay = float64(stats.Births) / float64(stats.Days)
		stats.DeathsPerDay = float64(stats.Deaths) / float64(stats.Days)
	}

	return stats, nil
}
