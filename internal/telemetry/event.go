package telemetry

type EventType string

const (
	EventAnimalBought      EventType = "animal_bought"
	EventAnimalSold        EventType = "animal_sold"
	EventAnimalBorn        EventType = "animal_born"
	EventAnimalDied        EventType = "animal_died"
	EventAnimalInfected    EventType = "animal_infected"
	EventAnimalCured       EventType = "animal_cured"
	EventIncident          EventType = "incident"
	EventEnclosureBuilt    EventType = "enclosure_built"
	EventEnclosureUpgraded EventType = "enclosure_upgraded"
	EventStaffHired        EventType = "staff_hired"
	EventStaffFired        EventType = "staff_fired"
	EventMarketRefreshed   EventType = "market_refreshed"
	EventFoodPurchased     EventType = "food_purchased"
	EventAdCampaign        EventType = "ad_campaign"
	EventDayCompleted      EventType = "day_completed"
)

// Death causes recorded in animal_died metadata.
const (
	CauseOldAge     = "old_age"
	CausePlague     = "plague"
	CauseStarvation = "starvation"
)

type Event struct {
	ID       int       `json:"id"`
	Type     EventType `json:"type"`
	Day      int       `json:"day"`
	Metadata string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
