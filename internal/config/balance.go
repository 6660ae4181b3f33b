package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Starting state
	StartingCapital    int `yaml:"starting_capital" json:"starting_capital"`
	StartingPopularity int `yaml:"starting_popularity" json:"starting_popularity"`
	DayLimit           int `yaml:"day_limit" json:"day_limit"`

	// Economy
	FoodUnitCost int `yaml:"food_unit_cost" json:"food_unit_cost"`
	CureCost     int `yaml:"cure_cost" json:"cure_cost"`
	SellRatePct  int `yaml:"sell_rate_pct" json:"sell_rate_pct"`
	AdPointCost  int `yaml:"ad_point_cost" json:"ad_point_cost"`

	// Market
	MarketPoolSize     int `yaml:"market_pool_size" json:"market_pool_size"`
	MarketRefreshFee   int `yaml:"market_refresh_fee" json:"market_refresh_fee"`
	MarketFreeDays     int `yaml:"market_free_days" json:"market_free_days"`
	DailyPurchaseLimit int `yaml:"daily_purchase_limit" json:"daily_purchase_limit"`

	// Daily chances (percent)
	EventChancePct  int `yaml:"event_chance_pct" json:"event_chance_pct"`
	SeedChancePct   int `yaml:"seed_chance_pct" json:"seed_chance_pct"`
	SpreadChancePct int `yaml:"spread_chance_pct" json:"spread_chance_pct"`
	PlagueDeathPct  int `yaml:"plague_death_pct" json:"plague_death_pct"`
	StarveDeathPct  int `yaml:"starve_death_pct" json:"starve_death_pct"`
	TwinChancePct   int `yaml:"twin_chance_pct" json:"twin_chance_pct"`
	DriftPct        int `yaml:"drift_pct" json:"drift_pct"`

	// Lifecycle
	BreedingMinAge  int `yaml:"breeding_min_age" json:"breeding_min_age"`
	OldAgeThreshold int `yaml:"old_age_threshold" json:"old_age_threshold"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		StartingCapital:    10000,
		StartingPopularity: 50,
		DayLimit:           30,
		FoodUnitCost:       2,
		CureCost:           30,
		SellRatePct:        80,
		AdPointCost:        20,
		MarketPoolSize:     10,
		MarketRefreshFee:   150,
		MarketFreeDays:     10,
		DailyPurchaseLimit: 1,
		EventChancePct:     20,
		SeedChancePct:      30,
		SpreadChancePct:    30,
		PlagueDeathPct:     50,
		StarveDeathPct:     50,
		TwinChancePct:      10,
		DriftPct:           10,
		BreedingMinAge:     5,
		OldAgeThreshold:    60,
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.StartingCapital = 15000
	cfg.SeedChancePct = 20
	cfg.PlagueDeathPct = 40
	cfg.StarveDeathPct = 40
	cfg.TwinChancePct = 15
	cfg.MarketRefreshFee = 100
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.StartingCapital = 7500
	cfg.SeedChancePct = 40
	cfg.SpreadChancePct = 40
	cfg.PlagueDeathPct = 60
	cfg.MarketRefreshFee = 200
	cfg.MarketFreeDays = 5
	cfg.OldAgeThreshold = 55
	return cfg
}
