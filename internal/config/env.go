package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Balance {
	cfg := Default()

	if val := getEnvInt("MENAGERIE_STARTING_CAPITAL"); val > 0 {
		cfg.StartingCapital = val
	}
	if val := getEnvInt("MENAGERIE_DAY_LIMIT"); val > 0 {
		cfg.DayLimit = val
	}
	if val := getEnvInt("MENAGERIE_FOOD_UNIT_COST"); val > 0 {
		cfg.FoodUnitCost = val
	}
	if val := getEnvInt("MENAGERIE_CURE_COST"); val > 0 {
		cfg.CureCost = val
	}
	if val := getEnvInt("MENAGERIE_MARKET_POOL_SIZE"); val > 0 {
		cfg.MarketPoolSize = val
	}
	if val := getEnvInt("MENAGERIE_MARKET_REFRESH_FEE"); val > 0 {
		cfg.MarketRefreshFee = val
	}
	if val := getEnvInt("MENAGERIE_DAILY_PURCHASE_LIMIT"); val > 0 {
		cfg.DailyPurchaseLimit = val
	}
	if val := getEnvInt("MENAGERIE_EVENT_CHANCE_PCT"); val > 0 {
		cfg.EventChancePct = val
	}
	if val := getEnvInt("MENAGERIE_SEED_CHANCE_PCT"); val > 0 {
		cfg.SeedChancePct = val
	}
	if val := getEnvInt("MENAGERIE_TWIN_CHANCE_PCT"); val > 0 {
		cfg.TwinChancePct = val
	}
	if val := getEnvInt("MENAGERIE_OLD_AGE_THRESHOLD"); val > 0 {
		cfg.OldAgeThreshold = val
	}
	if val := getEnvInt("MENAGERIE_DRIFT_PCT"); val > 0 {
		cfg.DriftPct = val
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
