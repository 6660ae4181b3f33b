// Command simulate plays headless zoo seasons in bulk and reports
// aggregate balance statistics: win rate, survival, economy, losses.
package main

import (
	"flag"
	"fmt"
	"os"

	"menagerie/internal/animal"
	"menagerie/internal/config"
	"menagerie/internal/rng"
	"menagerie/internal/staff"
	"menagerie/internal/telemetry"
	"menagerie/internal/zoo"

	"github.com/charmbracelet/log"
)

func main() {
	runs := flag.Int("runs", 100, "number of independent runs")
	days := flag.Int("days", 0, "override the day limit, 0 keeps the balance value")
	seed := flag.Uint64("seed", 1, "base seed; run i plays with seed+i")
	difficulty := flag.String("difficulty", "", "balance preset: casual or hard")
	verbose := flag.Bool("v", false, "log every day instead of run outcomes only")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	bal := config.FromEnv()
	if *difficulty != "" {
		bal = config.ForDifficulty(*difficulty)
	}
	if *days > 0 {
		bal.DayLimit = *days
	}

	sim := &Simulator{logger: logger, balance: bal, runs: *runs, baseSeed: *seed}
	sim.Run()
}

// Simulator plays full seasons on a simple autopilot: build one
// enclosure, keep food stocked, cure the sick, shop while flush.
type Simulator struct {
	logger   *log.Logger
	balance  config.Balance
	runs     int
	baseSeed uint64
}

type runResult struct {
	seed   uint64
	status zoo.Status
	money  int
	stats  telemetry.Stats
}

func (s *Simulator) Run() {
	s.logger.Info("simulation started",
		"runs", s.runs, "base_seed", s.baseSeed, "day_limit", s.balance.DayLimit)

	results := make([]runResult, 0, s.runs)
	for i := 0; i < s.runs; i++ {
		res := s.playRun(s.baseSeed + uint64(i))
		results = append(results, res)
		s.logger.Info("run finished",
			"seed", res.seed, "status", res.status, "days", res.stats.Days, "money", res.money)
	}

	s.report(results)
}

func (s *Simulator) playRun(seed uint64) runResult {
	events := telemetry.NewMemoryRepository()
	z := zoo.New(zoo.Options{
		Name:    fmt.Sprintf("run-%d", seed),
		Capital: s.balance.StartingCapital,
		Balance: s.balance,
		Source:  rng.NewSeeded(seed),
		Events:  events,
	})

	for z.Status() == zoo.StatusRunning {
		s.steer(z)
		report, err := z.NextDay()
		if err != nil {
			break
		}
		s.logger.Debug("day complete",
			"seed", seed, "day", report.Day, "money", z.Money,
			"animals", z.TotalAnimals(), "popularity", z.Popularity)
	}

	recorded, err := events.GetEvents(0, nil)
	if err != nil {
		s.logger.Error("telemetry read failed", "seed", seed, "err", err)
	}
	stats, _ := telemetry.CalculateStats(recorded, 1)

	return runResult{seed: seed, status: z.Status(), money: z.Money, stats: stats}
}

// steer makes the day's decisions before the turn runs. Failed buys are
// fine; the engine refuses without side effects.
func (s *Simulator) steer(z *zoo.Zoo) {
	if len(z.Enclosures) == 0 {
		_, _ = z.BuildEnclosure(20, animal.Forest)
	}

	for encIdx, enc := range z.Enclosures {
		for aIdx, a := range enc.Animals {
			if a.Infected && z.Money >= s.balance.CureCost*4 {
				_ = z.CureAnimal(encIdx, aIdx)
			}
		}
	}

	// Two days of stock keeps one bad market day from starving the herd.
	if want := z.TotalAnimals()*2 - z.Food; want > 0 {
		_ = z.BuyFood(want)
	}

	if z.Money > s.balance.StartingCapital/2 {
		s.shop(z)
	}

	if z.TotalAnimals() > staff.Director.MaxAnimals() && len(z.Roster) < 2 {
		_, _ = z.Hire("autopilot", staff.Feeder)
	}
}

// shop buys at most one affordable animal that has somewhere to live.
func (s *Simulator) shop(z *zoo.Zoo) {
	for marketIdx, a := range z.Market.Animals {
		if a.Price() > z.Money/4 {
			continue
		}
		suitable := z.SuitableEnclosures(a)
		if len(suitable) == 0 {
			continue
		}
		name := fmt.Sprintf("resident-%d", z.TotalAnimals()+1)
		_, _ = z.BuyAnimal(marketIdx, suitable[0], name)
		return
	}
}

func (s *Simulator) report(results []runResult) {
	var wins, bankruptcies, daysSum, moneySum, peakMoney int
	var births, deaths, purchases, incidents int
	byCause := map[string]int{}

	for _, r := range results {
		switch r.status {
		case zoo.StatusVictory:
			wins++
		case zoo.StatusBankrupt:
			bankruptcies++
		}
		daysSum += r.stats.Days
		moneySum += r.money
		if r.stats.PeakMoney > peakMoney {
			peakMoney = r.stats.PeakMoney
		}
		births += r.stats.Births
		deaths += r.stats.Deaths
		purchases += r.stats.Purchases
		incidents += r.stats.Incidents
		for cause, n := range r.stats.DeathsByCause {
			byCause[cause] += n
		}
	}

	n := len(results)
	if n == 0 {
		return
	}
	fmt.Printf("runs:          %d\n", n)
	fmt.Printf("wins:          %d (%.1f%%)\n", wins, pct(wins, n))
	fmt.Printf("bankruptcies:  %d (%.1f%%)\n", bankruptcies, pct(bankruptcies, n))
	fmt.Printf("avg days:      %.1f\n", float64(daysSum)/float64(n))
	fmt.Printf("avg end money: %.0f\n", float64(moneySum)/float64(n))
	fmt.Printf("peak money:    %d\n", peakMoney)
	fmt.Printf("births:        %d\n", births)
	fmt.Printf("purchases:     %d\n", purchases)
	fmt.Printf("incidents:     %d\n", incidents)
	fmt.Printf("deaths:        %d", deaths)
	if len(byCause) > 0 {
		fmt.Printf(" (old age %d, plague %d, starvation %d)",
			byCause[telemetry.CauseOldAge], byCause[telemetry.CausePlague], byCause[telemetry.CauseStarvation])
	}
	fmt.Println()
}

func pct(part, total int) float64 {
	return 100 * float64(part) / float64(total)
}
