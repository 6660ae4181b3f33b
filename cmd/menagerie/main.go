// Command menagerie runs the interactive zoo: a menu loop over the turn
// engine, one day advanced at a time on player command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"menagerie/internal/animal"
	"menagerie/internal/breeding"
	"menagerie/internal/config"
	"menagerie/internal/enclosure"
	"menagerie/internal/rng"
	"menagerie/internal/staff"
	"menagerie/internal/zoo"
)

func main() {
	configPath := flag.String("config", "menagerie.yaml", "path to the config file")
	seed := flag.Uint64("seed", 0, "fixed rng seed, 0 draws one from entropy")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)

	name := cfg.Game.Name
	if name == "" {
		name = promptString(in, "Zoo name: ")
	}
	capital := cfg.Game.StartingCapital
	if capital <= 0 {
		capital = promptInt(in, fmt.Sprintf("Starting capital (default %d): ", cfg.Balance.StartingCapital), 0, 1<<30)
		if capital == 0 {
			capital = cfg.Balance.StartingCapital
		}
	}

	var src rng.Source
	switch {
	case *seed != 0:
		src = rng.NewSeeded(*seed)
	case cfg.Game.Seed != 0:
		src = rng.NewSeeded(cfg.Game.Seed)
	default:
		src = rng.New()
	}

	z := zoo.New(zoo.Options{Name: name, Capital: capital, Balance: cfg.Balance, Source: src})

	for z.Status() == zoo.StatusRunning {
		printHeader(z)
		switch promptInt(in, "> ", 0, 4) {
		case 1:
			animalsMenu(z, in)
		case 2:
			staffMenu(z, in)
		case 3:
			enclosuresMenu(z, in)
		case 4:
			resourcesMenu(z, in)
		case 0:
			advanceDay(z)
		}
	}

	switch z.Status() {
	case zoo.StatusBankrupt:
		fmt.Println("\nBANKRUPTCY! The zoo is out of money.")
	case zoo.StatusVictory:
		fmt.Printf("\nCongratulations! You kept %s running for %d days.\n", z.Name, z.Balance().DayLimit)
	}
}

func printHeader(z *zoo.Zoo) {
	fmt.Printf("\n=== %s ===\n", z.Name)
	fmt.Printf("Day: %d\n", z.Day)
	fmt.Printf("Money: %d coins\n", z.Money)
	fmt.Printf("Food: %d kg\n", z.Food)
	fmt.Printf("Popularity: %d\n", z.Popularity)
	fmt.Printf("Animals: %d\n", z.TotalAnimals())
	fmt.Printf("Enclosures: %d\n", len(z.Enclosures))
	fmt.Printf("Staff: %d\n", len(z.Roster))
	fmt.Printf("Visitors today: %d\n", 2*z.Popularity)
	fmt.Println("\n[1] Animals")
	fmt.Println("[2] Staff")
	fmt.Println("[3] Enclosures")
	fmt.Println("[4] Resources")
	fmt.Println("[0] Next day")
}

func advanceDay(z *zoo.Zoo) {
	report, err := z.NextDay()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("\n--- Day %d ---\n", report.Day)
	if report.Event != nil {
		fmt.Println("Event:", report.Event.Describe())
	}
	for _, d := range report.Deaths {
		fmt.Printf("%q died of %s.\n", d.Name, strings.ReplaceAll(d.Cause, "_", " "))
	}
	for _, name := range report.Infected {
		fmt.Printf("%q has fallen ill!\n", name)
	}
	fmt.Printf("Visitors: %d\n", report.Visitors)
	fmt.Printf("Income: +%d coins\n", report.Income)
	fmt.Printf("Payroll: -%d coins\n", report.Payroll)
	fmt.Printf("Facilities: -%d coins\n", report.FacilityExpense)
	fmt.Printf("Food: %d kg eaten, -%d coins\n", report.FoodConsumed, report.FoodExpense)
	fmt.Printf("Popularity: %d -> %d\n", report.PopularityBefore, report.PopularityAfter)
	fmt.Printf("Budget: %d coins\n", z.Money)
}

func animalsMenu(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Animals ---")
	fmt.Println("1. Buy an animal")
	fmt.Println("2. Sell an animal")
	fmt.Println("3. View animals")
	fmt.Println("4. Treat an animal")
	fmt.Printf("5. Refresh the market (%d coins after day %d)\n",
		z.Balance().MarketRefreshFee, z.Balance().MarketFreeDays)
	fmt.Println("6. Breed animals")
	fmt.Println("7. Rename an animal")
	fmt.Println("0. Back")
	switch promptInt(in, "> ", 0, 7) {
	case 1:
		buyAnimal(z, in)
	case 2:
		sellAnimal(z, in)
	case 3:
		viewAnimals(z)
	case 4:
		cureAnimal(z, in)
	case 5:
		refreshMarket(z, in)
	case 6:
		breedAnimals(z, in)
	case 7:
		renameAnimal(z, in)
	}
}

func buyAnimal(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Market ---")
	if len(z.Market.Animals) == 0 {
		fmt.Println("The market is empty.")
		return
	}
	for i, a := range z.Market.Animals {
		fmt.Printf("%d. %s, age %d days, %d kg, %s, %s, %s: %d coins\n",
			i+1, a.Species, a.AgeInDays, a.Weight, a.Climate, diet(a), a.Gender, a.Price())
	}
	idx := promptInt(in, "Animal number (0 to cancel): ", 0, len(z.Market.Animals))
	if idx == 0 {
		return
	}
	pick := z.Market.Animals[idx-1]

	fmt.Printf("Final price: %d coins\n", pick.Price())
	if !confirm(in, "Buy this animal?") {
		fmt.Println("Purchase cancelled.")
		return
	}

	suitable := z.SuitableEnclosures(pick)
	if len(suitable) == 0 {
		fmt.Println("No suitable enclosure!")
		return
	}
	name := promptString(in, "Name the animal: ")
	fmt.Println("Choose an enclosure:")
	for n, encIdx := range suitable {
		enc := z.Enclosures[encIdx]
		fmt.Printf("%d. %s, %d/%d animals\n", n+1, enc.Climate, len(enc.Animals), enc.Capacity)
	}
	chosen := promptInt(in, "> ", 1, len(suitable))

	res, err := z.BuyAnimal(idx-1, suitable[chosen-1], name)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q has settled in.\n", res.Animal.Name)
}

func sellAnimal(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Sale ---")
	encIdx := chooseEnclosure(z, in)
	if encIdx < 0 {
		return
	}
	enc := z.Enclosures[encIdx]
	animalIdx := chooseAnimal(enc, in)
	if animalIdx < 0 {
		return
	}
	a := enc.Animals[animalIdx]

	proceeds := a.Price() * z.Balance().SellRatePct / 100
	fmt.Printf("%q sells for %d coins.\n", a.Name, proceeds)
	if !confirm(in, "Sell this animal?") {
		fmt.Println("Sale cancelled.")
		return
	}

	res, err := z.SellAnimal(encIdx, animalIdx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q sold for %d coins.\n", res.Name, res.Proceeds)
}

func viewAnimals(z *zoo.Zoo) {
	if z.TotalAnimals() == 0 {
		fmt.Println("You have no animals yet.")
		return
	}
	for i, enc := range z.Enclosures {
		if len(enc.Animals) == 0 {
			continue
		}
		fmt.Printf("\nEnclosure %d (%s):\n", i+1, enc.Climate)
		for _, a := range enc.Animals {
			fmt.Printf("- %s, %s, age %d days, %d kg, %s%s, parents: %s and %s\n",
				a.Name, a.Species, a.AgeInDays, a.Weight, a.Gender, sickMark(a), a.Parents[0], a.Parents[1])
		}
	}
}

func cureAnimal(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Treatment ---")
	encIdx := chooseEnclosure(z, in)
	if encIdx < 0 {
		return
	}
	enc := z.Enclosures[encIdx]
	if enc.InfectedCount() == 0 {
		fmt.Println("No sick animals in this enclosure.")
		return
	}
	animalIdx := chooseAnimal(enc, in)
	if animalIdx < 0 {
		return
	}
	a := enc.Animals[animalIdx]

	fmt.Printf("Treating %q costs %d coins.\n", a.Name, z.Balance().CureCost)
	if !confirm(in, "Proceed?") {
		fmt.Println("Treatment cancelled.")
		return
	}

	if err := z.CureAnimal(encIdx, animalIdx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q has recovered!\n", a.Name)
}

func refreshMarket(z *zoo.Zoo, in *bufio.Scanner) {
	fee := z.Market.RefreshFee(z.Day, z.Balance().MarketFreeDays, z.Balance().MarketRefreshFee)
	if fee > 0 {
		fmt.Printf("Refreshing the market now costs %d coins.\n", fee)
		if !confirm(in, "Pay and refresh?") {
			return
		}
	}
	if _, err := z.RefreshMarket(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("The market has been restocked!")
}

func breedAnimals(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Breeding ---")
	encIdx := chooseEnclosure(z, in)
	if encIdx < 0 {
		return
	}

	plan, outcome, err := z.PlanBreeding(encIdx)
	if err != nil {
		fmt.Println(err)
		return
	}
	if outcome != breeding.Paired {
		fmt.Println("No compatible pair in this enclosure.")
		return
	}

	fmt.Println("Found a pair:")
	fmt.Printf("1. %s (%s)\n", plan.Parent1.Name, plan.Parent1.Species)
	fmt.Printf("2. %s (%s)\n", plan.Parent2.Name, plan.Parent2.Species)
	if !confirm(in, "Breed these animals?") {
		fmt.Println("Breeding cancelled.")
		return
	}

	born := z.CommitBreeding(plan, func(i int, species string) string {
		return promptString(in, fmt.Sprintf("Name the newborn %s: ", species))
	})
	if len(born) == 0 {
		fmt.Println("The enclosure is full! Breeding impossible.")
		return
	}
	for _, child := range born {
		fmt.Printf("%q was born: %s, %s.\n", child.Name, child.Species, child.Gender)
	}
}

func renameAnimal(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Rename ---")
	encIdx := chooseEnclosure(z, in)
	if encIdx < 0 {
		return
	}
	enc := z.Enclosures[encIdx]
	animalIdx := chooseAnimal(enc, in)
	if animalIdx < 0 {
		return
	}

	fmt.Printf("Current name: %s\n", enc.Animals[animalIdx].Name)
	name := promptString(in, "New name: ")
	if err := z.RenameAnimal(encIdx, animalIdx, name); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Renamed to %q.\n", name)
}

func staffMenu(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Staff ---")
	fmt.Println("1. Hire")
	fmt.Println("2. Fire")
	fmt.Println("3. View roster")
	fmt.Println("0. Back")
	switch promptInt(in, "> ", 0, 3) {
	case 1:
		hire(z, in)
	case 2:
		fire(z, in)
	case 3:
		viewRoster(z)
	}
}

func hire(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Hiring ---")
	name := promptString(in, "Employee name: ")
	open := staff.Hireable()
	for i, pos := range open {
		fmt.Printf("%d. %s (salary %d, cares for up to %d animals)\n",
			i+1, pos, pos.Salary(), pos.MaxAnimals())
	}
	pick := promptInt(in, "> ", 1, len(open))

	if _, err := z.Hire(name, open[pick-1]); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Employee hired!")
}

func fire(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Dismissal ---")
	for i, emp := range z.Roster {
		fmt.Printf("%d. %s (%s)\n", i+1, emp.Name, emp.Position)
	}
	idx := promptInt(in, "Employee number (0 to cancel): ", 0, len(z.Roster))
	if idx == 0 {
		return
	}

	emp, err := z.Fire(idx - 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s has been dismissed.\n", emp.Name)
}

func viewRoster(z *zoo.Zoo) {
	fmt.Println("\nRoster:")
	for _, emp := range z.Roster {
		fmt.Printf("- %s (%s), salary %d, caring for %d animals\n",
			emp.Name, emp.Position, emp.Position.Salary(), emp.Assigned)
	}
}

func enclosuresMenu(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Enclosures ---")
	fmt.Println("1. Build")
	fmt.Println("2. Upgrade")
	fmt.Println("3. View")
	fmt.Println("0. Back")
	switch promptInt(in, "> ", 0, 3) {
	case 1:
		buildEnclosure(z, in)
	case 2:
		upgradeEnclosure(z, in)
	case 3:
		viewEnclosures(z)
	}
}

func buildEnclosure(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- New enclosure ---")
	fmt.Println("Pick a climate:")
	for i, c := range animal.Climates() {
		fmt.Printf("%d. %s\n", i, c)
	}
	climate := animal.Climate(promptInt(in, "> ", 0, len(animal.Climates())-1))
	capacity := promptInt(in, "Capacity: ", 1, 1000)

	fmt.Printf("Construction cost: %d coins\n", enclosure.BuildCost(capacity, climate))
	if !confirm(in, "Build this enclosure?") {
		fmt.Println("Construction cancelled.")
		return
	}

	if _, err := z.BuildEnclosure(capacity, climate); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Enclosure built!")
}

func upgradeEnclosure(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Upgrade ---")
	encIdx := chooseEnclosure(z, in)
	if encIdx < 0 {
		return
	}
	enc := z.Enclosures[encIdx]
	if enc.Level >= enclosure.MaxLevel {
		fmt.Println("Already at the maximum level!")
		return
	}

	fmt.Printf("Upgrade cost: %d coins\n", enc.UpgradeFee())
	if !confirm(in, "Upgrade this enclosure?") {
		fmt.Println("Upgrade cancelled.")
		return
	}

	res, err := z.UpgradeEnclosure(encIdx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Upgraded to level %d, capacity %d.\n", res.Level, res.Capacity)
}

func viewEnclosures(z *zoo.Zoo) {
	if len(z.Enclosures) == 0 {
		fmt.Println("You have no enclosures!")
		return
	}
	fmt.Println("\nEnclosures:")
	for i, enc := range z.Enclosures {
		fmt.Printf("%d. %s, level %d, %d/%d animals, daily cost %d\n",
			i+1, enc.Climate, enc.Level, len(enc.Animals), enc.Capacity, enc.DailyCost)
	}
}

func resourcesMenu(z *zoo.Zoo, in *bufio.Scanner) {
	fmt.Println("\n--- Resources ---")
	fmt.Println("1. Buy food")
	fmt.Println("2. Run an ad campaign")
	fmt.Println("0. Back")
	switch promptInt(in, "> ", 0, 2) {
	case 1:
		kg := promptInt(in, fmt.Sprintf("Kilograms (%d coins each): ", z.Balance().FoodUnitCost), 1, 1<<20)
		if err := z.BuyFood(kg); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Bought %d kg of food.\n", kg)
	case 2:
		fmt.Printf("One popularity point costs %d coins.\n", z.Balance().AdPointCost)
		spend := promptInt(in, "Spend: ", 1, 1<<30)
		gained, err := z.RunAdCampaign(spend)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Popularity increased by %d!\n", gained)
	}
}

// chooseEnclosure lists enclosures and returns the picked index, or -1
// when there are none or the player cancels.
func chooseEnclosure(z *zoo.Zoo, in *bufio.Scanner) int {
	if len(z.Enclosures) == 0 {
		fmt.Println("You have no enclosures!")
		return -1
	}
	for i, enc := range z.Enclosures {
		fmt.Printf("%d. %s, level %d, %d/%d animals\n",
			i+1, enc.Climate, enc.Level, len(enc.Animals), enc.Capacity)
	}
	return promptInt(in, "Enclosure number (0 to cancel): ", 0, len(z.Enclosures)) - 1
}

// chooseAnimal lists an enclosure's occupants and returns the picked
// index, or -1 when it is empty or the player cancels.
func chooseAnimal(enc *enclosure.Enclosure, in *bufio.Scanner) int {
	if len(enc.Animals) == 0 {
		fmt.Println("This enclosure is empty!")
		return -1
	}
	for i, a := range enc.Animals {
		fmt.Printf("%d. %s (%s), age %d days%s\n", i+1, a.Name, a.Species, a.AgeInDays, sickMark(a))
	}
	return promptInt(in, "Animal number (0 to cancel): ", 0, len(enc.Animals)) - 1
}

func diet(a *animal.Animal) string {
	if a.Carnivore {
		return "carnivore"
	}
	return "herbivore"
}

func sickMark(a *animal.Animal) string {
	if a.Infected {
		return ", sick"
	}
	return ""
}

func confirm(in *bufio.Scanner, prompt string) bool {
	fmt.Println(prompt)
	fmt.Println("1. Yes")
	fmt.Println("2. No")
	return promptInt(in, "> ", 1, 2) == 1
}

// promptInt keeps asking until the input parses and lands in [lo, hi].
// End of input quits the game.
func promptInt(in *bufio.Scanner, prompt string, lo, hi int) int {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		v, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || v < lo || v > hi {
			fmt.Println("Invalid input, try again.")
			continue
		}
		return v
	}
}

func promptString(in *bufio.Scanner, prompt string) string {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		if s := strings.TrimSpace(in.Text()); s != "" {
			return s
		}
	}
}
