package animal

import "menagerie/internal/rng"

// SpeciesTable lists the species the market can roll for each climate.
// Names are two tokens so breeding recombination always has material.
var SpeciesTable = map[Climate][]string{
	Desert: {"Sand Dragon", "Stone Scorpion", "Sun Lizard", "Dune Wolf", "Giant Scarab"},
	Forest: {"Forest Phoenix", "Shadow Deer", "Crystal Bear", "Spark Fox", "Thorn Unicorn"},
	Arctic: {"Ice Bear", "Snow Dragon", "Polar Wolf", "Frost Owl", "Glacier Fox"},
	Ocean:  {"Deep Kraken", "Electric Shark", "Sea Dragon", "Tide Serpent", "Pearl Turtle"},
}

// RandomSpecies picks a species for the climate.
func RandomSpecies(src rng.Source, c Climate) string {
	table := SpeciesTable[c]
	if len(table) == 0 {
		return "Unknown Creature"
	}
	return table[src.IntN(len(table))]
}
