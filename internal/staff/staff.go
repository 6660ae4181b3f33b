// Package staff models the zoo roster. Each position is a closed enum
// carrying its fixed salary and care capacity.
package staff

type Position int

const (
	Director Position = iota
	Cleaner
	Vet
	Feeder
)

func (p Position) String() string {
	switch p {
	case Director:
		return "Director"
	case Cleaner:
		return "Cleaner"
	case Vet:
		return "Vet"
	case Feeder:
		return "Feeder"
	}
	return "Unknown"
}

// Salary is the daily wage, also charged once as a hiring fee.
func (p Position) Salary() int {
	switch p {
	case Director:
		return 50
	case Cleaner:
		return 80
	case Vet:
		return 150
	case Feeder:
		return 100
	}
	return 0
}

// MaxAnimals is how many animals the position can look after per day.
func (p Position) MaxAnimals() int {
	switch p {
	case Director:
		return 50
	case Cleaner:
		return 20
	case Vet:
		return 10
	case Feeder:
		return 30
	}
	return 0
}

// Hireable lists the positions open to recruitment. The director seat
// is filled once at zoo creation and is never vacant.
func Hireable() []Position {
	return []Position{Cleaner, Vet, Feeder}
}

type Employee struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	// Assigned counts animals under care today. Recomputed by the day
	// pipeline, never carried across days.
	Assigned int `json:"assigned"`
}

// ResetDay clears the daily assignment counter.
func (e *Employee) ResetDay() { e.Assigned = 0 }
