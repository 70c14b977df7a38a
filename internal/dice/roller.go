package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// RollDie rolls a single die of the given size
	RollDie(sides int) (*RollResult, error)

	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollString rolls a damage string like "1d8" or "2d6+3"
	RollString(s string) (*RollResult, error)
}
