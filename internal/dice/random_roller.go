package dice

import (
	"math/rand"

	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// randomRoller implements Roller with math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// RollDie implements Roller.RollDie. Only the table's die sizes are
// accepted.
func (r *randomRoller) RollDie(sides int) (*RollResult, error) {
	if !Supported(sides) {
		return nil, mterr.InvalidArgumentf("unsupported die d%d", sides)
	}
	return r.Roll(1, sides, 0)
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, mterr.InvalidArgument("invalid dice count")
	}
	if sides < 2 {
		return nil, mterr.InvalidArgumentf("invalid die d%d", sides)
	}

	rolls := make([]int, count)
	rawTotal := 0
	for i := range rolls {
		rolls[i] = rand.Intn(sides) + 1
		rawTotal += rolls[i]
	}

	return newResult(count, sides, bonus, rolls, rawTotal), nil
}

// RollString implements Roller.RollString
func (r *randomRoller) RollString(s string) (*RollResult, error) {
	count, sides, bonus, err := ParseRollString(s)
	if err != nil {
		return nil, err
	}
	return r.Roll(count, sides, bonus)
}

func newResult(count, sides, bonus int, rolls []int, rawTotal int) *RollResult {
	result := &RollResult{
		Sides:    sides,
		Count:    count,
		Rolls:    rolls,
		Bonus:    bonus,
		RawTotal: rawTotal,
		Total:    rawTotal + bonus,
	}
	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}
	return result
}
