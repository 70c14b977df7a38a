// Package dice rolls the polyhedral dice the table uses. Rolls are
// single dice or "NdS+B" damage strings; a natural 20 or 1 on a lone
// d20 is flagged as crit or fumble.
package dice

import (
	"strconv"
	"strings"

	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

// SupportedDice lists the die sizes the roller accepts.
var SupportedDice = []int{4, 6, 8, 10, 12, 20, 100}

// RollResult is the outcome of one roll request.
type RollResult struct {
	Sides    int   `json:"sides"`
	Count    int   `json:"count"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	RawTotal int   `json:"rawTotal"`
	Total    int   `json:"total"`
	IsCrit   bool  `json:"isCrit"`
	IsFumble bool  `json:"isFumble"`
}

// Supported reports whether the die size is one the table rolls.
func Supported(sides int) bool {
	for _, d := range SupportedDice {
		if d == sides {
			return true
		}
	}
	return false
}

// ParseRollString splits a damage string like "1d8" or "2d6+3" into
// count, sides and bonus.
func ParseRollString(s string) (count, sides, bonus int, err error) {
	dicePart := s
	if head, tail, found := strings.Cut(s, "+"); found {
		bonus, err = strconv.Atoi(strings.TrimSpace(tail))
		if err != nil {
			return 0, 0, 0, mterr.InvalidArgumentf("invalid roll string %q", s)
		}
		dicePart = head
	}

	countPart, sidesPart, found := strings.Cut(strings.TrimSpace(dicePart), "d")
	if !found {
		return 0, 0, 0, mterr.InvalidArgumentf("invalid roll string %q", s)
	}

	count = 1
	if countPart != "" {
		count, err = strconv.Atoi(countPart)
		if err != nil {
			return 0, 0, 0, mterr.InvalidArgumentf("invalid roll string %q", s)
		}
	}

	sides, err = strconv.Atoi(sidesPart)
	if err != nil {
		return 0, 0, 0, mterr.InvalidArgumentf("invalid roll string %q", s)
	}

	return count, sides, bonus, nil
}
