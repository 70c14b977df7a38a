package shared

// Difficulty is the campaign difficulty setting.
type Difficulty string

const (
	DifficultyStory    Difficulty = "story"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHero     Difficulty = "hero"
)

// Valid reports whether d is one of the three known settings.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyStory, DifficultyModerate, DifficultyHero:
		return true
	}
	return false
}

// MessageRole tags a transcript message by its author.
type MessageRole string

const (
	// RoleUser is a player utterance
	RoleUser MessageRole = "user"

	// RoleModel is narrative prose from the game-master engine
	RoleModel MessageRole = "model"

	// RoleSystem is a mutation notice, rendered distinctly from prose
	RoleSystem MessageRole = "system"
)
