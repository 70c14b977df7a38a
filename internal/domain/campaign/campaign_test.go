package campaign_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
)

type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := campaign.New(&campaign.CreateInput{
		Name:        "Temný kraj",
		Description: "Pohraniční vesnice sužovaná stíny.",
		IDGenerator: &seqGenerator{},
	}, 1000)
	require.NoError(t, err)
	return c
}

func TestNew_StartsWithWelcomeMessage(t *testing.T) {
	c := newTestCampaign(t)

	require.Len(t, c.Messages, 1)
	assert.Equal(t, shared.RoleModel, c.Messages[0].Role)
	assert.Equal(t, campaign.WelcomeText, c.Messages[0].Text)
	assert.Equal(t, shared.DifficultyModerate, c.Difficulty, "difficulty defaults to moderate")
	assert.Equal(t, int64(1000), c.LastPlayed)
}

func TestNew_ValidationErrors(t *testing.T) {
	_, err := campaign.New(&campaign.CreateInput{Name: "   "}, 0)
	assert.True(t, mterr.IsInvalidArgument(err))

	_, err = campaign.New(&campaign.CreateInput{Name: "X", Difficulty: "nightmare"}, 0)
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestRecordRoll_PrependsAndTrims(t *testing.T) {
	c := newTestCampaign(t)

	for i := 0; i < 55; i++ {
		c.RecordRoll(20, i%20+1, int64(2000+i))
	}

	assert.Len(t, c.DiceHistory, 50, "history is capped")
	assert.Equal(t, int64(2054), c.DiceHistory[0].Timestamp, "newest first")
}

func TestAddLogEntry_PrependsAndDeduplicates(t *testing.T) {
	c := newTestCampaign(t)

	first := c.AddLogEntry("Parta vstoupila do krypty.", 2000)
	require.NotNil(t, first)
	second := c.AddLogEntry("Objevili prastarý oltář.", 3000)
	require.NotNil(t, second)

	assert.Equal(t, second.ID, c.GameLog[0].ID, "newest first")
	assert.Equal(t, int64(3000), c.LastPlayed)

	dup := c.AddLogEntry("Parta vstoupila do krypty.", 4000)
	assert.Nil(t, dup, "duplicate text is dropped")
	assert.Len(t, c.GameLog, 2)
	assert.Equal(t, int64(3000), c.LastPlayed, "dropped entry does not touch the stamp")
}

func TestFindCharacter_CaseInsensitive(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.AddCharacter(&character.Character{ID: "h1", Name: "Elarion"}))

	assert.NotNil(t, c.FindCharacter("elarion"))
	assert.NotNil(t, c.FindCharacter("ELARION"))
	assert.Nil(t, c.FindCharacter("Gruff"))
}

func TestAddCharacter_RejectsDuplicateID(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.AddCharacter(&character.Character{ID: "h1", Name: "Elarion"}))

	err := c.AddCharacter(&character.Character{ID: "h1", Name: "Jiný"})
	assert.True(t, mterr.IsAlreadyExists(err))
}

func TestRemoveCharacter(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.AddCharacter(&character.Character{ID: "h1", Name: "Elarion"}))
	require.NoError(t, c.AddCharacter(&character.Character{ID: "h2", Name: "Gruff"}))

	require.NoError(t, c.RemoveCharacter("h1"))
	assert.Len(t, c.Party, 1)

	err := c.RemoveCharacter("h1")
	assert.True(t, mterr.IsNotFound(err))
}

func TestCloneParty_IsDeep(t *testing.T) {
	c := newTestCampaign(t)
	hero := &character.Character{
		ID:    "h1",
		Name:  "Elarion",
		Stats: map[shared.Attribute]int{shared.AttributeStrength: 10},
	}
	require.NoError(t, c.AddCharacter(hero))

	snapshot := c.CloneParty()
	snapshot[0].Stats[shared.AttributeStrength] = 18
	snapshot[0].Name = "Změněný"

	assert.Equal(t, 10, hero.Stats[shared.AttributeStrength])
	assert.Equal(t, "Elarion", hero.Name)
}

func TestReplaceParty_CommitsSnapshot(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.AddCharacter(&character.Character{ID: "h1", Name: "Elarion"}))

	snapshot := c.CloneParty()
	snapshot[0].Name = "Elarion Moudrý"
	c.ReplaceParty(snapshot)

	assert.Equal(t, "Elarion Moudrý", c.Party[0].Name)

	c.ReplaceParty(nil)
	assert.NotNil(t, c.Party)
	assert.Empty(t, c.Party)
}

func TestClearSessionHistory(t *testing.T) {
	c := newTestCampaign(t)
	c.RecordRoll(20, 17, 2000)
	c.AddLogEntry("Zápis.", 2000)

	c.ClearSessionHistory()

	assert.Empty(t, c.DiceHistory)
	assert.Empty(t, c.GameLog)
}
