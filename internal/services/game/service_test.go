package game_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythictome/mythic-tome/internal/clients/gamemaster"
	dicemock "github.com/mythictome/mythic-tome/internal/dice/mock"
	"github.com/mythictome/mythic-tome/internal/domain/rulebook"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/narrative"
	"github.com/mythictome/mythic-tome/internal/repositories/campaigns"
	"github.com/mythictome/mythic-tome/internal/services/game"
)

type stubEngine struct {
	mu   sync.Mutex
	resp *gamemaster.Response
	err  error
	last *gamemaster.NarrateInput
}

func (e *stubEngine) Narrate(_ context.Context, input *gamemaster.NarrateInput) (*gamemaster.Response, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = input
	if e.err != nil {
		return nil, e.err
	}
	return e.resp, nil
}

func (e *stubEngine) lastInput() *gamemaster.NarrateInput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// blockingEngine parks inside Narrate until released, so a test can
// hold a narration turn open.
type blockingEngine struct {
	entered chan struct{}
	release chan struct{}
}

func (e *blockingEngine) Narrate(_ context.Context, _ *gamemaster.NarrateInput) (*gamemaster.Response, error) {
	close(e.entered)
	<-e.release
	return &gamemaster.Response{Text: "..."}, nil
}

func newService(t *testing.T, engine gamemaster.Client) (game.Service, game.Repository, *dicemock.ManualMockRoller) {
	t.Helper()

	repo := campaigns.NewInMemory()
	roller := dicemock.NewManualMockRoller()

	svc, err := game.New(&game.Config{
		Repository: repo,
		Engine:     engine,
		Roller:     roller,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)

	return svc, repo, roller
}

func defaultStats() map[shared.Attribute]int {
	return map[shared.Attribute]int{
		shared.AttributeStrength:     10,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 12,
		shared.AttributeIntelligence: 16,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     8,
	}
}

func createCampaignWithHero(t *testing.T, svc game.Service) string {
	t.Helper()
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, &game.CreateCampaignInput{Name: "Stíny nad Letohradem"})
	require.NoError(t, err)

	_, err = svc.CreateCharacter(ctx, &game.CreateCharacterInput{
		CampaignID: c.ID,
		Name:       "Elarion",
		Race:       "Elf",
		Class:      rulebook.ClassWizard,
		Background: "Mudrc",
		Stats:      defaultStats(),
	})
	require.NoError(t, err)

	return c.ID
}

func TestSendMessageAppliesMutations(t *testing.T) {
	args, err := json.Marshal(map[string]interface{}{
		"characterName": "Elarion",
		"newLevel":      2,
		"hpIncrease":    5,
	})
	require.NoError(t, err)

	engine := &stubEngine{resp: &gamemaster.Response{
		Text: "Elarion cíti, ako ním prúdi nová sila.",
		Calls: []narrative.RawCall{
			{Name: narrative.OpLevelUpCharacter, Args: args},
		},
	}}
	svc, _, _ := newService(t, engine)
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	out, err := svc.SendMessage(ctx, &game.SendMessageInput{
		CampaignID: campaignID,
		Text:       "Odpočívame pri ohni.",
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 3)

	assert.Equal(t, shared.RoleUser, out.Messages[0].Role)
	assert.Equal(t, "Odpočívame pri ohni.", out.Messages[0].Text)
	assert.Equal(t, shared.RoleSystem, out.Messages[1].Role)
	assert.Equal(t, "*Elarion postúpil na úroveň 2!*", out.Messages[1].Text)
	assert.Equal(t, shared.RoleModel, out.Messages[2].Role)

	// mutation committed
	stored, err := svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, stored.Party, 1)
	assert.Equal(t, 2, stored.Party[0].Level)

	// the engine sees the transcript without the new user message
	in := engine.lastInput()
	require.NotNil(t, in)
	assert.Equal(t, "Odpočívame pri ohni.", in.UserPrompt)
	assert.Len(t, in.History, 2)
	assert.Contains(t, in.SystemPrompt, "Elarion")
}

func TestSendMessageEngineFailureFallsBack(t *testing.T) {
	engine := &stubEngine{err: mterr.Unavailable("down")}
	svc, _, _ := newService(t, engine)
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	out, err := svc.SendMessage(ctx, &game.SendMessageInput{
		CampaignID: campaignID,
		Text:       "Haló?",
	})
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, shared.RoleModel, out.Messages[1].Role)
	assert.Equal(t, game.FallbackText, out.Messages[1].Text)

	stored, err := svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Party[0].Level)
}

func TestSendMessageRejectsConcurrentTurn(t *testing.T) {
	engine := &blockingEngine{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc, _, _ := newService(t, engine)
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	done := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(ctx, &game.SendMessageInput{
			CampaignID: campaignID,
			Text:       "Prvý ťah.",
		})
		done <- err
	}()

	<-engine.entered
	_, err := svc.SendMessage(ctx, &game.SendMessageInput{
		CampaignID: campaignID,
		Text:       "Druhý ťah.",
	})
	assert.True(t, mterr.IsUnavailable(err))

	close(engine.release)
	require.NoError(t, <-done)
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})

	_, err := svc.SendMessage(context.Background(), &game.SendMessageInput{
		CampaignID: "whatever",
		Text:       "   ",
	})
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestRollDiceRecordsHistory(t *testing.T) {
	svc, _, roller := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)
	roller.SetNextRoll(17)

	out, err := svc.RollDice(ctx, &game.RollDiceInput{CampaignID: campaignID, Die: 20})
	require.NoError(t, err)
	assert.Equal(t, 17, out.Result.Total)
	assert.Equal(t, 20, out.Roll.Die)
	assert.Equal(t, 17, out.Roll.Result)

	stored, err := svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, stored.DiceHistory, 1)
	assert.Equal(t, 17, stored.DiceHistory[0].Result)

	_, err = svc.RollDice(ctx, &game.RollDiceInput{CampaignID: campaignID, Die: 7})
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestAddLogEntryDropsDuplicates(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	entry, err := svc.AddLogEntry(ctx, campaignID, "Družina vstúpila do krypty.")
	require.NoError(t, err)
	require.NotNil(t, entry)

	dup, err := svc.AddLogEntry(ctx, campaignID, "Družina vstúpila do krypty.")
	require.NoError(t, err)
	assert.Nil(t, dup)

	stored, err := svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.Len(t, stored.GameLog, 1)
}

func TestCreateCharacterFirstHeroResetsSession(t *testing.T) {
	svc, _, roller := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, &game.CreateCampaignInput{Name: "Prázdny svet"})
	require.NoError(t, err)

	// session debris before any hero exists
	roller.SetNextRoll(4)
	_, err = svc.RollDice(ctx, &game.RollDiceInput{CampaignID: c.ID, Die: 6})
	require.NoError(t, err)
	_, err = svc.AddLogEntry(ctx, c.ID, "Stará poznámka.")
	require.NoError(t, err)

	_, err = svc.CreateCharacter(ctx, &game.CreateCharacterInput{
		CampaignID: c.ID,
		Name:       "Brunhilda",
		Race:       "Trpaslík",
		Class:      "Bojovník",
		Background: "Voják",
		Stats:      defaultStats(),
	})
	require.NoError(t, err)

	stored, err := svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.DiceHistory)
	assert.Empty(t, stored.GameLog)

	// a second hero keeps the running session
	roller.SetNextRoll(3)
	_, err = svc.RollDice(ctx, &game.RollDiceInput{CampaignID: c.ID, Die: 6})
	require.NoError(t, err)

	_, err = svc.CreateCharacter(ctx, &game.CreateCharacterInput{
		CampaignID: c.ID,
		Name:       "Elarion",
		Race:       "Elf",
		Class:      rulebook.ClassWizard,
		Background: "Mudrc",
		Stats:      defaultStats(),
	})
	require.NoError(t, err)

	stored, err = svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.DiceHistory, 1)
	assert.Len(t, stored.Party, 2)

	// welcome, first-hero departure, second-hero join
	require.Len(t, stored.Messages, 3)
	assert.Contains(t, stored.Messages[1].Text, "Vaša družina (Brunhilda)")
	assert.Contains(t, stored.Messages[2].Text, "K družine sa pripojili noví hrdinovia: Elarion.")
}

func TestImportCampaignRegeneratesCollidingID(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	data, err := svc.ExportCampaign(ctx, campaignID)
	require.NoError(t, err)

	imported, err := svc.ImportCampaign(ctx, data)
	require.NoError(t, err)
	assert.NotEqual(t, campaignID, imported.ID)
	assert.Equal(t, "Stíny nad Letohradem", imported.Name)
	require.Len(t, imported.Party, 1)
	assert.Equal(t, "Elarion", imported.Party[0].Name)

	list, err := svc.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestImportCampaignRejectsBadPayloads(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	_, err := svc.ImportCampaign(ctx, []byte("not json"))
	assert.True(t, mterr.IsInvalidArgument(err))

	_, err = svc.ImportCampaign(ctx, []byte(`{"description":"no name"}`))
	assert.True(t, mterr.IsInvalidArgument(err))

	_, err = svc.ImportCampaign(ctx, []byte(`{"name":"Temný les","difficulty":"impossible"}`))
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestImportHeroesAppendsWithFreshIDs(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	sourceID := createCampaignWithHero(t, svc)
	data, err := svc.ExportHeroes(ctx, sourceID)
	require.NoError(t, err)

	source, err := svc.GetCampaign(ctx, sourceID)
	require.NoError(t, err)
	originalID := source.Party[0].ID

	target, err := svc.CreateCampaign(ctx, &game.CreateCampaignInput{Name: "Druhý stôl"})
	require.NoError(t, err)

	heroes, err := svc.ImportHeroes(ctx, target.ID, data)
	require.NoError(t, err)
	require.Len(t, heroes, 1)
	assert.NotEqual(t, originalID, heroes[0].ID)
	assert.Equal(t, "Elarion", heroes[0].Name)

	stored, err := svc.GetCampaign(ctx, target.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Party, 1)
}

func TestImportHeroesRejectsBadPayloads(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})

	campaignID := createCampaignWithHero(t, svc)

	tests := []struct {
		name string
		data string
	}{
		{name: "not an array", data: `{"name":"X"}`},
		{name: "empty array", data: `[]`},
		{name: "missing stats", data: `[{"name":"X"}]`},
		{name: "missing name", data: `[{"stats":{"STR":10}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportHeroes(context.Background(), campaignID, []byte(tt.data))
			assert.True(t, mterr.IsInvalidArgument(err))
		})
	}
}

func TestDeleteCampaignClearsActivePointer(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)
	require.NoError(t, svc.SetActiveCampaign(ctx, campaignID))

	state, err := svc.GetAppState(ctx)
	require.NoError(t, err)
	assert.Equal(t, campaignID, state.ActiveCampaignID)

	require.NoError(t, svc.DeleteCampaign(ctx, campaignID))

	state, err = svc.GetAppState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.ActiveCampaignID)
}

func TestSelectModelValidatesChoice(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	require.NoError(t, svc.SelectModel(ctx, gamemaster.ModelPro))

	state, err := svc.GetAppState(ctx)
	require.NoError(t, err)
	assert.Equal(t, gamemaster.ModelPro, state.SelectedModel)

	err = svc.SelectModel(ctx, "gpt-oops")
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestUpdateCampaignSettingsPartialEdit(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	rules := "Kritické zásahy maximalizujú kocky."
	harder := shared.DifficultyHero
	updated, err := svc.UpdateCampaignSettings(ctx, &game.UpdateCampaignSettingsInput{
		CampaignID:  campaignID,
		CustomRules: &rules,
		Difficulty:  &harder,
	})
	require.NoError(t, err)
	assert.Equal(t, "Stíny nad Letohradem", updated.Name)
	assert.Equal(t, rules, updated.CustomRules)
	assert.Equal(t, shared.DifficultyHero, updated.Difficulty)

	empty := ""
	_, err = svc.UpdateCampaignSettings(ctx, &game.UpdateCampaignSettingsInput{
		CampaignID: campaignID,
		Name:       &empty,
	})
	assert.True(t, mterr.IsInvalidArgument(err))
}

func TestInventoryPassthroughs(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)
	stored, err := svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	heroID := stored.Party[0].ID

	item, err := svc.AddItem(ctx, &game.AddItemInput{
		CampaignID:  campaignID,
		CharacterID: heroID,
		Name:        "Plášť ochrany",
		Quantity:    1,
		Properties:  &shared.ItemProperties{AC: 1},
		EquipSlot:   shared.SlotBack,
	})
	require.NoError(t, err)

	require.NoError(t, svc.EquipItem(ctx, &game.EquipItemInput{
		CampaignID:  campaignID,
		CharacterID: heroID,
		ItemID:      item.ID,
	}))

	stored, err = svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, stored.Party[0].EquippedItems[shared.SlotBack])

	require.NoError(t, svc.UnequipItem(ctx, &game.UnequipItemInput{
		CampaignID:  campaignID,
		CharacterID: heroID,
		Slot:        shared.SlotBack,
	}))

	require.NoError(t, svc.SetCurrentHP(ctx, &game.SetCurrentHPInput{
		CampaignID:  campaignID,
		CharacterID: heroID,
		HP:          3,
	}))

	stored, err = svc.GetCampaign(ctx, campaignID)
	require.NoError(t, err)
	assert.Empty(t, stored.Party[0].EquippedItems[shared.SlotBack])
	assert.Equal(t, 3, stored.Party[0].HP.Current)
}

func TestCharacterOperationsOnMissingHero(t *testing.T) {
	svc, _, _ := newService(t, &stubEngine{resp: &gamemaster.Response{Text: "ok"}})
	ctx := context.Background()

	campaignID := createCampaignWithHero(t, svc)

	err := svc.SetCurrentHP(ctx, &game.SetCurrentHPInput{
		CampaignID:  campaignID,
		CharacterID: "ghost",
		HP:          1,
	})
	assert.True(t, mterr.IsNotFound(err))
}
