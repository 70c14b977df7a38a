package campaigns_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythictome/mythic-tome/internal/domain/campaign"
	"github.com/mythictome/mythic-tome/internal/domain/character"
	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/repositories/campaigns"
)

type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newRedisRepo(t *testing.T) campaigns.Repository {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return campaigns.NewRedisRepository(&campaigns.RedisRepoConfig{Client: client})
}

func repositories(t *testing.T) map[string]campaigns.Repository {
	return map[string]campaigns.Repository{
		"redis":    newRedisRepo(t),
		"inmemory": campaigns.NewInMemory(),
	}
}

func sampleCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := campaign.New(&campaign.CreateInput{
		Name:        "Temný kraj",
		Description: "Pohraniční vesnice.",
		Difficulty:  shared.DifficultyModerate,
		IDGenerator: &seqGenerator{},
	}, 1000)
	require.NoError(t, err)

	hero := &character.Character{
		ID:    "h1",
		Name:  "Elarion",
		Class: "Kouzelník",
		Level: 1,
		Stats: map[shared.Attribute]int{shared.AttributeIntelligence: 16},
		SpellSlots: map[string]*character.SpellSlotPool{
			"1": {Current: 2, Max: 2},
		},
		EquippedItems: map[shared.Slot]string{shared.SlotMainHand: "i1"},
		Inventory: []*character.InventoryItem{
			{ID: "i1", Name: "Hůl", Quantity: 1, Kind: character.KindItem, EquipSlot: shared.SlotMainHand},
		},
	}
	require.NoError(t, c.AddCharacter(hero))
	return c
}

func TestRepository_CreateAndGet(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := sampleCampaign(t)

			require.NoError(t, repo.Create(ctx, c))

			loaded, err := repo.Get(ctx, c.ID)
			require.NoError(t, err)

			assert.Equal(t, c.Name, loaded.Name)
			assert.Equal(t, campaign.WelcomeText, loaded.Messages[0].Text)
			require.Len(t, loaded.Party, 1)
			assert.Equal(t, "Elarion", loaded.Party[0].Name)
			assert.Equal(t, 16, loaded.Party[0].Stats[shared.AttributeIntelligence])
			assert.Equal(t, "i1", loaded.Party[0].EquippedItems[shared.SlotMainHand])
			require.Contains(t, loaded.Party[0].SpellSlots, "1")
			assert.Equal(t, 2, loaded.Party[0].SpellSlots["1"].Max)
		})
	}
}

func TestRepository_CreateDuplicate(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := sampleCampaign(t)

			require.NoError(t, repo.Create(ctx, c))
			err := repo.Create(ctx, c)
			assert.True(t, mterr.IsAlreadyExists(err))
		})
	}
}

func TestRepository_GetMissing(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background(), "missing")
			assert.True(t, mterr.IsNotFound(err))
		})
	}
}

func TestRepository_UpdatePersistsChanges(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := sampleCampaign(t)
			require.NoError(t, repo.Create(ctx, c))

			c.AddLogEntry("Parta vstoupila do krypty.", 2000)
			c.Party[0].Level = 2
			require.NoError(t, repo.Update(ctx, c))

			loaded, err := repo.Get(ctx, c.ID)
			require.NoError(t, err)
			require.Len(t, loaded.GameLog, 1)
			assert.Equal(t, 2, loaded.Party[0].Level)
		})
	}
}

func TestRepository_UpdateMissing(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			err := repo.Update(context.Background(), sampleCampaign(t))
			assert.True(t, mterr.IsNotFound(err))
		})
	}
}

func TestRepository_ListAndDelete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := sampleCampaign(t)
			second := sampleCampaign(t)
			second.ID = "other"
			require.NoError(t, repo.Create(ctx, first))
			require.NoError(t, repo.Create(ctx, second))

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)

			require.NoError(t, repo.Delete(ctx, first.ID))
			list, err = repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)

			err = repo.Delete(ctx, first.ID)
			assert.True(t, mterr.IsNotFound(err))
		})
	}
}

func TestRepository_AppState(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			state, err := repo.GetAppState(ctx)
			require.NoError(t, err)
			assert.Empty(t, state.ActiveCampaignID, "missing state reads as empty")

			require.NoError(t, repo.SetAppState(ctx, &campaigns.AppState{
				ActiveCampaignID: "c1",
				SelectedModel:    "gemini-3-pro-preview",
			}))

			state, err = repo.GetAppState(ctx)
			require.NoError(t, err)
			assert.Equal(t, "c1", state.ActiveCampaignID)
			assert.Equal(t, "gemini-3-pro-preview", state.SelectedModel)
		})
	}
}

func TestInMemory_GetReturnsDeepCopy(t *testing.T) {
	ctx := context.Background()
	repo := campaigns.NewInMemory()
	c := sampleCampaign(t)
	require.NoError(t, repo.Create(ctx, c))

	loaded, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	loaded.Party[0].Name = "Změněný"

	again, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Elarion", again.Party[0].Name, "stored copy is isolated from callers")
}
