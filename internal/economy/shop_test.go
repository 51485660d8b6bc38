package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActor struct{ user, channel, guild string }

func (a fakeActor) UserID() string    { return a.user }
func (a fakeActor) ChannelID() string { return a.channel }
func (a fakeActor) GuildID() string   { return a.guild }

func TestCatalog(t *testing.T) {
	items := Catalog()
	require.Len(t, items, 7)

	want := map[string]struct {
		cost       int64
		persistent bool
	}{
		"juice":  {1000, false},
		"nitro":  {5400, false},
		"code":   {90000, true},
		"laptop": {60000, true},
		"cat":    {60000, true},
		"pass":   {100000, true},
		"magna":  {500000, true},
	}
	for _, item := range items {
		w, ok := want[item.Token]
		require.True(t, ok, item.Token)
		assert.Equal(t, w.cost, item.Cost, item.Name)
		assert.Equal(t, w.persistent, item.Persistent, item.Name)
	}

	items[0].Cost = 1
	juice, _ := FindItem("juice")
	assert.Equal(t, int64(1000), juice.Cost, "Catalog returns a copy")
}

func TestFindItem(t *testing.T) {
	item, ok := FindItem("  NiTrO ")
	require.True(t, ok)
	assert.Equal(t, "Nitro", item.Name)

	_, ok = FindItem("Nitro Boost")
	assert.False(t, ok)
}

func TestBuy(t *testing.T) {
	b := newTestBank()
	b.fund("1", 70000)

	item, count, err := b.Buy("1", "laptop")

	require.NoError(t, err)
	assert.Equal(t, ItemHackerLaptop, item.Name)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(10000), b.Balance("1"))
	assert.Equal(t, 1, b.persist.count(DocItems))
}

func TestBuyAlreadyOwned(t *testing.T) {
	for _, token := range []string{"juice", "cat"} {
		t.Run(token, func(t *testing.T) {
			b := newTestBank()
			b.fund("1", 200000)
			_, _, err := b.Buy("1", token)
			require.NoError(t, err)
			before := b.Balance("1")

			_, _, err = b.Buy("1", token)

			assert.ErrorIs(t, err, ErrAlreadyOwned)
			assert.Equal(t, before, b.Balance("1"))
			assert.Equal(t, 1, b.Owned("1", mustItem(t, token).Name))
		})
	}
}

func TestBuyUnknownItem(t *testing.T) {
	b := newTestBank()
	_, _, err := b.Buy("1", "yacht")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBuyNitroWithExactBalance(t *testing.T) {
	b := newTestBank()
	b.fund("1", 5400)

	_, count, err := b.Buy("1", "nitro")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(0), b.Balance("1"))

	_, err = b.Use("1", "nitro")
	require.NoError(t, err)

	_, _, err = b.Buy("1", "nitro")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 0, b.Owned("1", "Nitro"))
}

func TestUse(t *testing.T) {
	b := newTestBank()
	b.fund("1", 200000)
	_, _, err := b.Buy("1", "juice")
	require.NoError(t, err)
	_, _, err = b.Buy("1", "pass")
	require.NoError(t, err)

	item, err := b.Use("1", "juice")
	require.NoError(t, err)
	assert.Equal(t, "You drink some juice, and get refreshed.", item.UseMessage)
	assert.Equal(t, 0, b.Owned("1", "Juice"))

	_, err = b.Use("1", "juice")
	assert.ErrorIs(t, err, ErrNotOwned)

	for i := 0; i < 3; i++ {
		_, err = b.Use("1", "pass")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, b.Owned("1", "Premium Pass"))
}

func TestUseErrors(t *testing.T) {
	b := newTestBank()
	_, err := b.Use("1", "nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = b.Use("1", "magna")
	assert.ErrorIs(t, err, ErrNotOwned)
}

func TestInventoryInCatalogOrder(t *testing.T) {
	b := newTestBank()
	b.fund("1", 200000)
	for _, token := range []string{"cat", "juice", "code"} {
		_, _, err := b.Buy("1", token)
		require.NoError(t, err)
	}
	_, err := b.Use("1", "juice")
	require.NoError(t, err)

	var names []string
	for _, h := range b.Inventory("1") {
		names = append(names, h.Item.Name)
		assert.Equal(t, 1, h.Count)
	}
	assert.Equal(t, []string{ItemHackerCode, "Pet Cat"}, names)
}

func TestNitroEffect(t *testing.T) {
	b := newTestBank()
	require.NoError(t, b.TryConsume("1", KindWork))
	require.NoError(t, b.TryConsume("1", KindDaily))
	b.clock.Advance(5 * time.Second)

	nitro := mustItem(t, "nitro")
	require.NoError(t, b.RunEffect(context.Background(), nitro, fakeActor{user: "1"}))

	assert.Equal(t, time.Duration(0), b.Remaining("1", KindWork))
	assert.Equal(t, time.Duration(0), b.Remaining("1", KindDaily))
}

func TestRegisteredEffect(t *testing.T) {
	b := newTestBank()
	var got ActorContext
	b.RegisterEffect(EffectLaptop, func(_ context.Context, actor ActorContext) error {
		got = actor
		return nil
	})

	actor := fakeActor{user: "1", channel: "c", guild: "g"}
	require.NoError(t, b.RunEffect(context.Background(), mustItem(t, "laptop"), actor))
	assert.Equal(t, actor, got)

	assert.NoError(t, b.RunEffect(context.Background(), mustItem(t, "juice"), actor))
}

func mustItem(t *testing.T, token string) Item {
	t.Helper()
	item, ok := FindItem(token)
	require.True(t, ok, token)
	return item
}
