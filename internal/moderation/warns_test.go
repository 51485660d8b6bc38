package moderation

import (
	"testing"

	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type countingPersister struct {
	count int
	last  any
}

func (p *countingPersister) Persist(name string, snapshot any) {
	p.count++
	p.last = snapshot
}

func TestWarnAccumulates(t *testing.T) {
	p := &countingPersister{}
	w := NewWarns(p)

	w.Warn("g", "u", "spam")
	rec := w.Warn("g", "u", "caps")

	assert.Equal(t, 2, rec.Warns)
	assert.Equal(t, []string{"spam", "caps"}, rec.Causes)
	assert.Equal(t, 2, p.count)

	_, ok := w.Get("other", "u")
	assert.False(t, ok, "warnings are per guild")
}

func TestGetReturnsCopy(t *testing.T) {
	w := NewWarns(nil)
	w.Warn("g", "u", "spam")

	rec, ok := w.Get("g", "u")
	require.True(t, ok)
	rec.Causes[0] = "changed"

	rec, _ = w.Get("g", "u")
	assert.Equal(t, "spam", rec.Causes[0])
}

func TestClear(t *testing.T) {
	p := &countingPersister{}
	w := NewWarns(p)

	assert.False(t, w.Clear("g", "u"))
	assert.Equal(t, 0, p.count)

	w.Warn("g", "u", "spam")
	assert.True(t, w.Clear("g", "u"))
	_, ok := w.Get("g", "u")
	assert.False(t, ok)

	rec := w.Warn("g", "u", "again")
	assert.Equal(t, 1, rec.Warns, "count restarts after clearing")
}

func TestWarnsRoundTrip(t *testing.T) {
	w := NewWarns(nil)
	w.Warn("g1", "u1", "spam")
	w.Warn("g1", "u1", "caps")
	w.Warn("g2", "u2", "rude")

	doc, err := database.EncodeDocument(DocWarns, w.Snapshots()[DocWarns])
	require.NoError(t, err)

	restored := NewWarns(nil)
	require.NoError(t, restored.Restore([]database.Document{doc}))

	rec, ok := restored.Get("g1", "u1")
	require.True(t, ok)
	assert.Equal(t, Record{Warns: 2, Causes: []string{"spam", "caps"}}, rec)
	rec, ok = restored.Get("g2", "u2")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Warns)
}

func TestRestoreLegacyRecord(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "10", Value: bson.D{
			{Key: "20", Value: bson.D{
				{Key: "id", Value: int64(20)},
				{Key: "warns", Value: int32(1)},
				{Key: "causes", Value: bson.A{"spam"}},
			}},
		}},
	})
	require.NoError(t, err)

	w := NewWarns(nil)
	require.NoError(t, w.Restore([]database.Document{{Name: DocWarns, Data: raw}}))

	rec, ok := w.Get("10", "20")
	require.True(t, ok)
	assert.Equal(t, Record{Warns: 1, Causes: []string{"spam"}}, rec)
}
