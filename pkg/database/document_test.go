package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodeDocumentRejectsScalars(t *testing.T) {
	_, err := EncodeDocument("balance", 42)
	assert.Error(t, err)
}

func TestDecodeEmptyDocument(t *testing.T) {
	var balances map[string]int64
	require.NoError(t, Document{Name: "balance"}.Decode(&balances))
	assert.Nil(t, balances)
}

func TestCooldownSnapshotKeepsTimestamps(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	doc, err := EncodeDocument("daily", map[string]time.Time{"42": at})
	require.NoError(t, err)

	var restored map[string]time.Time
	require.NoError(t, doc.Decode(&restored))
	assert.True(t, restored["42"].Equal(at))
}

// legacy converts a document written in the parallel key/val layout
func legacy(t *testing.T, doc bson.M) Document {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var stored storedDocument
	require.NoError(t, bson.Unmarshal(raw, &stored))

	converted, err := stored.toDocument()
	require.NoError(t, err)
	return converted
}

func TestLegacyBalanceDocument(t *testing.T) {
	doc := legacy(t, bson.M{
		"name": "balance",
		"key":  bson.A{int64(783667580106702848), int64(10)},
		"val":  bson.A{int64(5400), int32(12)},
	})

	var balances map[string]int64
	require.NoError(t, doc.Decode(&balances))
	assert.Equal(t, "balance", doc.Name)
	assert.Equal(t, int64(5400), balances["783667580106702848"])
	assert.Equal(t, int64(12), balances["10"])
}

func TestLegacyNestedItemDocument(t *testing.T) {
	doc := legacy(t, bson.M{
		"name": "item",
		"key":  bson.A{int64(7)},
		"val": bson.A{
			bson.M{"key": bson.A{"Juice", "Hacker Laptop"}, "val": bson.A{int32(2), int32(1)}},
		},
	})

	var items map[string]map[string]int
	require.NoError(t, doc.Decode(&items))
	assert.Equal(t, 2, items["7"]["Juice"])
	assert.Equal(t, 1, items["7"]["Hacker Laptop"])
}

func TestLegacyKeepsInsertionOrder(t *testing.T) {
	doc := legacy(t, bson.M{
		"name": "reply",
		"key":  bson.A{"hello", "bye", "gm"},
		"val":  bson.A{"hi!", "see ya", "good morning"},
	})

	var replies bson.D
	require.NoError(t, doc.Decode(&replies))
	require.Len(t, replies, 3)
	assert.Equal(t, "hello", replies[0].Key)
	assert.Equal(t, "bye", replies[1].Key)
	assert.Equal(t, "gm", replies[2].Key)
}

func TestCurrentLayoutPassesThrough(t *testing.T) {
	original, err := EncodeDocument("balance", map[string]int64{"1": 100})
	require.NoError(t, err)

	doc := legacy(t, bson.M{"name": "balance", "data": original.Data})

	var balances map[string]int64
	require.NoError(t, doc.Decode(&balances))
	assert.Equal(t, int64(100), balances["1"])
}
