// Package moderation keeps per-guild warning records.
package moderation

import (
	"fmt"
	"sync"

	"github.com/PancyStudios/MaxisGo/pkg/database"
)

// DocWarns is the persisted document name.
const DocWarns = "warn"

// Persister queues document snapshots for asynchronous storage.
type Persister interface {
	Persist(name string, snapshot any)
}

// Record is one user's warnings inside a guild.
type Record struct {
	Warns  int      `bson:"warns" json:"warns"`
	Causes []string `bson:"causes" json:"causes"`
}

// Warns maps guild id → user id → Record.
type Warns struct {
	mu      sync.Mutex
	byGuild map[string]map[string]Record
	persist Persister
}

// NewWarns creates an empty store. A nil persister discards snapshots.
func NewWarns(p Persister) *Warns {
	return &Warns{
		byGuild: make(map[string]map[string]Record),
		persist: p,
	}
}

// Warn appends a cause and returns the updated record.
func (w *Warns) Warn(guildID, userID, cause string) Record {
	w.mu.Lock()
	defer w.mu.Unlock()

	users := w.byGuild[guildID]
	if users == nil {
		users = make(map[string]Record)
		w.byGuild[guildID] = users
	}
	rec := users[userID]
	rec.Warns++
	rec.Causes = append(append([]string(nil), rec.Causes...), cause)
	users[userID] = rec

	w.flush()
	return copyRecord(rec)
}

// Clear removes every warning for the user. It reports whether any existed.
func (w *Warns) Clear(guildID, userID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	users := w.byGuild[guildID]
	if _, ok := users[userID]; !ok {
		return false
	}
	delete(users, userID)
	w.flush()
	return true
}

// Get returns the user's record, if any.
func (w *Warns) Get(guildID, userID string) (Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok := w.byGuild[guildID][userID]
	return copyRecord(rec), ok
}

// Restore loads the warn document. Legacy records carry an extra id field,
// which is ignored.
func (w *Warns) Restore(docs []database.Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, doc := range docs {
		if doc.Name != DocWarns {
			continue
		}
		byGuild := make(map[string]map[string]Record)
		if err := doc.Decode(&byGuild); err != nil {
			return fmt.Errorf("restore warns: %w", err)
		}
		w.byGuild = byGuild
	}
	return nil
}

// Snapshots implements database.SnapshotSource.
func (w *Warns) Snapshots() map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return map[string]any{DocWarns: w.snapshot()}
}

func (w *Warns) snapshot() map[string]map[string]Record {
	out := make(map[string]map[string]Record, len(w.byGuild))
	for guildID, users := range w.byGuild {
		inner := make(map[string]Record, len(users))
		for userID, rec := range users {
			inner[userID] = copyRecord(rec)
		}
		out[guildID] = inner
	}
	return out
}

func (w *Warns) flush() {
	if w.persist != nil {
		w.persist.Persist(DocWarns, w.snapshot())
	}
}

func copyRecord(rec Record) Record {
	rec.Causes = append([]string(nil), rec.Causes...)
	return rec
}
