// Package replies stores custom trigger → reply pairs in insertion order.
package replies

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/PancyStudios/MaxisGo/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

// DocReplies is the persisted document name.
const DocReplies = "reply"

// ErrEmpty is returned when a trigger or reply is blank.
var ErrEmpty = errors.New("both text and reply are required")

// Persister queues document snapshots for asynchronous storage.
type Persister interface {
	Persist(name string, snapshot any)
}

// Reply is one custom reply.
type Reply struct {
	Trigger string
	Text    string
}

// Store holds the replies. Matching walks them in the order they were first set.
type Store struct {
	mu      sync.Mutex
	entries []Reply
	persist Persister
}

// New creates an empty store. A nil persister discards snapshots.
func New(p Persister) *Store {
	return &Store{persist: p}
}

// Set adds a reply, or replaces the text of an existing trigger in place.
func (s *Store) Set(trigger, text string) error {
	if trigger == "" || text == "" {
		return ErrEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(trigger); i >= 0 {
		s.entries[i].Text = text
	} else {
		s.entries = append(s.entries, Reply{Trigger: trigger, Text: text})
	}
	s.flush()
	return nil
}

// Remove deletes the first reply whose trigger contains text or is contained
// in it, and returns that trigger.
func (s *Store) Remove(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.entries {
		if strings.Contains(text, r.Trigger) || strings.Contains(r.Trigger, text) {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			s.flush()
			return r.Trigger, true
		}
	}
	return "", false
}

// Match returns the reply for the first trigger found in content.
func (s *Store) Match(content string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.entries {
		if strings.Contains(content, r.Trigger) {
			return r.Text, true
		}
	}
	return "", false
}

// List returns every reply in order.
func (s *Store) List() []Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reply(nil), s.entries...)
}

func (s *Store) index(trigger string) int {
	for i, r := range s.entries {
		if r.Trigger == trigger {
			return i
		}
	}
	return -1
}

// Restore loads the reply document, keeping its key order.
func (s *Store) Restore(docs []database.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		if doc.Name != DocReplies {
			continue
		}
		var ordered bson.D
		if err := doc.Decode(&ordered); err != nil {
			return fmt.Errorf("restore replies: %w", err)
		}
		entries := make([]Reply, 0, len(ordered))
		for _, e := range ordered {
			text, ok := e.Value.(string)
			if !ok || e.Key == "" {
				continue
			}
			entries = append(entries, Reply{Trigger: e.Key, Text: text})
		}
		s.entries = entries
	}
	return nil
}

// Snapshots implements database.SnapshotSource.
func (s *Store) Snapshots() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]any{DocReplies: s.snapshot()}
}

func (s *Store) snapshot() bson.D {
	out := make(bson.D, 0, len(s.entries))
	for _, r := range s.entries {
		out = append(out, bson.E{Key: r.Trigger, Value: r.Text})
	}
	return out
}

func (s *Store) flush() {
	if s.persist != nil {
		s.persist.Persist(DocReplies, s.snapshot())
	}
}
