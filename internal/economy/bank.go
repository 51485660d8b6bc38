// Package economy implements the bot's virtual economy: balances, earn cooldowns,
// robbing and giving, the item shop and inventories.
//
// All state lives in a Bank. Every operation takes the bank lock for its whole
// check-then-act sequence, then queues a snapshot of each document it touched on
// the Persister.
package economy

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/database"
)

// Document names used for persistence
const (
	DocBalance  = "balance"
	DocSettings = "usersettings"
	DocItems    = "item"
)

// Persister queues document snapshots for asynchronous storage.
type Persister interface {
	Persist(name string, snapshot any)
}

// Notifier receives every committed transaction.
type Notifier interface {
	NotifyTransaction(tx Transaction)
}

// RNG is the subset of math/rand/v2 the economy draws from.
type RNG interface {
	IntN(n int) int
}

// Bank owns every economy map.
type Bank struct {
	mu        sync.Mutex
	balances  map[string]int64
	settings  map[string]Settings
	cooldowns map[Kind]map[string]time.Time
	items     map[string]map[string]int
	effects   map[Effect]EffectFunc
	puzzles   map[string]pendingPuzzle

	persist Persister
	notify  Notifier
	now     func() time.Time
	rng     RNG
}

// Option customizes a Bank.
type Option func(*Bank)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bank) { b.now = now }
}

// WithRNG replaces the random source.
func WithRNG(rng RNG) Option {
	return func(b *Bank) { b.rng = rng }
}

// WithNotifier sets the receipt notifier.
func WithNotifier(n Notifier) Option {
	return func(b *Bank) { b.notify = n }
}

type discardPersister struct{}

func (discardPersister) Persist(string, any) {}

type discardNotifier struct{}

func (discardNotifier) NotifyTransaction(Transaction) {}

// NewBank creates an empty bank. A nil persister discards snapshots.
func NewBank(p Persister, opts ...Option) *Bank {
	if p == nil {
		p = discardPersister{}
	}
	b := &Bank{
		balances:  make(map[string]int64),
		settings:  make(map[string]Settings),
		cooldowns: make(map[Kind]map[string]time.Time),
		items:     make(map[string]map[string]int),
		effects:   make(map[Effect]EffectFunc),
		puzzles:   make(map[string]pendingPuzzle),
		persist:   p,
		notify:    discardNotifier{},
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6d617869)),
	}
	for _, kind := range Kinds() {
		b.cooldowns[kind] = make(map[string]time.Time)
	}
	for _, opt := range opts {
		opt(b)
	}
	b.effects[EffectNitro] = b.nitro
	return b
}

// randomBetween draws uniformly from [lo, hi].
func (b *Bank) randomBetween(lo, hi int) int {
	return lo + b.rng.IntN(hi-lo+1)
}

// Restore loads the bank maps from stored documents. Unknown names are ignored.
func (b *Bank) Restore(docs []database.Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, doc := range docs {
		var err error
		switch doc.Name {
		case DocBalance:
			balances := make(map[string]int64)
			if err = doc.Decode(&balances); err == nil {
				b.balances = balances
			}
		case DocSettings:
			settings := make(map[string]Settings)
			if err = doc.Decode(&settings); err == nil {
				b.settings = settings
			}
		case DocItems:
			items := make(map[string]map[string]int)
			if err = doc.Decode(&items); err == nil {
				b.items = items
			}
		default:
			kind, ok := ParseKind(doc.Name)
			if !ok {
				continue
			}
			times := make(map[string]time.Time)
			if err = doc.Decode(&times); err == nil {
				b.cooldowns[kind] = times
			}
		}
		if err != nil {
			return fmt.Errorf("restore economy: %w", err)
		}
	}
	return nil
}

// Snapshots returns a copy of every document the bank owns.
func (b *Bank) Snapshots() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	docs := map[string]any{
		DocBalance:  b.balanceSnapshot(),
		DocSettings: b.settingsSnapshot(),
		DocItems:    b.itemsSnapshot(),
	}
	for _, kind := range Kinds() {
		docs[kind.String()] = b.cooldownSnapshot(kind)
	}
	return docs
}

func (b *Bank) balanceSnapshot() map[string]int64 {
	out := make(map[string]int64, len(b.balances))
	for id, bal := range b.balances {
		out[id] = bal
	}
	return out
}

func (b *Bank) settingsSnapshot() map[string]Settings {
	out := make(map[string]Settings, len(b.settings))
	for id, s := range b.settings {
		out[id] = s
	}
	return out
}

func (b *Bank) itemsSnapshot() map[string]map[string]int {
	out := make(map[string]map[string]int, len(b.items))
	for id, owned := range b.items {
		inner := make(map[string]int, len(owned))
		for name, count := range owned {
			inner[name] = count
		}
		out[id] = inner
	}
	return out
}

func (b *Bank) cooldownSnapshot(kind Kind) map[string]time.Time {
	times := b.cooldowns[kind]
	out := make(map[string]time.Time, len(times))
	for id, at := range times {
		out[id] = at
	}
	return out
}

// Caller must hold b.mu for all flush helpers.
func (b *Bank) flushBalances() { b.persist.Persist(DocBalance, b.balanceSnapshot()) }

func (b *Bank) flushSettings() { b.persist.Persist(DocSettings, b.settingsSnapshot()) }

func (b *Bank) flushItems() { b.persist.Persist(DocItems, b.itemsSnapshot()) }

func (b *Bank) flushCooldown(kind Kind) {
	b.persist.Persist(kind.String(), b.cooldownSnapshot(kind))
}

// RunEffect executes an item's side effect, if it has one.
func (b *Bank) RunEffect(ctx context.Context, item Item, actor ActorContext) error {
	b.mu.Lock()
	fn, ok := b.effects[item.Effect]
	b.mu.Unlock()
	if !ok || fn == nil {
		return nil
	}
	return fn(ctx, actor)
}

// RegisterEffect binds an effect to its implementation. The laptop effect needs
// the chat platform, so it is registered by the command layer.
func (b *Bank) RegisterEffect(effect Effect, fn EffectFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.effects[effect] = fn
}
