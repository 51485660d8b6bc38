package economy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// seqRNG replays IntN results in order, wrapping around.
type seqRNG struct {
	values []int
	i      int
}

func (r *seqRNG) IntN(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

type recordingPersister struct {
	mu    sync.Mutex
	names []string
	last  map[string]any
}

func (p *recordingPersister) Persist(name string, snapshot any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		p.last = make(map[string]any)
	}
	p.names = append(p.names, name)
	p.last[name] = snapshot
}

func (p *recordingPersister) count(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, got := range p.names {
		if got == name {
			n++
		}
	}
	return n
}

type recordingNotifier struct {
	mu  sync.Mutex
	txs []Transaction
}

func (n *recordingNotifier) NotifyTransaction(tx Transaction) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.txs = append(n.txs, tx)
}

type testBank struct {
	*Bank
	clock    *fakeClock
	persist  *recordingPersister
	notifier *recordingNotifier
}

func newTestBank(opts ...Option) *testBank {
	tb := &testBank{
		clock:    newFakeClock(),
		persist:  &recordingPersister{},
		notifier: &recordingNotifier{},
	}
	base := []Option{WithClock(tb.clock.Now), WithNotifier(tb.notifier)}
	tb.Bank = NewBank(tb.persist, append(base, opts...)...)
	return tb
}

// fund sets a balance directly without going through Credit.
func (tb *testBank) fund(userID string, balance int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.balances[userID] = balance
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	source := newTestBank()
	_, err := source.Credit("1", 7000)
	require.NoError(t, err)
	source.SetPassive("1", true)
	_, _, err = source.Buy("1", "juice")
	require.NoError(t, err)
	require.NoError(t, source.TryConsume("1", KindDaily))

	var docs []database.Document
	for name, snapshot := range source.Snapshots() {
		doc, err := database.EncodeDocument(name, snapshot)
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	restored := newTestBank()
	require.NoError(t, restored.Restore(docs))

	assert.Equal(t, int64(6000), restored.Balance("1"))
	assert.True(t, restored.Settings("1").Passive)
	assert.Equal(t, 1, restored.Owned("1", "Juice"))
	assert.Equal(t, KindDaily.Duration(), restored.Remaining("1", KindDaily))
}

func TestRestoreIgnoresUnknownDocuments(t *testing.T) {
	doc, err := database.EncodeDocument("reply", map[string]string{"hi": "hello"})
	require.NoError(t, err)

	b := newTestBank()
	assert.NoError(t, b.Restore([]database.Document{doc}))
}

func TestSnapshotsCoverEveryDocument(t *testing.T) {
	b := newTestBank()
	docs := b.Snapshots()

	for _, name := range []string{"balance", "usersettings", "item", "work", "rob", "daily", "weekly", "monthly"} {
		assert.Contains(t, docs, name)
	}
}

func TestEnsureSettings(t *testing.T) {
	b := newTestBank()
	b.SetBankDM("1", false)

	added := b.EnsureSettings([]string{"1", "2", "3"})

	assert.Equal(t, 2, added)
	assert.False(t, b.Settings("1").BankDM, "existing settings must be kept")
	assert.Equal(t, DefaultSettings(), b.Settings("2"))
	assert.Equal(t, 0, b.EnsureSettings([]string{"1", "2"}))
}

func TestSettingsDefaults(t *testing.T) {
	b := newTestBank()
	s := b.Settings("new")
	assert.True(t, s.BankDM)
	assert.False(t, s.Passive)

	s = b.SetBankDM("new", false)
	assert.False(t, s.BankDM)
	assert.Equal(t, 1, b.persist.count(DocSettings))
}

func TestFailedLoadLeavesStoredBalancesIntact(t *testing.T) {
	seeded, err := database.EncodeDocument(DocBalance, map[string]int64{"alice": 90000, "bob": 40000})
	require.NoError(t, err)
	store := database.NewMemoryStore(seeded)
	store.FailLoads(1, assert.AnError)

	writes := database.NewWriteBehind(store)
	b := NewBank(writes)
	require.Error(t, writes.Load(context.Background(), 1, 0, b))
	writes.Register(b)
	writes.Start()

	_, err = b.Credit("carol", 100)
	require.NoError(t, err)
	writes.SnapshotAll()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, writes.Close(ctx))

	doc, ok := store.Get(DocBalance)
	require.True(t, ok)
	var balances map[string]int64
	require.NoError(t, doc.Decode(&balances))
	assert.Equal(t, int64(90000), balances["alice"])
	assert.NotContains(t, balances, "carol")
}
