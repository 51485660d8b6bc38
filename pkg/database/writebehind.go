package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// SnapshotSource is implemented by every state store that owns documents.
type SnapshotSource interface {
	Snapshots() map[string]any
}

// Restorer rebuilds in-memory state from stored documents. Documents it
// does not own must be ignored.
type Restorer interface {
	Restore(docs []Document) error
}

// WriteBehind flushes document snapshots to a DocumentStore from a single
// background worker, in the order the documents were first queued. A document
// queued again before it was written is replaced by the newer snapshot.
// Failures are logged and dropped; the next mutation writes a fresh copy.
type WriteBehind struct {
	store   DocumentStore
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]Document
	order   []string
	closed  bool
	started bool
	sealed  bool
	blocked map[string]bool
	sources []SnapshotSource

	wake chan struct{}
	done chan struct{}
	cron *cron.Cron
}

// NewWriteBehind creates a queue in front of store. Call Start to begin writing.
func NewWriteBehind(store DocumentStore) *WriteBehind {
	return &WriteBehind{
		store:   store,
		timeout: 10 * time.Second,
		pending: make(map[string]Document),
		blocked: make(map[string]bool),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (w *WriteBehind) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.run()
}

// Persist encodes the snapshot right away and queues it for writing.
// It never blocks on the store.
func (w *WriteBehind) Persist(name string, snapshot any) {
	doc, err := EncodeDocument(name, snapshot)
	if err != nil {
		metrics.RecordSave(name, err)
		logger.Error(fmt.Sprintf("Persistence failure: %v", err), "WriteBehind")
		return
	}
	w.enqueue(doc)
}

func (w *WriteBehind) enqueue(doc Document) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		logger.Warn(fmt.Sprintf("Cola cerrada, '%s' descartado", doc.Name), "WriteBehind")
		return
	}
	if w.sealed || w.blocked[doc.Name] {
		w.mu.Unlock()
		logger.Debug(fmt.Sprintf("'%s' no se cargó, no se sobrescribe", doc.Name), "WriteBehind")
		return
	}
	if _, queued := w.pending[doc.Name]; !queued {
		w.order = append(w.order, doc.Name)
	}
	w.pending[doc.Name] = doc
	metrics.SetQueueDepth(len(w.order))
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Load restores every restorer from the store before anything is written.
// LoadAll is retried up to attempts times, waiting delay between tries. If it
// never succeeds the queue stays sealed and every document is dropped, so the
// stored copies survive. A document a restorer cannot decode stays blocked
// the same way while the others are written normally.
func (w *WriteBehind) Load(ctx context.Context, attempts int, delay time.Duration, restorers ...Restorer) error {
	w.mu.Lock()
	w.sealed = true
	w.mu.Unlock()

	var (
		docs []Document
		err  error
	)
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("load documents: %w", ctx.Err())
			case <-time.After(delay):
			}
		}

		loadCtx, cancel := context.WithTimeout(ctx, w.timeout)
		docs, err = w.store.LoadAll(loadCtx)
		cancel()
		if err == nil {
			break
		}
		logger.Warn(fmt.Sprintf("Carga fallida (intento %d/%d): %v", i+1, attempts, err), "WriteBehind")
	}
	if err != nil {
		logger.Critical("No se pudo cargar el estado, las escrituras quedan deshabilitadas", "WriteBehind")
		return fmt.Errorf("load documents: %w", err)
	}

	blocked := make(map[string]bool)
	var failures []error
	for _, doc := range docs {
		for _, r := range restorers {
			if err := r.Restore([]Document{doc}); err != nil {
				blocked[doc.Name] = true
				failures = append(failures, err)
			}
		}
	}

	w.mu.Lock()
	w.blocked = blocked
	w.sealed = false
	w.mu.Unlock()

	for name := range blocked {
		logger.Error(fmt.Sprintf("'%s' no se pudo restaurar, no se escribirá", name), "WriteBehind")
	}
	logger.Info(fmt.Sprintf("Estado restaurado desde %d documentos", len(docs)), "WriteBehind")
	return errors.Join(failures...)
}

// Blocked returns the documents that are never written because they failed to load.
func (w *WriteBehind) Blocked() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.blocked))
	for name := range w.blocked {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pending returns the number of documents waiting to be written.
func (w *WriteBehind) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.order)
}

func (w *WriteBehind) next() (Document, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.order) == 0 {
		return Document{}, false
	}
	name := w.order[0]
	w.order = w.order[1:]
	doc := w.pending[name]
	delete(w.pending, name)
	metrics.SetQueueDepth(len(w.order))
	return doc, true
}

func (w *WriteBehind) run() {
	defer close(w.done)
	for {
		for {
			doc, ok := w.next()
			if !ok {
				break
			}
			w.save(doc)
		}

		w.mu.Lock()
		finished := w.closed && len(w.order) == 0
		w.mu.Unlock()
		if finished {
			return
		}
		<-w.wake
	}
}

func (w *WriteBehind) save(doc Document) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	err := w.store.Save(ctx, doc)
	metrics.RecordSave(doc.Name, err)
	if err != nil {
		logger.Error(fmt.Sprintf("Persistence failure '%s': %v", doc.Name, err), "WriteBehind")
	}
}

// Register adds a source whose documents are written by SnapshotAll.
func (w *WriteBehind) Register(sources ...SnapshotSource) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sources = append(w.sources, sources...)
}

// SnapshotAll queues a full copy of every registered document.
func (w *WriteBehind) SnapshotAll() {
	w.mu.Lock()
	sources := append([]SnapshotSource(nil), w.sources...)
	w.mu.Unlock()

	count := 0
	for _, src := range sources {
		for name, snapshot := range src.Snapshots() {
			w.Persist(name, snapshot)
			count++
		}
	}
	logger.Debug(fmt.Sprintf("Snapshot completo: %d documentos encolados", count), "WriteBehind")
}

// Schedule runs SnapshotAll on the given cron spec (for example "@every 30m").
func (w *WriteBehind) Schedule(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, w.SnapshotAll); err != nil {
		return fmt.Errorf("schedule snapshots: %w", err)
	}
	c.Start()

	w.mu.Lock()
	w.cron = c
	w.mu.Unlock()
	return nil
}

// Close stops accepting documents and waits for the queue to drain.
func (w *WriteBehind) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.cron != nil {
		w.cron.Stop()
	}
	w.closed = true
	started := w.started
	w.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case w.wake <- struct{}{}:
	default:
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("write-behind drain: %w", ctx.Err())
	}
}
