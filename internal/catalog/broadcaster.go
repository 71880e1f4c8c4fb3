package catalog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultWatchBuffer = 64

type WatchState int32

const (
	WatchOpen WatchState = iota
	WatchDraining
	WatchClosed
)

func (s WatchState) String() string {
	switch s {
	case WatchOpen:
		return "open"
	case WatchDraining:
		return "draining"
	default:
		return "closed"
	}
}

// Watcher is one live subscription. Events arrive in Seq order on Events();
// the channel is closed when the broadcaster drops the watcher, after which
// Err reports why.
type Watcher struct {
	ID      string
	Created time.Time

	events chan Event
	state  atomic.Int32

	mu  sync.Mutex
	err error
}

func (w *Watcher) Events() <-chan Event { return w.events }

func (w *Watcher) State() WatchState { return WatchState(w.state.Load()) }

// Err is ErrOverrun or ErrUnavailable once the broadcaster has closed the
// watcher, nil otherwise.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Watcher) close(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()

	w.state.CompareAndSwap(int32(WatchOpen), int32(WatchDraining))
	close(w.events)
}

// Broadcaster fans events out to every registered watcher without blocking
// the publisher. A watcher whose queue is full is dropped with ErrOverrun.
type Broadcaster struct {
	mu       sync.Mutex
	watchers map[string]*Watcher
	closed   bool

	capacity int
	log      *zap.Logger
	metrics  *Metrics
}

// NewBroadcaster returns a broadcaster whose watchers buffer up to capacity
// events. log and m may be nil.
func NewBroadcaster(capacity int, log *zap.Logger, m *Metrics) *Broadcaster {
	if capacity <= 0 {
		capacity = DefaultWatchBuffer
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{
		watchers: make(map[string]*Watcher),
		capacity: capacity,
		log:      log,
		metrics:  m,
	}
}

func (b *Broadcaster) Subscribe() (*Watcher, error) {
	w := &Watcher{
		ID:      uuid.NewString(),
		Created: time.Now().UTC(),
		events:  make(chan Event, b.capacity),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrUnavailable
	}
	b.watchers[w.ID] = w
	b.metrics.setWatchers(len(b.watchers))
	return w, nil
}

func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.metrics.published(ev.Kind)

	for id, w := range b.watchers {
		select {
		case w.events <- ev:
		default:
			delete(b.watchers, id)
			w.close(ErrOverrun)
			b.metrics.overrun()
			b.log.Warn("watcher overrun",
				zap.String("watcher_id", id),
				zap.Int("capacity", b.capacity),
				zap.Uint64("seq", ev.Seq),
			)
		}
	}
	b.metrics.setWatchers(len(b.watchers))
}

// Unsubscribe removes w and releases its queue. Safe to call more than once.
func (b *Broadcaster) Unsubscribe(w *Watcher) {
	if w == nil {
		return
	}

	b.mu.Lock()
	if _, ok := b.watchers[w.ID]; ok {
		delete(b.watchers, w.ID)
		w.close(nil)
		b.metrics.setWatchers(len(b.watchers))
	}
	b.mu.Unlock()

	w.state.Store(int32(WatchClosed))
}

// Close drops every watcher with ErrUnavailable and refuses new subscriptions.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, w := range b.watchers {
		delete(b.watchers, id)
		w.close(ErrUnavailable)
	}
	b.metrics.setWatchers(0)
}

func (b *Broadcaster) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.watchers)
}
