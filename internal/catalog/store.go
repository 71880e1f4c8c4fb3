package catalog

import (
	"sort"
	"sync"
)

// Publisher receives every mutation applied to a Store. Publish is called with
// the store's write lock held and must not block.
type Publisher interface {
	Publish(Event)
}

type Store struct {
	mu  sync.RWMutex
	m   map[int64]Book
	seq uint64
	pub Publisher
}

// NewStore returns an empty store. pub may be nil.
func NewStore(pub Publisher) *Store {
	return &Store{m: map[int64]Book{}, pub: pub}
}

// List returns a snapshot sorted by id.
func (s *Store) List() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.m))
	for _, b := range s.m {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int64) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.m[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

// Insert adds b. An existing id is never replaced.
func (s *Store) Insert(b Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[b.ID]; ok {
		return ErrAlreadyExists
	}
	s.m[b.ID] = b
	s.publish(EventInserted, b)
	return nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.m[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.m, id)
	s.publish(EventDeleted, b)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// publish must be called with s.mu held for writing.
func (s *Store) publish(kind EventKind, b Book) {
	s.seq++
	if s.pub == nil {
		return
	}
	s.pub.Publish(Event{Seq: s.seq, Kind: kind, Book: b})
}
