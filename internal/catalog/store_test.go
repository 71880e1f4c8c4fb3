package catalog_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BookCatalog/internal/catalog"
)

type recorder struct {
	mu     sync.Mutex
	events []catalog.Event
}

func (r *recorder) Publish(ev catalog.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []catalog.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]catalog.Event(nil), r.events...)
}

var dune = catalog.Book{ID: 1, Title: "Dune", Author: "Frank Herbert"}

func TestStore_InsertGetListDelete(t *testing.T) {
	s := catalog.NewStore(nil)
	assert.Empty(t, s.List())

	require.NoError(t, s.Insert(catalog.Book{ID: 7, Title: "Emma", Author: "Jane Austen"}))
	require.NoError(t, s.Insert(dune))

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, dune, got)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(7), list[1].ID)

	require.NoError(t, s.Delete(1))
	_, err = s.Get(1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestStore_DuplicateInsertIsRejected(t *testing.T) {
	rec := &recorder{}
	s := catalog.NewStore(rec)

	require.NoError(t, s.Insert(dune))
	err := s.Insert(catalog.Book{ID: 1, Title: "Other", Author: "Someone"})
	require.ErrorIs(t, err, catalog.ErrAlreadyExists)

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, dune, got, "existing record must not be replaced")
	assert.Len(t, rec.snapshot(), 1, "failed insert must not publish")
}

func TestStore_DeleteMissing(t *testing.T) {
	rec := &recorder{}
	s := catalog.NewStore(rec)

	assert.ErrorIs(t, s.Delete(42), catalog.ErrNotFound)
	assert.Empty(t, rec.snapshot())
}

func TestStore_ListIsSnapshot(t *testing.T) {
	s := catalog.NewStore(nil)
	require.NoError(t, s.Insert(dune))

	list := s.List()
	list[0].Title = "changed"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
}

func TestStore_PublishesEventsInMutationOrder(t *testing.T) {
	rec := &recorder{}
	s := catalog.NewStore(rec)

	require.NoError(t, s.Insert(dune))
	require.NoError(t, s.Insert(catalog.Book{ID: 2, Title: "Emma", Author: "Jane Austen"}))
	require.NoError(t, s.Delete(1))

	evs := rec.snapshot()
	require.Len(t, evs, 3)

	assert.Equal(t, catalog.EventInserted, evs[0].Kind)
	assert.Equal(t, int64(1), evs[0].Book.ID)
	assert.Equal(t, catalog.EventInserted, evs[1].Kind)
	assert.Equal(t, int64(2), evs[1].Book.ID)
	assert.Equal(t, catalog.EventDeleted, evs[2].Kind)
	assert.Equal(t, dune, evs[2].Book, "delete carries the removed record")

	for i, ev := range evs {
		assert.Equal(t, uint64(i+1), ev.Seq)
	}
}

func TestStore_ConcurrentInsertsOfSameID(t *testing.T) {
	s := catalog.NewStore(nil)

	const n = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Insert(catalog.Book{ID: 5, Title: "T", Author: string(rune('a' + i%26))})
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, catalog.ErrAlreadyExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, s.Len())
}

// numberedBook carries its id in every field so a torn read is detectable.
func numberedBook(i int64) catalog.Book {
	return catalog.Book{ID: i, Title: fmt.Sprintf("t%d", i), Author: fmt.Sprintf("a%d", i)}
}

func assertWhole(t *testing.T, b catalog.Book) {
	t.Helper()
	assert.Equal(t, fmt.Sprintf("t%d", b.ID), b.Title)
	assert.Equal(t, fmt.Sprintf("a%d", b.ID), b.Author)
}

func TestStore_ConcurrentReadersSeeWholeRecords(t *testing.T) {
	rec := &recorder{}
	s := catalog.NewStore(rec)

	const (
		writers = 200
		readers = 8
	)

	var (
		wg   sync.WaitGroup
		done = make(chan struct{})
	)

	for i := int64(1); i <= writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Insert(numberedBook(i)))
		}()
	}

	var readersWG sync.WaitGroup
	for r := range readers {
		readersWG.Add(1)
		go func() {
			defer readersWG.Done()
			id := int64(r + 1)
			for {
				select {
				case <-done:
					return
				default:
				}

				for _, b := range s.List() {
					assertWhole(t, b)
				}
				if b, err := s.Get(id); err == nil {
					assert.Equal(t, id, b.ID)
					assertWhole(t, b)
				} else {
					assert.ErrorIs(t, err, catalog.ErrNotFound)
				}
				id = id%writers + 1
			}
		}()
	}

	wg.Wait()
	close(done)
	readersWG.Wait()

	require.Equal(t, writers, s.Len())
	list := s.List()
	require.Len(t, list, writers)
	for i, b := range list {
		assert.Equal(t, int64(i+1), b.ID)
		assertWhole(t, b)
	}
	for _, ev := range rec.snapshot() {
		assertWhole(t, ev.Book)
	}
}
