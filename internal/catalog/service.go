package catalog

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Service is the transport-neutral façade over the Store and Broadcaster.
// Mutations and new watches are refused with ErrUnavailable after Shutdown;
// reads keep working until the listeners stop.
type Service struct {
	Store       *Store
	Broadcaster *Broadcaster
	Log         *zap.Logger

	shuttingDown atomic.Bool
}

func NewService(store *Store, bc *Broadcaster, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: store, Broadcaster: bc, Log: log}
}

// List returns every book ordered by id. Reads stay open during shutdown.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Store.List(), nil
}

// Insert trims and validates b, then stores it. The stored book is returned.
func (s *Service) Insert(ctx context.Context, b Book) (Book, error) {
	b = normalizeBook(b)
	if err := validateBook(b); err != nil {
		return Book{}, err
	}
	if err := s.intake(ctx); err != nil {
		return Book{}, err
	}
	if err := s.Store.Insert(b); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	if err := validateID(id); err != nil {
		return Book{}, err
	}
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	return s.Store.Get(id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.intake(ctx); err != nil {
		return err
	}
	return s.Store.Delete(id)
}

func (s *Service) Subscribe(ctx context.Context) (*Watcher, error) {
	if err := s.intake(ctx); err != nil {
		return nil, err
	}
	w, err := s.Broadcaster.Subscribe()
	if err != nil {
		return nil, err
	}
	s.Log.Debug("watch opened", zap.String("watcher_id", w.ID))
	return w, nil
}

func (s *Service) Unsubscribe(w *Watcher) {
	s.Broadcaster.Unsubscribe(w)
	s.Log.Debug("watch closed", zap.String("watcher_id", w.ID))
}

// Drain hands every event of w to send until ctx is done, send fails, or the
// broadcaster closes w. Events already buffered when w is closed are still
// delivered before its terminal error is returned.
func (s *Service) Drain(ctx context.Context, w *Watcher, send func(Event) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events():
			if !ok {
				return w.Err()
			}
			if err := send(ev); err != nil {
				return err
			}
		}
	}
}

// Watch subscribes, drains and always unsubscribes.
func (s *Service) Watch(ctx context.Context, send func(Event) error) error {
	w, err := s.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer s.Unsubscribe(w)

	return s.Drain(ctx, w, send)
}

// Shutdown closes intake and ends every live watch with ErrUnavailable.
func (s *Service) Shutdown() {
	if s.shuttingDown.Swap(true) {
		return
	}
	s.Broadcaster.Close()
	s.Log.Info("catalog shutting down", zap.Int("books", s.Store.Len()))
}

func (s *Service) Ready() bool { return !s.shuttingDown.Load() }

func (s *Service) intake(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.shuttingDown.Load() {
		return ErrUnavailable
	}
	return nil
}
