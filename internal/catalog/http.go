package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookCatalog/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Service *Service
	Log     *zap.Logger
	Limiter *kit.RateLimiter
}

type bookList struct {
	Books []Book `json:"books"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !s.Service.Ready() {
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/books", func(br chi.Router) {
		br.Get("/", s.list)
		br.Get("/watch", s.watch)
		br.Get("/{id}", s.get)

		br.Group(func(mr chi.Router) {
			if s.Limiter != nil {
				mr.Use(s.Limiter.Middleware)
			}
			mr.Post("/", s.insert)
			mr.Delete("/{id}", s.delete)
		})
	})

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	books, err := s.Service.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	kit.WriteJSON(w, http.StatusOK, bookList{Books: books})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := s.Service.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, id)
		return
	}
	kit.WriteJSON(w, http.StatusOK, b)
}

func (s *Server) insert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in Book
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": "extra data after json object"})
		return
	}

	b, err := s.Service.Insert(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, in.ID)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, b)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	if err := s.Service.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// watch streams catalog events as Server-Sent Events until the client goes
// away or the server shuts down.
func (s *Server) watch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wt, err := s.Service.Subscribe(ctx)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	defer s.Service.Unsubscribe(wt)

	if err := kit.StartEventStream(w); err != nil {
		return
	}

	err = s.Service.Drain(ctx, wt, func(ev Event) error {
		return kit.WriteEvent(w, ev.Seq, ev.Kind.String(), ev)
	})
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrOverrun) {
		_ = kit.WriteEvent(w, 0, "error", kit.ErrorResponse{Error: err.Error()})
		return
	}
	if s.Log != nil {
		s.Log.Warn("watch stream ended", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, id int64) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
	case errors.Is(err, ErrAlreadyExists):
		kit.WriteError(w, r, http.StatusConflict, "already exists", map[string]any{"id": id})
	case errors.Is(err, ErrInvalidArgument):
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrUnavailable):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "shutting down", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "request cancelled", nil)
	default:
		if s.Log != nil {
			s.Log.Error("catalog request failed", zap.Error(err), zap.Int64("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}
