package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"BookCatalog/pkg/bookspb"
)

// GRPCServer serves books.BookService on top of a Service.
type GRPCServer struct {
	bookspb.UnimplementedBookServiceServer

	Service *Service
	Log     *zap.Logger
}

var _ bookspb.BookServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) List(ctx context.Context, _ *bookspb.Empty) (*bookspb.BookList, error) {
	books, err := s.Service.List(ctx)
	if err != nil {
		return nil, s.Status(err)
	}

	out := &bookspb.BookList{Books: make([]*bookspb.Book, 0, len(books))}
	for _, b := range books {
		out.Books = append(out.Books, toPB(b))
	}
	return out, nil
}

func (s *GRPCServer) Insert(ctx context.Context, in *bookspb.Book) (*bookspb.Empty, error) {
	if _, err := s.Service.Insert(ctx, fromPB(in)); err != nil {
		return nil, s.Status(err)
	}
	return &bookspb.Empty{}, nil
}

func (s *GRPCServer) Get(ctx context.Context, in *bookspb.BookIdRequest) (*bookspb.Book, error) {
	b, err := s.Service.Get(ctx, in.GetId())
	if err != nil {
		return nil, s.Status(err)
	}
	return toPB(b), nil
}

func (s *GRPCServer) Delete(ctx context.Context, in *bookspb.BookIdRequest) (*bookspb.Empty, error) {
	if err := s.Service.Delete(ctx, in.GetId()); err != nil {
		return nil, s.Status(err)
	}
	return &bookspb.Empty{}, nil
}

// Watch sends response headers once the subscription is registered, so a
// client that has read the headers is guaranteed to see every later mutation.
func (s *GRPCServer) Watch(_ *bookspb.Empty, stream bookspb.BookService_WatchServer) error {
	ctx := stream.Context()

	w, err := s.Service.Subscribe(ctx)
	if err != nil {
		return s.Status(err)
	}
	defer s.Service.Unsubscribe(w)

	if err := stream.SendHeader(metadata.Pairs("watcher-id", w.ID)); err != nil {
		return err
	}

	err = s.Service.Drain(ctx, w, func(ev Event) error {
		return stream.Send(toPBEvent(ev))
	})
	return s.Status(err)
}

// Status is the single place catalog errors become gRPC status codes.
func (s *GRPCServer) Status(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUnavailable):
		return status.Error(codes.Unavailable, "server shutting down")
	case errors.Is(err, ErrOverrun):
		return status.Error(codes.ResourceExhausted, "watch overrun: client too slow")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	if s.Log != nil {
		s.Log.Error("catalog call failed", zap.Error(err))
	}
	return status.Error(codes.Internal, "server error")
}

func toPB(b Book) *bookspb.Book {
	return &bookspb.Book{Id: b.ID, Title: b.Title, Author: b.Author}
}

func fromPB(b *bookspb.Book) Book {
	if b == nil {
		return Book{}
	}
	return Book{ID: b.GetId(), Title: b.GetTitle(), Author: b.GetAuthor()}
}

func toPBEvent(ev Event) *bookspb.WatchEvent {
	out := &bookspb.WatchEvent{Seq: ev.Seq, Book: toPB(ev.Book)}
	switch ev.Kind {
	case EventInserted:
		out.Kind = bookspb.Kind_INSERTED
	case EventDeleted:
		out.Kind = bookspb.Kind_DELETED
	}
	return out
}
