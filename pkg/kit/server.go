package kit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// Runner is a listener that serves until Shutdown is called.
type Runner interface {
	Name() string
	Addr() string
	Serve() error
	Shutdown(ctx context.Context) error
}

type HTTPRunner struct {
	Server *http.Server
}

func NewHTTPRunner(addr string, h http.Handler) *HTTPRunner {
	return &HTTPRunner{Server: &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func (r *HTTPRunner) Name() string { return "http" }
func (r *HTTPRunner) Addr() string { return r.Server.Addr }

func (r *HTTPRunner) Serve() error {
	if err := r.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *HTTPRunner) Shutdown(ctx context.Context) error {
	return r.Server.Shutdown(ctx)
}

type GRPCRunner struct {
	Server *grpc.Server

	addr string
	lis  net.Listener
}

// NewGRPCRunner listens on addr immediately so bind errors surface before
// anything is started.
func NewGRPCRunner(addr string, s *grpc.Server) (*GRPCRunner, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &GRPCRunner{Server: s, addr: addr, lis: lis}, nil
}

func (r *GRPCRunner) Name() string { return "grpc" }
func (r *GRPCRunner) Addr() string { return r.lis.Addr().String() }

func (r *GRPCRunner) Serve() error {
	if err := r.Server.Serve(r.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Shutdown waits for in-flight calls and falls back to a hard stop when ctx
// expires first.
func (r *GRPCRunner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.Server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.Server.Stop()
		<-done
		return ctx.Err()
	}
}

type RunOptions struct {
	ShutdownTimeout time.Duration

	// BeforeShutdown runs once, after the stop signal and before any runner
	// is asked to shut down.
	BeforeShutdown func()
}

// Run serves every runner until ctx is cancelled, SIGINT/SIGTERM arrives, or
// one runner fails, then shuts all of them down.
func Run(ctx context.Context, log *zap.Logger, opts RunOptions, runners ...Runner) error {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, r := range runners {
		g.Go(func() error {
			log.Info("server starting", zap.String("server", r.Name()), zap.String("addr", r.Addr()))
			if err := r.Serve(); err != nil {
				return fmt.Errorf("%s server: %w", r.Name(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal", zap.NamedError("cause", context.Cause(gctx)))

		if opts.BeforeShutdown != nil {
			opts.BeforeShutdown()
		}

		sctx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, r := range runners {
			if err := r.Shutdown(sctx); err != nil {
				errs = append(errs, fmt.Errorf("%s shutdown: %w", r.Name(), err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
