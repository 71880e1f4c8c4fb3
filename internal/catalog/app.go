package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"BookCatalog/pkg/bookspb"
	"BookCatalog/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

type GRPCDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MaxConcurrentCalls int64
	Limiter            *kit.RateLimiter

	// Health, when set, is served as grpc.health.v1.Health with the book
	// service marked SERVING.
	Health     *health.Server
	Reflection bool
}

// NewGRPCServer builds a grpc.Server with the interceptor chain and the
// BookService registered. Interceptors run outermost first. Only Insert and
// Delete go through the rate limiter.
func NewGRPCServer(s *GRPCServer, deps GRPCDeps) *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{
		kit.UnaryRecoverer(deps.Log),
		kit.UnaryLogging(deps.Log),
	}
	stream := []grpc.StreamServerInterceptor{
		kit.StreamRecoverer(deps.Log),
		kit.StreamLogging(deps.Log),
	}

	if deps.Registry != nil {
		m := kit.NewGRPCMetrics(deps.Registry)
		unary = append(unary, m.UnaryInterceptor(deps.Service))
		stream = append(stream, m.StreamInterceptor(deps.Service))
	}
	if deps.Limiter != nil {
		unary = append(unary, deps.Limiter.UnaryInterceptor(
			bookspb.BookService_Insert_FullMethodName,
			bookspb.BookService_Delete_FullMethodName,
		))
	}
	if deps.MaxConcurrentCalls > 0 {
		unary = append(unary, kit.ConcurrencyLimit(deps.MaxConcurrentCalls))
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)
	bookspb.RegisterBookServiceServer(srv, s)

	if deps.Health != nil {
		healthpb.RegisterHealthServer(srv, deps.Health)
		deps.Health.SetServingStatus(bookspb.BookService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	if deps.Reflection {
		reflection.Register(srv)
	}
	return srv
}
