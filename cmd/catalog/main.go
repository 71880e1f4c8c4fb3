package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"

	"BookCatalog/internal/catalog"
	"BookCatalog/internal/config"
	"BookCatalog/pkg/kit"
)

func main() {
	service := "catalog"
	cfg := config.Load()

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var store *catalog.Store
	metrics := catalog.NewMetrics(reg, func() int { return store.Len() })
	bc := catalog.NewBroadcaster(cfg.WatchBuffer, log, metrics)
	store = catalog.NewStore(bc)
	svc := catalog.NewService(store, bc, log)

	if err := seed(svc, cfg); err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}

	limiter := kit.NewRateLimiter(cfg.MutationRate, cfg.MutationBurst)
	limiter.TrustForwardedFor = cfg.TrustProxy
	healthSrv := health.NewServer()

	grpcSrv := catalog.NewGRPCServer(&catalog.GRPCServer{Service: svc, Log: log}, catalog.GRPCDeps{
		Log:                log,
		Service:            service,
		Registry:           reg,
		MaxConcurrentCalls: int64(cfg.MaxConcurrentCalls),
		Limiter:            limiter,
		Health:             healthSrv,
		Reflection:         cfg.GRPCReflection,
	})
	grpcRunner, err := kit.NewGRPCRunner(cfg.GRPCAddr, grpcSrv)
	if err != nil {
		log.Fatal("grpc listen", zap.Error(err))
	}

	h := catalog.NewHandler(&catalog.Server{Service: svc, Log: log, Limiter: limiter}, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	err = kit.Run(context.Background(), log, kit.RunOptions{
		ShutdownTimeout: cfg.ShutdownTimeout,
		BeforeShutdown: func() {
			healthSrv.Shutdown()
			svc.Shutdown()
		},
	}, grpcRunner, kit.NewHTTPRunner(cfg.HTTPAddr, h))
	if err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
	log.Info("server stopped", zap.Int("books", store.Len()))
}

func seed(svc *catalog.Service, cfg config.Config) error {
	if cfg.SeedDemo {
		if err := svc.Seed([]catalog.Book{catalog.DemoBook}); err != nil {
			return err
		}
	}
	if cfg.SeedFile == "" {
		return nil
	}

	books, err := catalog.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := svc.Seed(books); err != nil {
		return err
	}
	svc.Log.Info("catalog seeded", zap.String("file", cfg.SeedFile), zap.Int("books", len(books)))
	return nil
}
