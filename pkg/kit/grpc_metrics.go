package kit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type GRPCMetrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	Streams  *prometheus.GaugeVec
}

func NewGRPCMetrics(reg prometheus.Registerer) *GRPCMetrics {
	m := &GRPCMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grpc_requests_total",
				Help: "Total gRPC calls by final status code",
			},
			[]string{labelService, labelMethod, labelCode},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "grpc_request_duration_seconds",
				Help: "gRPC unary latency",
			},
			[]string{labelService, labelMethod},
		),
		Streams: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "grpc_streams_active",
				Help: "Open server streams",
			},
			[]string{labelService, labelMethod},
		),
	}

	reg.MustRegister(m.Requests, m.Latency, m.Streams)
	return m
}

func (m *GRPCMetrics) UnaryInterceptor(service string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		m.Latency.WithLabelValues(service, info.FullMethod).
			Observe(time.Since(start).Seconds())
		m.Requests.WithLabelValues(service, info.FullMethod, status.Code(err).String()).
			Inc()
		return resp, err
	}
}

func (m *GRPCMetrics) StreamInterceptor(service string) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		active := m.Streams.WithLabelValues(service, info.FullMethod)
		active.Inc()
		defer active.Dec()

		err := handler(srv, ss)
		m.Requests.WithLabelValues(service, info.FullMethod, status.Code(err).String()).
			Inc()
		return err
	}
}
