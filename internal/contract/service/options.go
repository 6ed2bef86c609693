package service

import (
	"log/slog"

	contractmetrics "contractease/internal/contract/metrics"
	"contractease/internal/platform/tracer"
)

type serviceConfig struct {
	logger  *slog.Logger
	metrics *contractmetrics.Metrics
	tracer  tracer.Tracer
}

// Option configures optional service collaborators.
type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		cfg.logger = logger
	}
}

func WithMetrics(m *contractmetrics.Metrics) Option {
	return func(cfg *serviceConfig) {
		cfg.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(cfg *serviceConfig) {
		cfg.tracer = t
	}
}
