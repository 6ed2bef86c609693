package service

import (
	"log/slog"

	"contractease/internal/platform/tracer"
	signaturemetrics "contractease/internal/signature/metrics"
)

type serviceConfig struct {
	logger  *slog.Logger
	metrics *signaturemetrics.Metrics
	tracer  tracer.Tracer
}

// Option configures optional service collaborators.
type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		cfg.logger = logger
	}
}

func WithMetrics(m *signaturemetrics.Metrics) Option {
	return func(cfg *serviceConfig) {
		cfg.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(cfg *serviceConfig) {
		cfg.tracer = t
	}
}
