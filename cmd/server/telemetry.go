package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
)

const telemetryFlushTimeout = 5 * time.Second

// telemetryProviders holds the metric instruments and the flush hooks of
// the tracer and meter providers. Both are empty when telemetry is off, and
// a nil metrics is safe to record on.
type telemetryProviders struct {
	metrics *telemetry.Metrics
	flushes []func(context.Context) error
}

// flush shuts the providers down in reverse start order.
func (t *telemetryProviders) flush(ctx context.Context) error {
	var errs []error
	for i := len(t.flushes) - 1; i >= 0; i-- {
		errs = append(errs, t.flushes[i](ctx))
	}
	t.flushes = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}
	return nil
}

func setupTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetryProviders, error) {
	tel := &telemetryProviders{}
	if !cfg.Enabled {
		return tel, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	tel.flushes = append(tel.flushes, tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("meter: %w", err), tel.flush(ctx))
	}
	tel.flushes = append(tel.flushes, mp.Shutdown)

	if tel.metrics, err = telemetry.NewMetrics(mp, cfg.ServiceName); err != nil {
		return nil, errors.Join(fmt.Errorf("instruments: %w", err), tel.flush(ctx))
	}
	return tel, nil
}
