package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Attribute keys shared by the instruments below.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrTaskStatus  = attribute.Key("task.status")
	AttrDenyReason  = attribute.Key("access.reason")
)

// Result values for AttrResult.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
	ResultGranted     = "granted"
	ResultDenied      = "denied"
)

// Metrics holds the service's instruments. A nil *Metrics records nothing,
// so callers may pass one around unconditionally.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	TaskTransitionTotal metric.Int64Counter
	AccessDecisionTotal metric.Int64Counter
}

// instruments collects the first creation error so NewMetrics reads as a list.
type instruments struct {
	meter metric.Meter
	err   error
}

func (b *instruments) histogram(name, desc, unit string) metric.Float64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	if b.err != nil {
		return nil
	}
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
	return c
}

// NewMetrics creates every instrument on a meter named after the service.
func NewMetrics(mp *sdkmetric.MeterProvider, serviceName string) (*Metrics, error) {
	b := &instruments{meter: mp.Meter(serviceName)}
	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of object store requests", "s"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Total number of object store requests", "{request}"),
		TaskTransitionTotal:   b.counter("taskflow.task.transitions", "Task status changes by target status", "{transition}"),
		AccessDecisionTotal:   b.counter("taskflow.event.access_checks", "Event access checks by outcome", "{check}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// RecordServerRequest records one handled inbound request. route is the
// matched pattern, not the raw path.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= http.StatusBadRequest {
		result = ResultError
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordClientRequest records one outbound call to peer. status is zero when
// no response arrived.
func (m *Metrics) RecordClientRequest(ctx context.Context, peer, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(peer),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}

// TaskTransition counts a task moving into status.
func (m *Metrics) TaskTransition(ctx context.Context, status domain.RecStatus) {
	if m == nil {
		return
	}
	m.TaskTransitionTotal.Add(ctx, 1, metric.WithAttributes(AttrTaskStatus.String(string(status))))
}

// AccessDecision counts one event access check.
func (m *Metrics) AccessDecision(ctx context.Context, granted bool, reason string) {
	if m == nil {
		return
	}
	result := ResultGranted
	if !granted {
		result = ResultDenied
	}
	m.AccessDecisionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrResult.String(result),
		AttrDenyReason.String(reason),
	))
}
