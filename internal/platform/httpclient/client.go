// Package httpclient is the instrumented HTTP transport for outbound calls.
// The object store's S3 client sends every request through it, so uploads,
// deletes, and presigned reads share one circuit breaker, rate limiter,
// retry policy, and set of client spans and metrics.
//
// A request passes the breaker, waits on the limiter, picks up the inbound
// request and correlation IDs plus W3C trace headers, and is then sent with
// retries. Client satisfies the HTTPClient interface of the AWS SDK:
//
//	transport := httpclient.New(&cfg.Client, "object-store", metrics, logger)
//	s3Client := s3.New(s3.Options{HTTPClient: transport, ...})
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
)

const instrumentationName = "github.com/jsamuelsen11/taskflow-service/internal/platform/httpclient"

// Client is an http.Client wrapped with a circuit breaker, rate limiting,
// retries, ID propagation, and client spans.
type Client struct {
	httpClient  *http.Client
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil means unlimited
	retry       retryPolicy
	tracer      trace.Tracer
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client. serviceName labels spans, metrics, and the health
// check. A nil metrics disables metric recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("peer.service", serviceName))

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
		metrics: metrics,
		logger:  logger,
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(cfg.RateLimit.BurstSize, 1))
	}
	return c
}

// Do sends req, using req.Context() for cancellation, tracing, and ID
// propagation.
//
// Whenever the server answered, the response is returned with a nil error,
// even a retryable status on the last attempt, so the AWS SDK can decode the
// error body itself. The breaker still counts that answer as a failure. resp
// is nil only when the breaker rejects the call or the transport fails.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, c.send(ctx, req, &resp)
	})

	c.record(ctx, req.Method, start, resp, err)
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// Name returns the downstream identifier used in health results.
func (c *Client) Name() string {
	return c.serviceName
}

// send runs one traced, retried exchange.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", withoutQuery(req)),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	forwardIDs(ctx, req.Header)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	err := c.doWithRetry(ctx, req.WithContext(ctx), resp)
	if *resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", (*resp).StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// record runs outside the breaker so rejected calls are counted.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	status, result := 0, telemetry.ResultError
	switch {
	case breakerOpen(err):
		result = telemetry.ResultCircuitOpen
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	c.metrics.RecordClientRequest(ctx, c.serviceName, method, status, result, time.Since(start))
}

// withoutQuery drops the query string, which carries presign signatures.
func withoutQuery(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
