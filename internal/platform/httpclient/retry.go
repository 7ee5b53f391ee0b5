package httpclient

import (
	"bytes"
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

// jitterFraction spreads each delay by up to 25% either way.
const jitterFraction = 0.25

// retryPolicy decides whether and when an outbound request is resent.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
	// jitter returns a value in [0, 1). Tests pin it.
	jitter func() float64
}

// retryableStatus lists the answers worth another attempt. S3 reports
// throttling as 503 SlowDown.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// idempotent reports whether method may be resent without side effects.
// Object PUTs replace the whole object, so they qualify.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

// retryableErr reports whether a transport error may succeed on retry.
func retryableErr(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var (
		unknownAuth x509.UnknownAuthorityError
		hostname    x509.HostnameError
		invalid     x509.CertificateInvalidError
	)
	if errors.As(err, &unknownAuth) || errors.As(err, &hostname) || errors.As(err, &invalid) {
		return false
	}
	return true
}

// delay returns the wait before retry number attempt (1 for the first
// retry). A Retry-After from the previous answer wins when present, capped
// at maxInterval.
func (p retryPolicy) delay(attempt int, prev *http.Response) time.Duration {
	if d, ok := retryAfter(prev); ok {
		return min(d, p.maxInterval)
	}

	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.maxInterval))

	jitter := p.jitter
	if jitter == nil {
		jitter = rand.Float64
	}
	d += d * jitterFraction * (2*jitter() - 1)
	return time.Duration(max(d, 0))
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(time.Until(at), 0), true
	}
	return 0, false
}

// doWithRetry sends req until it gets a final answer or runs out of
// attempts. Non-idempotent requests get exactly one attempt. The last
// answer is stored in *resp with its body open, retryable or not, and the
// returned error is non-nil when that answer still asked for a retry.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts < 1 {
		return fmt.Errorf("httpclient: max attempts must be at least 1, got %d", c.retry.maxAttempts)
	}
	attempts := c.retry.maxAttempts
	if !idempotent(req.Method) {
		attempts = 1
	}

	rewind, err := replayableBody(req)
	if err != nil {
		return err
	}

	var (
		prev    *http.Response
		lastErr error
	)
	for attempt := range attempts {
		if attempt > 0 {
			wait := c.retry.delay(attempt, prev)
			if prev != nil {
				discard(prev)
			}
			if err := c.sleep(ctx, req, attempt, wait, lastErr); err != nil {
				return err
			}
			if err := rewind(); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr, prev = err, nil
			if !retryableErr(err) {
				return err
			}
			continue
		}
		if !retryableStatus[r.StatusCode] {
			*resp = r
			return nil
		}
		lastErr, prev = fmt.Errorf("%s answered %d", c.serviceName, r.StatusCode), r
	}

	if prev != nil {
		*resp = prev
	}
	return lastErr
}

// replayableBody returns a function that restores req.Body before a resend.
// GetBody is preferred; otherwise the body is buffered once.
func replayableBody(req *http.Request) (func() error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() error { return nil }, nil
	}
	if req.GetBody != nil {
		return func() error {
			body, err := req.GetBody()
			if err != nil {
				return fmt.Errorf("rewind request body: %w", err)
			}
			req.Body = body
			return nil
		}, nil
	}

	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("buffer request body: %w", err)
	}
	rewind := func() error {
		req.Body = io.NopCloser(bytes.NewReader(buf))
		req.ContentLength = int64(len(buf))
		return nil
	}
	return rewind, rewind()
}

// discard drains and closes resp so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, wait time.Duration, cause error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying object store request",
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("url", withoutQuery(req)),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
