package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/taskflow-service/internal/app/fanout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errNoSuchKey = errors.New("no such key")

// presign fakes URL signing; keys starting with "missing" fail.
func presign(_ context.Context, key string) (string, error) {
	if strings.HasPrefix(key, "missing") {
		return "", errNoSuchKey
	}
	return "https://bucket/" + key + "?X-Amz-Signature=abc", nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		workers  int
		keys     []string
		wantURLs []string
		wantErrs []bool
	}{
		{
			name:     "no attachments",
			workers:  4,
			keys:     []string{},
			wantURLs: []string{},
			wantErrs: []bool{},
		},
		{
			name:     "all signed",
			workers:  2,
			keys:     []string{"a.pdf", "b.png"},
			wantURLs: []string{"https://bucket/a.pdf?X-Amz-Signature=abc", "https://bucket/b.png?X-Amz-Signature=abc"},
			wantErrs: []bool{false, false},
		},
		{
			name:     "one missing keeps its slot",
			workers:  2,
			keys:     []string{"a.pdf", "missing.pdf", "c.png"},
			wantURLs: []string{"https://bucket/a.pdf?X-Amz-Signature=abc", "", "https://bucket/c.png?X-Amz-Signature=abc"},
			wantErrs: []bool{false, true, false},
		},
		{
			name:     "zero workers still runs",
			workers:  0,
			keys:     []string{"missing-1", "d.jpg"},
			wantURLs: []string{"", "https://bucket/d.jpg?X-Amz-Signature=abc"},
			wantErrs: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.workers, tt.keys, presign)

			require.NotNil(t, results)
			require.Len(t, results, len(tt.keys))
			for i, r := range results {
				assert.Equal(t, tt.wantURLs[i], r.Value, "slot %d", i)
				if tt.wantErrs[i] {
					assert.ErrorIs(t, r.Err, errNoSuchKey, "slot %d", i)
				} else {
					assert.NoError(t, r.Err, "slot %d", i)
				}
			}
		})
	}
}

func TestRun_OrderIndependentOfFinish(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond}
	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	got, err := fanout.Collect(results)
	require.NoError(t, err)
	assert.Equal(t, delays, got)
}

func raise(peak *atomic.Int32, v int32) {
	for {
		p := peak.Load()
		if v <= p || peak.CompareAndSwap(p, v) {
			return
		}
	}
}

func TestRun_WorkerBound(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 3} {
		var active, peak atomic.Int32
		fanout.Run(context.Background(), workers, make([]int, 12), func(context.Context, int) (int, error) {
			cur := active.Add(1)
			defer active.Add(-1)
			raise(&peak, cur)
			time.Sleep(3 * time.Millisecond)
			return 0, nil
		})
		assert.LessOrEqual(t, peak.Load(), int32(max(workers, 1)), "workers=%d", workers)
	}
}

func TestRun_CancellationSkipsPending(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		cancel()
		return n, nil
	})

	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, results[0].Err)
	for _, r := range results[1:] {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("values in order", func(t *testing.T) {
		t.Parallel()
		got, err := fanout.Collect([]fanout.Result[string]{{Value: "a"}, {Value: "b"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("every failure reported with its index", func(t *testing.T) {
		t.Parallel()
		errDenied := errors.New("access denied")
		got, err := fanout.Collect([]fanout.Result[string]{{Err: errNoSuchKey}, {Value: "b"}, {Err: errDenied}})
		assert.Nil(t, got)
		require.ErrorIs(t, err, errNoSuchKey)
		require.ErrorIs(t, err, errDenied)
		assert.ErrorContains(t, err, "item 0: no such key")
		assert.ErrorContains(t, err, "item 2: access denied")
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		got, err := fanout.Collect[int](nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
