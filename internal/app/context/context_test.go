package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// journal records execute and rollback calls across concurrent actions.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, s)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type fakeAction struct {
	desc        string
	log         *journal
	executeErr  error
	rollbackErr error
	executeFn   func(ctx context.Context) error
	rollbackFn  func(ctx context.Context)
}

func (a *fakeAction) Execute(ctx context.Context) error {
	if a.executeFn != nil {
		if err := a.executeFn(ctx); err != nil {
			return err
		}
	}
	if a.executeErr != nil {
		return a.executeErr
	}
	if a.log != nil {
		a.log.add("execute:" + a.desc)
	}
	return nil
}

func (a *fakeAction) Rollback(ctx context.Context) error {
	if a.rollbackFn != nil {
		a.rollbackFn(ctx)
	}
	if a.log != nil {
		a.log.add("rollback:" + a.desc)
	}
	return a.rollbackErr
}

func (a *fakeAction) Description() string { return a.desc }

func TestGetOrFetch_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetch := func(_ context.Context) (string, error) {
		calls++
		return "Ada", nil
	}

	for range 3 {
		got, err := GetOrFetch(rc, "user:u1", fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Ada" {
			t.Fatalf("got = %q, want Ada", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	errNotFound := errors.New("not found")
	calls := 0
	fetch := func(_ context.Context) (*int, error) {
		calls++
		return nil, errNotFound
	}

	_, _ = GetOrFetch(rc, "user:missing", fetch)
	got, err := GetOrFetch(rc, "user:missing", fetch)

	if !errors.Is(err, errNotFound) {
		t.Fatalf("err = %v, want %v", err, errNotFound)
	}
	if got != nil {
		t.Errorf("got = %v, want nil", got)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "k", func(_ context.Context) (int, error) { return 7, nil })
	_, err := GetOrFetch(rc, "k", func(_ context.Context) (string, error) { return "x", nil })

	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_ConcurrentCallersShareFetch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(_ context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = GetOrFetch(rc, "shared", fetch)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("fetch called %d times, want 1", n)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("results[%d] = %d, want 42", i, v)
		}
	}
}

func TestForget_ReloadsValue(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	n := 0
	fetch := func(_ context.Context) (int, error) {
		n++
		return n, nil
	}

	first, _ := GetOrFetch(rc, "k", fetch)
	rc.Forget("k")
	second, _ := GetOrFetch(rc, "k", fetch)

	if first != 1 || second != 2 {
		t.Errorf("got %d then %d, want 1 then 2", first, second)
	}
}

func TestStage_ReadYourWrites(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.Stage("task:t1", "staged", &fakeAction{desc: "insert"}); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	got, err := GetOrFetch(rc, "task:t1", func(_ context.Context) (string, error) {
		t.Error("fetch should not run for a staged key")
		return "", nil
	})
	if err != nil || got != "staged" {
		t.Errorf("got = (%q, %v), want (staged, nil)", got, err)
	}
}

func TestStage_NilAction(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	if err := rc.Stage("k", 1, nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("err = %v, want ErrNilAction", err)
	}
}

func TestRequestContext_FromContext(t *testing.T) {
	t.Parallel()

	if rc := FromContext(context.Background()); rc != nil {
		t.Fatalf("FromContext on bare context = %v, want nil", rc)
	}

	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)
	if got := FromContext(ctx); got != rc {
		t.Errorf("FromContext = %p, want %p", got, rc)
	}
	if got := Ensure(ctx); got != rc {
		t.Errorf("Ensure = %p, want stored context %p", got, rc)
	}
	if got := Ensure(context.Background()); got == nil || got == rc {
		t.Errorf("Ensure without stored context = %p, want a new context", got)
	}
}

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	_ = rc.AddAction(&fakeAction{desc: "a", log: log})
	_ = rc.AddAction(&fakeAction{desc: "b", log: log})
	_ = rc.AddAction(&fakeAction{desc: "c", log: log})

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	want := []string{"execute:a", "execute:b", "execute:c"}
	if diff := cmp.Diff(want, log.list()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
}

func TestCommit_FailureRollsBackInReverse(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}
	errBoom := errors.New("boom")

	_ = rc.AddAction(&fakeAction{desc: "a", log: log})
	_ = rc.AddAction(&fakeAction{desc: "b", log: log, rollbackErr: errors.New("ignored")})
	_ = rc.AddAction(&fakeAction{desc: "c", log: log, executeErr: errBoom})
	_ = rc.AddAction(&fakeAction{desc: "d", log: log})

	err := rc.Commit(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want %v", err, errBoom)
	}
	want := []string{"execute:a", "execute:b", "rollback:b", "rollback:a"}
	if diff := cmp.Diff(want, log.list()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
}

type traceKey struct{}

// rollbackCapture records the context error and trace value a rollback saw.
type rollbackCapture struct {
	mu    sync.Mutex
	ran   bool
	err   error
	trace any
}

func (c *rollbackCapture) record(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ran = true
	c.err = ctx.Err()
	c.trace = ctx.Value(traceKey{})
}

func (c *rollbackCapture) check(t *testing.T) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ran {
		t.Fatal("rollback did not run")
	}
	if c.err != nil {
		t.Errorf("rollback ctx.Err() = %v, want nil", c.err)
	}
	if c.trace != "req-1" {
		t.Errorf("rollback ctx value = %v, want req-1", c.trace)
	}
}

func TestCommit_RollbackSurvivesCanceledRequest(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), traceKey{}, "req-1"))
	defer cancel()
	rc := New(ctx)
	seen := &rollbackCapture{}

	_ = rc.AddAction(&fakeAction{desc: "upload", rollbackFn: seen.record})
	_ = rc.AddAction(&fakeAction{desc: "insert", executeFn: func(ctx context.Context) error {
		cancel()
		return ctx.Err()
	}})

	if err := rc.Commit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	seen.check(t)
}

func TestActionGroup_RollbackSurvivesCanceledRequest(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), traceKey{}, "req-1"))
	defer cancel()
	rc := New(ctx)
	seen := &rollbackCapture{}
	errUpload := errors.New("upload failed")

	_ = rc.AddGroup(
		&fakeAction{desc: "ok", rollbackFn: seen.record},
		&fakeAction{desc: "bad", executeFn: func(_ context.Context) error {
			time.Sleep(10 * time.Millisecond)
			cancel()
			return errUpload
		}},
	)

	if err := rc.Commit(ctx); !errors.Is(err, errUpload) {
		t.Fatalf("err = %v, want %v", err, errUpload)
	}
	seen.check(t)
}

func TestCommit_Twice(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("first Commit: %v", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("second Commit = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.AddAction(&fakeAction{desc: "late"}); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction after Commit = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddGroup_RejectsNil(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	if err := rc.AddGroup(&fakeAction{desc: "a"}, nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("err = %v, want ErrNilAction", err)
	}
}

func TestActionGroup_RunsConcurrently(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var active, peak atomic.Int32

	slow := func(_ context.Context) error {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return nil
	}

	_ = rc.AddGroup(
		&fakeAction{desc: "u1", executeFn: slow},
		&fakeAction{desc: "u2", executeFn: slow},
		&fakeAction{desc: "u3", executeFn: slow},
	)
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if p := peak.Load(); p < 2 {
		t.Errorf("peak concurrency = %d, want at least 2", p)
	}
}

func TestActionGroup_RespectsLimit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	var active, peak atomic.Int32

	slow := func(_ context.Context) error {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return nil
	}

	actions := make([]*fakeAction, 6)
	for i := range actions {
		actions[i] = &fakeAction{desc: "upload", executeFn: slow}
	}
	_ = rc.AddLimitedGroup(2, actions[0], actions[1], actions[2], actions[3], actions[4], actions[5])

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("peak concurrency = %d, want at most 2", p)
	}
}

func TestActionGroup_FailureRollsBackSiblings(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}
	errUpload := errors.New("upload failed")

	_ = rc.AddAction(&fakeAction{desc: "before", log: log})
	_ = rc.AddGroup(
		&fakeAction{desc: "ok", log: log},
		&fakeAction{desc: "bad", log: log, executeFn: func(_ context.Context) error {
			time.Sleep(10 * time.Millisecond)
			return errUpload
		}},
	)
	_ = rc.AddAction(&fakeAction{desc: "after", log: log})

	err := rc.Commit(context.Background())
	if !errors.Is(err, errUpload) {
		t.Fatalf("err = %v, want %v", err, errUpload)
	}
	want := []string{"execute:before", "execute:ok", "rollback:ok", "rollback:before"}
	if diff := cmp.Diff(want, log.list()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
}

func TestActionGroup_CancelsInFlight(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	errFast := errors.New("fast failure")
	started := make(chan struct{})
	canceled := make(chan struct{})

	_ = rc.AddGroup(
		&fakeAction{desc: "fast", executeFn: func(_ context.Context) error {
			<-started
			return errFast
		}},
		&fakeAction{desc: "slow", executeFn: func(ctx context.Context) error {
			close(started)
			select {
			case <-ctx.Done():
				close(canceled)
				return ctx.Err()
			case <-time.After(time.Second):
				return nil
			}
		}},
	)

	if err := rc.Commit(context.Background()); !errors.Is(err, errFast) {
		t.Fatalf("err = %v, want %v", err, errFast)
	}
	select {
	case <-canceled:
	default:
		t.Error("slow action did not observe cancellation")
	}
}

func TestStep_Description(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group *step
		want  string
	}{
		{"single", &step{actions: []domain.Action{&fakeAction{desc: "upload a.pdf"}}}, "upload a.pdf"},
		{"many", &step{actions: []domain.Action{
			&fakeAction{desc: "upload a.pdf"},
			&fakeAction{desc: "upload b.pdf"},
		}}, "group of 2 (upload a.pdf, ...)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.group.description(); got != tt.want {
				t.Errorf("description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscard_DropsWithoutRunning(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	log := &journal{}

	_ = rc.AddAction(&fakeAction{desc: "upload a.pdf", log: log})
	_ = rc.AddGroup(&fakeAction{desc: "insert row", log: log}, &fakeAction{desc: "insert row", log: log})

	dropped := rc.Discard()
	if len(dropped) != 2 || dropped[0] != "upload a.pdf" {
		t.Errorf("dropped = %v, want the action and the group", dropped)
	}
	if got := log.list(); len(got) != 0 {
		t.Errorf("discarded actions ran: %v", got)
	}
	if err := rc.AddAction(&fakeAction{desc: "late"}); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction after Discard = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Commit after Discard = %v, want ErrAlreadyCommitted", err)
	}
}

func TestDiscard_AfterCommit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	_ = rc.AddAction(&fakeAction{desc: "a"})

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if dropped := rc.Discard(); len(dropped) != 0 {
		t.Errorf("dropped = %v, want none", dropped)
	}
}

func TestStep_SingleRollbackError(t *testing.T) {
	t.Parallel()
	errUndo := errors.New("delete object: access denied")
	s := &step{actions: []domain.Action{&fakeAction{desc: "upload a.pdf", rollbackErr: errUndo}}}

	if err := s.rollback(context.Background()); err != nil {
		t.Fatalf("rollback before execute = %v, want nil", err)
	}
	if err := s.execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if err := s.rollback(context.Background()); !errors.Is(err, errUndo) {
		t.Errorf("rollback = %v, want %v", err, errUndo)
	}
}
