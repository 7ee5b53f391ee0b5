package http_test

import (
	"cmp"
	"net/http"
	"net/http/httptest"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

type testRouter struct {
	http.Handler
	auth     *mocks.MockAuthService
	tasks    *mocks.MockTaskService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, mws ...func(http.Handler) http.Handler) *testRouter {
	t.Helper()
	tr := &testRouter{
		auth:     mocks.NewMockAuthService(t),
		tasks:    mocks.NewMockTaskService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	limits := handlers.UploadLimits{MaxMemory: 1 << 20, MaxFiles: 10}
	tr.Handler = adapthttp.NewRouter(adapthttp.Handlers{
		Auth:       handlers.NewAuthHandler(tr.auth),
		Task:       handlers.NewTaskHandler(tr.tasks, limits),
		Assignment: handlers.NewAssignmentHandler(mocks.NewMockAssignmentService(t)),
		Comment:    handlers.NewCommentHandler(mocks.NewMockCommentService(t)),
		Attachment: handlers.NewAttachmentHandler(mocks.NewMockAttachmentService(t), limits),
		Handover:   handlers.NewHandoverHandler(mocks.NewMockHandoverService(t)),
		Survey:     handlers.NewSurveyHandler(mocks.NewMockSurveyService(t)),
		Event:      handlers.NewEventHandler(mocks.NewMockEventService(t)),
		Health:     handlers.NewHealthHandler(tr.registry),
	}, middleware.Authenticate(tr.auth), mws...)
	return tr
}

type route struct{ method, path string }

func walkRoutes(t *testing.T, h http.Handler) []route {
	t.Helper()
	mux, ok := h.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	var routes []route
	err := chi.Walk(mux, func(method, path string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, route{method, path})
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	slices.SortFunc(routes, func(a, b route) int {
		return cmp.Or(strings.Compare(a.path, b.path), strings.Compare(a.method, b.method))
	})
	return routes
}

func TestRouter_RouteTable(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	var b strings.Builder
	for _, r := range walkRoutes(t, tr.Handler) {
		b.WriteString(r.method + " " + r.path + "\n")
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "routes", []byte(b.String()))
}

var publicRoutes = map[string]bool{
	"GET /health/live":           true,
	"GET /health/ready":          true,
	"POST /api/v1/auth/login":    true,
	"POST /api/v1/auth/register": true,
	"GET /api/v1/auth/roles":     true,
	"GET /api/v1/survey/types":   true,
}

var pathParam = regexp.MustCompile(`\{[^}]+\}`)

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	for _, r := range walkRoutes(t, tr.Handler) {
		if publicRoutes[r.method+" "+r.path] {
			continue
		}
		target := pathParam.ReplaceAllString(r.path, "x1")

		rec := httptest.NewRecorder()
		tr.ServeHTTP(rec, httptest.NewRequest(r.method, target, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want %d", r.method, target, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_AdminRoutesRejectOtherRoles(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.auth.EXPECT().Authenticate(mock.Anything, "emp-token").
		Return(&domain.Principal{UserID: "u-emp", Role: domain.RoleEmployee}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/handover-requests", nil)
	req.Header.Set("Authorization", "Bearer emp-token")
	tr.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRouter_PublicRouteSkipsAuth(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/survey/types", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationGetTask(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.auth.EXPECT().Authenticate(mock.Anything, "mgr-token").
		Return(&domain.Principal{UserID: "u-mgr", Role: domain.RoleManager}, nil)
	tr.tasks.EXPECT().GetTask(mock.Anything, "t-1").
		Return(&domain.Task{ID: "t-1", RecSeq: 1, Title: "Stock count", RecStatus: domain.RecPending}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-1", nil)
	req.Header.Set("Authorization", "Bearer mgr-token")
	tr.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	tr := newTestRouter(t, testMW)
	tr.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	tr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/auth/login", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
