package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

var testLimits = handlers.UploadLimits{MaxMemory: 1 << 20, MaxFiles: 3}

var (
	employee = domain.Principal{UserID: "u-emp", Role: domain.RoleEmployee, UserName: "ada", OrgID: "org-1"}
	manager  = domain.Principal{UserID: "u-mgr", Role: domain.RoleManager, UserName: "grace", OrgID: "org-1"}
	admin    = domain.Principal{UserID: "u-adm", Role: domain.RoleAdmin, UserName: "root", OrgID: "org-1"}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asPrincipal(r *http.Request, p domain.Principal) *http.Request {
	return r.WithContext(middleware.WithPrincipal(r.Context(), p))
}

func validTask() domain.Task {
	return domain.Task{
		ID:             "t-1",
		RecSeq:         1,
		OrgID:          "org-1",
		RecStatus:      domain.RecPending,
		DataStatus:     domain.DataActive,
		Title:          "Stock count",
		Description:    "Count the back room",
		PlannedEndDate: "2026-02-13",
		ReviewBy:       manager.UserID,
		CreatedBy:      manager.UserID,
		CreatedOn:      testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

type formFile struct {
	field, name, content string
}

// multipartBody builds a multipart/form-data body and returns it with its
// Content-Type header value.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%q): %v", k, err)
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("CreateFormFile(%q): %v", f.name, err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("write %q: %v", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
