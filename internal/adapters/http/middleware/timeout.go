package middleware

import (
	"context"
	"maps"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
)

// Timeout puts a deadline on each request. Multipart requests, which stream
// files to object storage, get uploadTimeout instead when it is positive.
//
// The handler writes into a buffer. If it finishes first the buffer is
// copied out; if the deadline fires first the client gets a 504 problem
// response and anything the handler writes afterwards is dropped.
func Timeout(timeout, uploadTimeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := timeout
			if uploadTimeout > 0 && isMultipart(r) {
				d = uploadTimeout
			}
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
					close(done)
				}()
				next.ServeHTTP(bw, r)
			}()

			select {
			case <-done:
				select {
				case v := <-panicked:
					panic(v)
				default:
				}
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.expired = true
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// bufferedWriter holds the handler's response until Timeout decides which
// side answers the client.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

// Header returns the buffered header map. Handlers set headers before
// writing, on their own goroutine, so the map itself needs no lock.
func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// copyTo must be called with bw.mu held.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
