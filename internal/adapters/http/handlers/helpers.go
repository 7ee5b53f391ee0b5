package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var errNoPrincipal = fmt.Errorf("no authenticated caller: %w", domain.ErrUnauthorized)

// pathParam returns a required, non-blank chi URL parameter.
func pathParam(r *http.Request, param string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, param))
	if v == "" {
		return "", domain.NewValidationError(param, "is required")
	}
	return v, nil
}

// parseRecSeq extracts the positive recSeq path parameter.
func parseRecSeq(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "recSeq")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError("recSeq", "must be a positive integer")
	}
	return n, nil
}

// rowKey extracts the id parameter and recSeq that address one row version.
func rowKey(r *http.Request, idParam string) (string, int, error) {
	id, err := pathParam(r, idParam)
	if err != nil {
		return "", 0, err
	}
	seq, err := parseRecSeq(r)
	if err != nil {
		return "", 0, err
	}
	return id, seq, nil
}

// queryInt parses an optional integer query parameter. Absent means zero,
// which the domain replaces with its default.
func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a valid integer")
	}
	return n, nil
}

// parseTaskQuery reads the filter, sort, and paging parameters of task lists.
func parseTaskQuery(r *http.Request) (domain.TaskQuery, error) {
	q := r.URL.Query()
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.TaskQuery{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.TaskQuery{}, err
	}
	return domain.TaskQuery{
		Status:    domain.RecStatus(strings.ToUpper(strings.TrimSpace(q.Get("status")))),
		Search:    q.Get("search"),
		SortBy:    domain.TaskSortField(q.Get("sortBy")),
		SortOrder: domain.SortOrder(q.Get("sortOrder")),
		Page:      page,
		Limit:     limit,
	}, nil
}

// principalFrom returns the caller stored by the Authenticate middleware.
func principalFrom(r *http.Request) (domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Principal{}, errNoPrincipal
	}
	return p, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// UploadLimits bounds multipart requests. MaxMemory is the part of the form
// held in memory; larger files spill to temporary files.
type UploadLimits struct {
	MaxMemory int64
	MaxFiles  int
}

// multipartForm tracks the files opened from a parsed multipart body so
// close can release them and any temporary files.
type multipartForm struct {
	r     *http.Request
	files []multipart.File
}

func parseMultipart(r *http.Request, limits UploadLimits) (*multipartForm, error) {
	if err := r.ParseMultipartForm(limits.MaxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, domain.NewValidationError("body", "must be multipart/form-data")
		}
		return nil, domain.NewValidationError("body", "invalid multipart form: "+err.Error())
	}
	return &multipartForm{r: r}, nil
}

// uploads opens every file sent under field. More than maxFiles files is a
// validation error.
func (f *multipartForm) uploads(field string, maxFiles int) ([]domain.Upload, error) {
	headers := f.r.MultipartForm.File[field]
	if maxFiles > 0 && len(headers) > maxFiles {
		return nil, domain.NewValidationError(field, fmt.Sprintf("at most %d files are allowed", maxFiles))
	}
	out := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		file, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		f.files = append(f.files, file)
		out = append(out, domain.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     file,
		})
	}
	return out, nil
}

func (f *multipartForm) close() {
	for _, file := range f.files {
		_ = file.Close()
	}
	if f.r.MultipartForm != nil {
		_ = f.r.MultipartForm.RemoveAll()
	}
}
