package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name, with
// multiple values joined by commas. Values of logging.SensitiveHeaders are
// replaced with "[REDACTED]".
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(func(yield func(string) bool) {
		for k := range headers {
			if !yield(k) {
				return
			}
		}
	})
	attrs := make([]slog.Attr, len(names))
	for i, name := range names {
		value := redactedValue
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs[i] = slog.String(name, value)
	}
	return attrs
}
