package objectstore

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// translateError maps an SDK error to a domain error. Missing buckets and
// keys become ErrNotFound; everything else, including an open circuit
// breaker, is reported as ErrUnavailable with the cause kept in the chain.
func translateError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%s: %s: %w", op, apiErr.ErrorCode(), domain.ErrNotFound)
		}
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}
