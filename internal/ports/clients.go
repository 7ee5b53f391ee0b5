package ports

import (
	"context"
	"io"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// ObjectStore stores task files. Implemented by the S3 adapter.
type ObjectStore interface {
	// Put uploads body under key and returns the object's URL.
	Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that allows reading the object until ttl elapses.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns domain.ErrUnauthorized when the password does not match.
	Compare(hash string, password string) error
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(principal domain.Principal) (string, error)
	// Verify returns domain.ErrUnauthorized for missing, malformed, or expired tokens.
	Verify(token string) (*domain.Principal, error)
}
