package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are the lowercase header names whose values are never
// logged. The request logging middleware checks the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys and struct field names that hold
// credentials: login and registration passwords, the stored bcrypt hash,
// issued tokens, and the signing and storage secrets from config.
var sensitiveFields = []string{
	"password", "Password",
	"password_hash", "PasswordHash",
	"token", "Token", "access_token",
	"secret", "jwt_secret", "JWTSecret",
	"secret_access_key", "SecretAccessKey",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Segments of at least 10 characters keep version strings out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// Presigned attachment URLs grant read access until they expire.
	presignPattern = regexp.MustCompile(`X-Amz-(Signature|Credential|Security-Token)=[^&\s"]+`)
	bcryptPattern  = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)
)

// newRedactAttr returns the masq ReplaceAttr hook used by every handler New
// builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+5)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(presignPattern),
		masq.WithRegex(bcryptPattern),
	)
	return masq.New(opts...)
}
