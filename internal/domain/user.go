package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
)

// User is a row of the credentials table together with the shift and
// location data used by the event fences.
type User struct {
	ID           string
	OrgID        string
	RecSeq       int
	RecStatus    RecStatus
	DataStatus   DataStatus
	Email        string
	UserName     string
	Role         Role
	PasswordHash string
	CreatedOn    time.Time
}

// UserSummary is the id/name pair returned by role listings.
type UserSummary struct {
	UserID   string
	UserName string
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID   string
	Role     Role
	UserName string
	OrgID    string
}

// Registration is the input to user sign-up.
type Registration struct {
	Email    string
	UserName string
	Password string
	Role     Role
}

// Validate checks the registration fields.
func (r *Registration) Validate() error {
	fields := fieldErrors{}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		fields["email"] = msgRequired
	} else if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(r.UserName) == "" {
		fields["username"] = msgRequired
	}
	switch {
	case len(r.Password) < minPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters", minPasswordLength)
	case len(r.Password) > maxPasswordBytes:
		fields["password"] = fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)
	}
	if !r.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}

	return fields.err()
}

// Credentials is the input to login.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	fields := fieldErrors{}
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = msgRequired
	}
	if c.Password == "" {
		fields["password"] = msgRequired
	}
	return fields.err()
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	Principal Principal
}
