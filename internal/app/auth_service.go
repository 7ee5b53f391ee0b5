package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

var _ ports.AuthService = (*AuthService)(nil)

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	orgID  string
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewAuthService creates an AuthService. orgID is assigned to new users.
func NewAuthService(
	users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, orgID string, logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		orgID:  orgID,
		logger: orDiscard(logger),
		now:    systemNow,
		newID:  newUUID,
	}
}

// Register creates an active user with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("role", reg.Role.String()))

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.UserByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user already exists: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	user := &domain.User{
		ID:           s.newID(),
		OrgID:        s.orgID,
		RecSeq:       1,
		RecStatus:    domain.RecActive,
		DataStatus:   domain.DataActive,
		Email:        reg.Email,
		UserName:     reg.UserName,
		Role:         reg.Role,
		PasswordHash: hash,
		CreatedOn:    s.now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a token. Unknown users and wrong
// passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UserByEmail(ctx, creds.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		s.logger.InfoContext(ctx, "login rejected", slog.String("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	principal := domain.Principal{
		UserID:   user.ID,
		Role:     user.Role,
		UserName: user.UserName,
		OrgID:    user.OrgID,
	}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &domain.Session{Token: token, Principal: principal}, nil
}

// Authenticate resolves a bearer token.
func (s *AuthService) Authenticate(_ context.Context, token string) (*domain.Principal, error) {
	return s.tokens.Verify(token)
}

// UsersByRole lists active users holding role.
func (s *AuthService) UsersByRole(ctx context.Context, role domain.Role) ([]domain.UserSummary, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("invalid: %q", role))
	}
	return s.users.UsersByRole(ctx, role)
}
