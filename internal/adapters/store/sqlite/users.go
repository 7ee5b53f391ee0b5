package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

const userColumns = `user_id, org_id, rec_seq, rec_status, data_status, email, user_name, role, password_hash, created_on`

// CreateUser implements ports.UserRepository.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.OrgID, user.RecSeq, user.RecStatus, user.DataStatus,
		user.Email, user.UserName, user.Role, user.PasswordHash, user.CreatedOn.UTC(),
	)
	return wrapErr("insert user", err)
}

// UserByEmail implements ports.UserRepository.
func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE email = ? AND data_status = 'A'`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("select user by email", err)
	}
	return u, nil
}

// UserByID implements ports.UserRepository.
func (s *Store) UserByID(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE user_id = ? AND data_status = 'A'`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("select user by id", err)
	}
	return u, nil
}

// UsersByRole implements ports.UserRepository.
func (s *Store) UsersByRole(ctx context.Context, role domain.Role) ([]domain.UserSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, user_name FROM users
		WHERE role = ? AND data_status = 'A'
		ORDER BY user_name, user_id`, role)
	if err != nil {
		return nil, fmt.Errorf("select users by role: %w", err)
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.UserID, &u.UserName); err != nil {
			return nil, fmt.Errorf("scan user summary: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.OrgID, &u.RecSeq, &u.RecStatus, &u.DataStatus,
		&u.Email, &u.UserName, &u.Role, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
