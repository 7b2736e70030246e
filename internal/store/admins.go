package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/models"
)

type adminStore struct {
	db *database.DB
}

// NewAdminStore creates the MySQL-backed admin accessor.
func NewAdminStore(db *database.DB) AdminStore {
	return &adminStore{db: db}
}

func (s *adminStore) GetByLogin(ctx context.Context, login string) (*models.Admin, error) {
	var a models.Admin
	var email sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password FROM admins
		WHERE username = ? OR email = ?
	`, login, login).Scan(&a.ID, &a.Username, &email, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin %q: %w", login, err)
	}
	a.Email = email.String
	return &a, nil
}

func (s *adminStore) Create(ctx context.Context, username, email, passwordHash string) (*models.Admin, error) {
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO admins (username, email, password) VALUES (?, ?, ?)
	`, username, email, passwordHash)
	if isDuplicate(err) {
		return nil, fmt.Errorf("%w: admin %q", ErrDuplicate, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read admin id: %w", err)
	}
	return &models.Admin{ID: id, Username: username, Email: email, Password: passwordHash}, nil
}
