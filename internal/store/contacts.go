package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/models"
)

type contactStore struct {
	db *database.DB
}

// NewContactStore creates the MySQL-backed contact accessor.
func NewContactStore(db *database.DB) ContactStore {
	return &contactStore{db: db}
}

const contactColumns = `id, first_name, last_name, email, subject, message,
	captcha_answer, created_at`

func (s *contactStore) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email,
			&c.Subject, &c.Message, &c.CaptchaAnswer, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactStore) Create(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (first_name, last_name, email, subject, message, captcha_answer)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.FirstName, in.LastName, in.Email, in.Subject, in.Message, in.CaptchaAnswer)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read contact id: %w", err)
	}

	var c models.Contact
	err = s.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Subject,
			&c.Message, &c.CaptchaAnswer, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact %d: %w", id, err)
	}
	return &c, nil
}

func (s *contactStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
