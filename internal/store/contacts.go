package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/aurora-studio/site-api/internal/contacts"
	"github.com/aurora-studio/site-api/internal/models"
)

type ContactStore struct {
	db *sqlx.DB
}

func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) CreateContact(ctx context.Context, c *models.Contact) error {
	query := `
		INSERT INTO contacts (full_name, email, service_interest, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return s.db.QueryRowxContext(ctx, query, c.FullName, c.Email, c.ServiceInterest, c.Message).
		Scan(&c.ID, &c.CreatedAt)
}

func (s *ContactStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var list []models.Contact

	err := s.db.SelectContext(ctx, &list, `
		SELECT id, full_name, email, service_interest, message, created_at
		FROM contacts
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ContactStore) ContactByID(ctx context.Context, id int64) (*models.Contact, error) {
	var c models.Contact

	err := s.db.GetContext(ctx, &c, `
		SELECT id, full_name, email, service_interest, message, created_at
		FROM contacts
		WHERE id=$1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, contacts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContactName relies on RETURNING so a concurrent delete shows up as
// no row, never as a silent no-op update.
func (s *ContactStore) UpdateContactName(ctx context.Context, id int64, fullName string) (*models.Contact, error) {
	var c models.Contact

	err := s.db.QueryRowxContext(ctx, `
		UPDATE contacts SET full_name=$1 WHERE id=$2
		RETURNING id, full_name, email, service_interest, message, created_at
	`, fullName, id).StructScan(&c)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, contacts.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContactStore) DeleteContact(ctx context.Context, id int64) error {
	var deleted int64

	err := s.db.QueryRowxContext(ctx, `
		DELETE FROM contacts WHERE id=$1 RETURNING id
	`, id).Scan(&deleted)

	if errors.Is(err, sql.ErrNoRows) {
		return contacts.ErrNotFound
	}
	return err
}
