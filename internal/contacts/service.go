package contacts

import (
	"context"
	"errors"

	"github.com/aurora-studio/site-api/internal/apperr"
	"github.com/aurora-studio/site-api/internal/models"
	"github.com/aurora-studio/site-api/internal/validate"
)

// ErrNotFound is returned by ContactStore implementations when no row
// matches the given id, including updates and deletes that touched nothing.
var ErrNotFound = errors.New("contacts: not found")

type ContactStore interface {
	// CreateContact inserts c and fills its ID and CreatedAt.
	CreateContact(ctx context.Context, c *models.Contact) error
	// ListContacts returns every contact ordered by created_at ascending.
	ListContacts(ctx context.Context) ([]models.Contact, error)
	ContactByID(ctx context.Context, id int64) (*models.Contact, error)
	// UpdateContactName overwrites full_name and returns the updated row.
	UpdateContactName(ctx context.Context, id int64, fullName string) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type Service struct {
	store ContactStore
}

func NewService(store ContactStore) *Service {
	return &Service{store: store}
}

// Submit records a message from the public contact form. No authentication:
// anyone may write, only admins may read it back.
func (s *Service) Submit(ctx context.Context, fullName, email string, serviceInterest *string, message string) (*models.Contact, error) {
	if !validate.Required(fullName, email, message) {
		return nil, apperr.Validation("Full Name, Email, and Message are required.")
	}
	if !validate.Email(email) {
		return nil, apperr.Validation("Invalid email format.")
	}

	c := &models.Contact{
		FullName:        fullName,
		Email:           email,
		ServiceInterest: serviceInterest,
		Message:         message,
	}

	if err := s.store.CreateContact(ctx, c); err != nil {
		return nil, apperr.Internal("Internal server error.", err)
	}

	return c, nil
}

// ListAll returns the full inbox, oldest first. No pagination.
func (s *Service) ListAll(ctx context.Context) ([]models.Contact, error) {
	list, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, apperr.Internal("Internal server error.", err)
	}
	if list == nil {
		list = []models.Contact{}
	}
	return list, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	c, err := s.store.ContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Contact message not found.")
		}
		return nil, apperr.Internal("Internal server error.", err)
	}
	return c, nil
}

// Rename overwrites full_name in place. No other field is ever mutated
// after creation.
func (s *Service) Rename(ctx context.Context, id int64, fullName string) (*models.Contact, error) {
	if !validate.Required(fullName) {
		return nil, apperr.Validation("Full Name is required for update.")
	}

	c, err := s.store.UpdateContactName(ctx, id, fullName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Contact message not found.")
		}
		return nil, apperr.Internal("Internal server error.", err)
	}
	return c, nil
}

// Delete removes the row permanently. Deleting an absent id fails with
// not-found, never with an ambiguous success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteContact(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("Contact message not found.")
		}
		return apperr.Internal("Internal server error.", err)
	}
	return nil
}
