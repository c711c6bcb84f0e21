package repository

import (
	"context"
	"errors"

	"gotodo/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountStore persists registered accounts. Emails are stored normalized
// (trimmed, lowercased) and uniqueness is enforced by the store so that
// concurrent registrations with the same email resolve to ErrDuplicateEmail.
type AccountStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
}

// TodoStore persists todos, each bound to one owning account.
type TodoStore interface {
	Create(ctx context.Context, userID int, text string) (models.Todo, error)
	// ListByOwner returns the account's todos newest first.
	ListByOwner(ctx context.Context, userID int) ([]models.Todo, error)
	FindByID(ctx context.Context, id int) (models.Todo, error)
	UpdateText(ctx context.Context, id int, text string) (models.Todo, error)
	Delete(ctx context.Context, id int) error
}
