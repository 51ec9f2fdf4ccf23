package ports

import (
	"context"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Records arrive
// and leave with the sensitive fields already encrypted: the repository
// never sees plaintext.
type UserRepository interface {
	// Create persists a new user and returns it with the store-assigned id.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// GetByID returns the user or a not-found domain error.
	GetByID(ctx context.Context, id int64) (domain.User, error)
	// ListAll returns every user, possibly an empty slice.
	ListAll(ctx context.Context) ([]domain.User, error)
	// Update overwrites the mutable fields of an existing user.
	Update(ctx context.Context, u domain.User) (domain.User, error)
	// Delete removes the user or returns a not-found domain error.
	Delete(ctx context.Context, id int64) error
}
