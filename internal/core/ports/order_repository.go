package ports

import (
	"context"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order and returns it with the store-assigned id.
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	// GetByID returns the order or a not-found domain error.
	GetByID(ctx context.Context, id int64) (domain.Order, error)
	// ListAll returns every order, possibly an empty slice.
	ListAll(ctx context.Context) ([]domain.Order, error)
	// ListByUser returns the orders owned by userID, possibly empty.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	// Update overwrites the mutable fields of an existing order.
	Update(ctx context.Context, o domain.Order) (domain.Order, error)
	// Delete removes the order or returns a not-found domain error.
	Delete(ctx context.Context, id int64) error
	// DeleteByUser removes every order owned by userID and reports how many
	// rows went away. Zero is a valid answer, not an error.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}
