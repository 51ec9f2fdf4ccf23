package ports

import (
	"context"
	"encoding/json"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// OrderInput carries the registration/update payload. Quantity and price
// stay as raw JSON numbers until validation so the literal's type (integer
// vs decimal) can be checked, not just its value. Any client-supplied total
// is ignored; the service recomputes it.
type OrderInput struct {
	UserID          int64
	ItemDescription string
	ItemQuantity    json.Number
	ItemPrice       json.Number
}

// OrderService defines the order API's use cases.
type OrderService interface {
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	Register(ctx context.Context, in OrderInput) (domain.Order, error)
	Update(ctx context.Context, id int64, in OrderInput) (domain.Order, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByUser removes all orders owned by userID. An empty result is
	// reported as not-found so the HTTP layer can answer 404; the calling
	// user API treats that 404 as a success ("no orders existed").
	DeleteByUser(ctx context.Context, userID int64) error
}
