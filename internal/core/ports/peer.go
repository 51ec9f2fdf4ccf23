package ports

import "context"

// UserDirectory is the order API's view of the user API: a synchronous
// existence check for an order's owning user.
//
// Implementations translate the remote answer into domain errors: nil for
// 2xx, an invalid-reference error mirroring 404/422, and an upstream error
// carrying any other status (or 500 when the peer is unreachable).
type UserDirectory interface {
	EnsureUserExists(ctx context.Context, userID int64) error
}

// OrderPurger is the user API's view of the order API: the cascading
// delete-by-user call issued after a user row is removed.
//
// Implementations return nil when the peer deleted orders (200), a
// not-found error when the peer had none (404, still a success for the
// caller), and an upstream error for anything else.
type OrderPurger interface {
	DeleteOrdersForUser(ctx context.Context, userID int64) error
}
