package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/core/ports"
	"github.com/lojaviva/commerce-system/internal/core/validation"
)

// OrderService orchestrates order writes: field validation, the synchronous
// user-existence check against the peer user API, and total recomputation.
type OrderService struct {
	repo   ports.OrderRepository
	users  ports.UserDirectory
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, users ports.UserDirectory, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, users: users, logger: logger}
}

// ListAll returns every order; an empty store is reported as not-found,
// matching the API's 404 contract.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.NewNotFoundError("no orders found")
	}
	return orders, nil
}

// ListByUser returns the orders owned by userID, 404 when there are none.
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("no orders found with user ID %d", userID))
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Register validates the order, confirms its user exists in the peer user
// API, and persists it with the total recomputed from quantity × price. A
// caller-supplied total never survives.
func (s *OrderService) Register(ctx context.Context, in ports.OrderInput) (domain.Order, error) {
	order, err := s.buildOrder(ctx, in)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.Info().Int64("order_id", created.ID).Int64("user_id", created.UserID).
		Msg("order registered")
	return created, nil
}

// Update re-runs the registration checks and overwrites an existing order,
// recomputing the total and refreshing updated-at.
func (s *OrderService) Update(ctx context.Context, id int64, in ports.OrderInput) (domain.Order, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.buildOrder(ctx, in)
	if err != nil {
		return domain.Order{}, err
	}

	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt
	order.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.Info().Int64("order_id", updated.ID).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}

// DeleteByUser drops every order owned by userID. Zero deleted rows is not
// a store failure, but the API contract answers it with 404; the user
// API's cascade reads that as "nothing to delete, still fine".
func (s *OrderService) DeleteByUser(ctx context.Context, userID int64) error {
	deleted, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("no orders found with user ID %d", userID))
	}

	s.logger.Info().Int64("user_id", userID).Int64("deleted", deleted).
		Msg("orders deleted by user")
	return nil
}

// buildOrder runs field validation and the remote user-existence check, the
// two gates every order write passes through.
func (s *OrderService) buildOrder(ctx context.Context, in ports.OrderInput) (domain.Order, error) {
	quantity, price, err := validation.Order(in.UserID, in.ItemDescription, in.ItemQuantity, in.ItemPrice)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.users.EnsureUserExists(ctx, in.UserID); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		UserID:          in.UserID,
		ItemDescription: in.ItemDescription,
		ItemQuantity:    quantity,
		ItemPrice:       price,
	}
	order.ComputeTotal()
	return order, nil
}
