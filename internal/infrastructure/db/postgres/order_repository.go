package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

const orderColumns = "id, user_id, item_description, item_quantity, item_price, total_value, created_at, updated_at"

type OrderRepository struct {
	db Querier
}

func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

// EnsureSchema creates the orders table when it does not exist yet. No
// foreign key on user_id: the owning user lives in a different service and
// its existence is checked over HTTP at write time.
func (r *OrderRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id               BIGSERIAL PRIMARY KEY,
			user_id          BIGINT           NOT NULL,
			item_description TEXT             NOT NULL,
			item_quantity    BIGINT           NOT NULL,
			item_price       DOUBLE PRECISION NOT NULL,
			total_value      DOUBLE PRECISION NOT NULL,
			created_at       TIMESTAMPTZ      NOT NULL,
			updated_at       TIMESTAMPTZ      NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure orders schema: %w", err)
	}
	return nil
}

func (r *OrderRepository) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, item_description, item_quantity, item_price, total_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		o.UserID, o.ItemDescription, o.ItemQuantity, o.ItemPrice, o.TotalValue, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id,
	).Scan(&o.ID, &o.UserID, &o.ItemDescription, &o.ItemQuantity, &o.ItemPrice, &o.TotalValue, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.NewNotFoundError(fmt.Sprintf("invalid order ID %d", id))
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return scanOrders(rows)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return scanOrders(rows)
}

func (r *OrderRepository) Update(ctx context.Context, o domain.Order) (domain.Order, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET user_id = $1, item_description = $2, item_quantity = $3,
		    item_price = $4, total_value = $5, updated_at = $6
		WHERE id = $7`,
		o.UserID, o.ItemDescription, o.ItemQuantity, o.ItemPrice, o.TotalValue, o.UpdatedAt, o.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Order{}, domain.NewNotFoundError(fmt.Sprintf("invalid order ID %d", o.ID))
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("no orders found with ID %d", id))
	}
	return nil
}

// DeleteByUser removes every order owned by userID and reports the count.
// Zero rows is a legitimate outcome, not an error.
func (r *OrderRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE user_id = $1", userID)
	if err != nil {
		return 0, fmt.Errorf("delete orders by user: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ItemDescription, &o.ItemQuantity, &o.ItemPrice, &o.TotalValue, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
