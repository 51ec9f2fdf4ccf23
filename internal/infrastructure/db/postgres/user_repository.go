package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

const userColumns = "id, full_name, cpf, email, phone_number, created_at, updated_at"

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureSchema creates the users table when it does not exist yet, mirroring
// the bootstrap-on-start behaviour of the original deployment. No unique
// index on cpf/email: both columns store ciphertext.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id           BIGSERIAL PRIMARY KEY,
			full_name    TEXT        NOT NULL,
			cpf          TEXT        NOT NULL,
			email        TEXT        NOT NULL,
			phone_number TEXT        NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure users schema: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, cpf, email, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		u.FullName, u.CPF, u.Email, u.PhoneNumber, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.FullName, &u.CPF, &u.Email, &u.PhoneNumber, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NewNotFoundError(fmt.Sprintf("invalid user ID %d", id))
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.CPF, &u.Email, &u.PhoneNumber, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u domain.User) (domain.User, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET full_name = $1, cpf = $2, email = $3, phone_number = $4, updated_at = $5
		WHERE id = $6`,
		u.FullName, u.CPF, u.Email, u.PhoneNumber, u.UpdatedAt, u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.User{}, domain.NewNotFoundError(fmt.Sprintf("invalid user ID %d", u.ID))
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("invalid user ID %d", id))
	}
	return nil
}
