package ports

import (
	"context"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// UserInput carries the registration/update payload. PhoneNumber is optional
// at the transport layer (nil when absent) but mandatory at validation time.
type UserInput struct {
	FullName    string
	CPF         string
	Email       string
	PhoneNumber *string
}

// User builds the domain entity the validator and codec operate on; an
// absent phone number becomes the empty string and fails validation like any
// other malformed value.
func (in UserInput) User() domain.User {
	u := domain.User{
		FullName: in.FullName,
		CPF:      in.CPF,
		Email:    in.Email,
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	return u
}

// UserService defines the user API's use cases. Every returned user carries
// plaintext sensitive fields; ciphertext never crosses this boundary.
type UserService interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	Register(ctx context.Context, in UserInput) (domain.User, error)
	Update(ctx context.Context, id int64, in UserInput) (domain.User, error)
	// Delete removes the user and cascades into the order API. The returned
	// message distinguishes "orders deleted too" from "no orders existed".
	Delete(ctx context.Context, id int64) (string, error)
}
