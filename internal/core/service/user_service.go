package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lojaviva/commerce-system/internal/core/codec"
	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/core/ports"
	"github.com/lojaviva/commerce-system/internal/core/validation"
)

// Cascade outcome messages returned to the caller of DELETE /api/users/delete/:id.
const (
	MsgUserAndOrdersDeleted = "user and its orders deleted successfully"
	MsgUserDeletedNoOrders  = "user deleted but no orders were found"
)

// UserService orchestrates the user API's cross-entity rules: the
// decrypt-and-scan duplicate check on registration, encryption at rest, and
// the cascading order delete against the peer service.
type UserService struct {
	repo   ports.UserRepository
	orders ports.OrderPurger
	codec  *codec.Codec
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, orders ports.OrderPurger, c *codec.Codec, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, orders: orders, codec: c, logger: logger}
}

// ListAll returns every user with sensitive fields decrypted. An empty store
// is reported as not-found, matching the API's 404 contract.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NewNotFoundError("no users found")
	}
	return s.codec.DecryptUsers(users)
}

// Get returns a single user with sensitive fields decrypted.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return s.codec.DecryptUser(user)
}

// Register validates the incoming user, rejects CPF/e-mail collisions
// against the decrypted existing records, then encrypts and persists.
// Nothing is written if encryption fails. The persisted record is returned
// in its plaintext view.
//
// The duplicate check is read-then-write without any lock: two concurrent
// registrations with the same CPF can both pass the scan. Accepted gap.
func (s *UserService) Register(ctx context.Context, in ports.UserInput) (domain.User, error) {
	user := in.User()
	if err := validation.User(user); err != nil {
		return domain.User{}, err
	}

	if err := s.checkDuplicate(ctx, user); err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	encrypted, err := s.codec.EncryptUser(user)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, encrypted)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")

	return s.codec.DecryptUser(created)
}

// Update re-validates, re-encrypts and overwrites an existing user,
// refreshing its updated-at timestamp.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UserInput) (domain.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user := in.User()
	if err := validation.User(user); err != nil {
		return domain.User{}, err
	}

	encrypted, err := s.codec.EncryptUser(user)
	if err != nil {
		return domain.User{}, err
	}

	encrypted.ID = existing.ID
	encrypted.CreatedAt = existing.CreatedAt
	encrypted.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, encrypted)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")

	return s.codec.DecryptUser(updated)
}

// Delete removes the user locally, then asks the order API to drop the
// user's orders. A 404 from the peer still counts as success ("no orders
// were found"). Any other peer failure surfaces as an upstream error even
// though the local delete has already committed; the local delete is not
// rolled back.
func (s *UserService) Delete(ctx context.Context, id int64) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")

	err := s.orders.DeleteOrdersForUser(ctx, id)
	switch {
	case err == nil:
		s.logger.Info().Int64("user_id", id).Msg("user's orders deleted")
		return MsgUserAndOrdersDeleted, nil
	case domain.KindOf(err) == domain.KindNotFound:
		return MsgUserDeletedNoOrders, nil
	default:
		s.logger.Error().Err(err).Int64("user_id", id).
			Msg("user deleted locally but order cascade failed")
		return "", domain.NewUpstreamError(0, "error sending request to order API", err)
	}
}

// checkDuplicate scans all existing users, decrypted, for a CPF or e-mail
// equal to the incoming plaintext.
func (s *UserService) checkDuplicate(ctx context.Context, incoming domain.User) error {
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	decrypted, err := s.codec.DecryptUsers(existing)
	if err != nil {
		return fmt.Errorf("duplicate check: %w", err)
	}

	for _, u := range decrypted {
		if u.CPF == incoming.CPF || u.Email == incoming.Email {
			return domain.NewDuplicateError("CPF or e-mail already exists in the database")
		}
	}
	return nil
}
