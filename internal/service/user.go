package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/userhub/user-service/internal/criteria"
	"github.com/userhub/user-service/internal/logger"
	"github.com/userhub/user-service/internal/model"
)

// User orchestrates user persistence and mutation notifications. Every
// operation is a short-lived transaction: validate, mutate storage,
// best-effort notify, return. Notification failures are logged and
// swallowed so a successful mutation is never reported as failed.
type User struct {
	store     model.UserStore
	publisher model.EventPublisher
	logger    *logger.Logger
}

func NewUser(
	store model.UserStore,
	publisher model.EventPublisher,
	logger *logger.Logger,
) *User {
	return &User{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// FindAll returns every stored user. An empty store is an error for
// this endpoint: callers treat it as not-found, not as an empty list.
func (s *User) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrNoData
	}

	return users, nil
}

// Create persists a new user and emits USER_CREATED. The user must not
// carry an id; the storage engine assigns one.
func (s *User) Create(ctx context.Context, user model.User) (model.User, error) {
	if user.ID > 0 {
		return model.User{}, fmt.Errorf("%w: got id %d", model.ErrIDSupplied, user.ID)
	}

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.publisher.PublishUser(ctx, model.EventUserCreated, saved); err != nil {
		s.logger.Error("failed to publish user created event", "error", err, "user_id", saved.ID)
	}

	return saved, nil
}

func (s *User) FindByID(ctx context.Context, id uint64) (model.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update persists changes to an existing user and emits USER_UPDATED.
func (s *User) Update(ctx context.Context, user model.User) (model.User, error) {
	exists, err := s.store.ExistsByID(ctx, user.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return model.User{}, fmt.Errorf("user %d: %w", user.ID, model.ErrNotFound)
	}

	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.publisher.PublishUser(ctx, model.EventUserUpdated, saved); err != nil {
		s.logger.Error("failed to publish user updated event", "error", err, "user_id", saved.ID)
	}

	return saved, nil
}

// RemoveByID deletes the user and emits USER_DELETED carrying only the
// id; the record itself is gone by then.
func (s *User) RemoveByID(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: %d", model.ErrInvalidID, id)
	}

	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("user %d: %w", id, model.ErrNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.publisher.PublishID(ctx, model.EventUserDeleted, id); err != nil {
		s.logger.Error("failed to publish user deleted event", "error", err, "user_id", id)
	}

	return nil
}

// Search filters users with the compact criteria grammar. Malformed
// clauses are dropped by the parser, so a bad expression widens the
// filter instead of failing; an empty result set is a valid outcome.
func (s *User) Search(ctx context.Context, rawCriteria string) ([]model.User, error) {
	filter := criteria.Build(criteria.Parse(rawCriteria))

	users, err := s.store.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}
