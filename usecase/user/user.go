package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

// CreateInput carries the user fields. Role defaults to USER when empty.
type CreateInput struct {
	Name  string
	Email string
	Role  domain.Role
}

func (uc *UseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

func (uc *UseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

func (uc *UseCase) CreateUser(ctx context.Context, input CreateInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name and email are required")
	}
	if input.Role == "" {
		input.Role = domain.RoleUser
	}
	if !input.Role.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown role")
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}
	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("user created", zap.String("user_id", created.ID))
	return created, nil
}

func (uc *UseCase) DeleteUser(ctx context.Context, id string) error {
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}
