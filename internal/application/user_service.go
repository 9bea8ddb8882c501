package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/easyevent/api/internal/domain/entity"
	repo "github.com/easyevent/api/internal/domain/repository"
	"github.com/easyevent/api/pkg/helpers"
	"github.com/easyevent/api/pkg/validation"
)

// UserService implements account creation and user lookups.
type UserService struct {
	Users  repo.UserRepository
	Hasher *helpers.Hasher
	Logger *logrus.Logger

	validate *validator.Validate
}

func NewUserService(users repo.UserRepository, hasher *helpers.Hasher, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:    users,
		Hasher:   hasher,
		Logger:   logger,
		validate: validation.New(),
	}
}

// CreateUserParams holds the createUser input.
type CreateUserParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUser rejects duplicate emails, stores only a bcrypt hash of the
// password, and returns the user with the password field cleared.
func (s *UserService) CreateUser(ctx context.Context, params CreateUserParams) (*entity.User, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, firstDetail(err))
	}

	if _, err := s.Users.FindByEmail(ctx, params.Email); err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.Hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:    params.Email,
		Password: hash,
	}
	// The unique index is the backstop for the check above racing with a
	// concurrent create.
	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": user.ID}).Info("user created")
	}

	out := *user
	out.Password = ""
	return &out, nil
}

// GetUser returns one user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return s.Users.FindByID(ctx, id)
}
