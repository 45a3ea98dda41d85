package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-vault/backend/app/models"
	"recipe-vault/backend/app/repo"

	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	users *repo.UserRepository
}

func NewUserService(db *gorm.DB, users *repo.UserRepository) *UserService {
	return &UserService{db: db, users: users}
}

type RegisterInput struct {
	Username string
	Password string
	ImageURL *string
	Bio      *string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	u := &models.User{Username: in.Username, ImageURL: in.ImageURL, Bio: in.Bio}
	var msgs []string
	if strings.TrimSpace(in.Username) == "" {
		msgs = append(msgs, models.MsgUsernameRequired)
	}
	if in.Password == "" {
		msgs = append(msgs, models.MsgPasswordRequired)
	} else if pw, err := models.NewPassword(in.Password); errors.Is(err, models.ErrPasswordTooLong) {
		msgs = append(msgs, models.MsgPasswordTooLong)
	} else if err != nil {
		return nil, err
	} else {
		u.Password = pw
	}
	if len(msgs) > 0 {
		return nil, models.NewValidationError(msgs...)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		count, err := users.CountByUsername(u.Username)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if count > 0 {
			return models.NewValidationError(models.MsgUsernameTaken)
		}
		if err := users.Create(u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewValidationError(models.MsgUsernameTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.Recipes = []models.Recipe{}
	return u, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	users := s.users.WithTx(s.db.WithContext(ctx))
	u, err := users.FindByUsername(username)
	if err == nil {
		u, err = users.FindWithRecipes(u.ID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !u.Password.Matches(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get loads a user with its recipes.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.users.WithTx(s.db.WithContext(ctx)).FindWithRecipes(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Delete removes the user and all of its recipes in one transaction.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		u, err := users.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		return users.Delete(u)
	})
}

// EnsureUser creates the account if no user with that name exists yet.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) error {
	count, err := s.users.WithTx(s.db.WithContext(ctx)).CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Register(ctx, RegisterInput{Username: username, Password: password})
	return err
}
