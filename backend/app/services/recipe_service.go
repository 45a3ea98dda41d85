package services

import (
	"context"
	"errors"
	"fmt"

	"recipe-vault/backend/app/models"
	"recipe-vault/backend/app/repo"

	"gorm.io/gorm"
)

type RecipeService struct {
	db      *gorm.DB
	users   *repo.UserRepository
	recipes *repo.RecipeRepository
}

func NewRecipeService(db *gorm.DB, users *repo.UserRepository, recipes *repo.RecipeRepository) *RecipeService {
	return &RecipeService{db: db, users: users, recipes: recipes}
}

type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	out, err := s.recipes.WithTx(s.db.WithContext(ctx)).ListAll()
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return out, nil
}

func (s *RecipeService) Create(ctx context.Context, userID uint, in CreateRecipeInput) (*models.Recipe, error) {
	rec := &models.Recipe{
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: in.MinutesToComplete,
		UserID:            &userID,
	}
	if msgs := rec.Validate(); len(msgs) > 0 {
		return nil, models.NewValidationError(msgs...)
	}

	var created *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.WithTx(tx).FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnauthorized
			}
			return fmt.Errorf("find owner: %w", err)
		}
		recipes := s.recipes.WithTx(tx)
		if err := recipes.Create(rec); err != nil {
			return err
		}
		var err error
		created, err = recipes.FindByID(rec.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
