package repo

import (
	"recipe-vault/backend/app/models"

	"gorm.io/gorm"
)

type RecipeRepository struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) *RecipeRepository { return &RecipeRepository{db: db} }

func (r *RecipeRepository) WithTx(tx *gorm.DB) *RecipeRepository { return &RecipeRepository{db: tx} }

func (r *RecipeRepository) Create(rec *models.Recipe) error { return r.db.Create(rec).Error }

func (r *RecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var rec models.Recipe
	if err := r.db.Preload("User").First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipeRepository) ListAll() ([]models.Recipe, error) {
	var out []models.Recipe
	if err := r.db.Preload("User").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecipeRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
}
