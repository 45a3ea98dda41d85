package repo

import (
	"recipe-vault/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// WithTx returns a repository bound to tx.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository { return &UserRepository{db: tx} }

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindWithRecipes(id uint) (*models.User, error) {
	var u models.User
	err := r.db.Preload("Recipes", func(db *gorm.DB) *gorm.DB { return db.Order("recipes.id") }).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes the user together with every recipe it owns.
func (r *UserRepository) Delete(u *models.User) error {
	return r.db.Select("Recipes").Delete(u).Error
}
