package repo

import (
	"errors"
	"strings"
	"testing"

	"recipe-vault/backend/app/db/dbtest"
	"recipe-vault/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var longInstructions = strings.Repeat("Stir slowly and taste. ", 3)

func newUser(t *testing.T, users *UserRepository, name string) *models.User {
	t.Helper()
	pw, err := models.NewPassword("test123")
	require.NoError(t, err)
	u := &models.User{Username: name, Password: pw}
	require.NoError(t, users.Create(u))
	return u
}

func TestUserRepositoryFind(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	u := newUser(t, users, "Liz")

	byName, err := users.FindByUsername("Liz")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.True(t, byName.Password.Matches("test123"))

	_, err = users.FindByUsername("liz")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := users.CountByUsername("Liz")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepositoryRejectsDuplicateUsername(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	newUser(t, users, "Ben")

	pw, err := models.NewPassword("other")
	require.NoError(t, err)
	require.Error(t, users.Create(&models.User{Username: "Ben", Password: pw}))

	count, err := users.CountByUsername("Ben")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestHooksRejectInvalidRows(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	recipes := NewRecipeRepository(gdb)

	var verr *models.ValidationError
	err := users.Create(&models.User{})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, models.MsgUsernameRequired)

	u := newUser(t, users, "User2")
	err = recipes.Create(&models.Recipe{Instructions: longInstructions, UserID: &u.ID})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{models.MsgTitleRequired}, verr.Messages)

	count, err := recipes.CountByUser(u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecipeRepositoryListPreloadsOwner(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	recipes := NewRecipeRepository(gdb)
	u := newUser(t, users, "Chef")

	minutes := 60
	require.NoError(t, recipes.Create(&models.Recipe{Title: "Delicious Shed Ham", Instructions: longInstructions, MinutesToComplete: &minutes, UserID: &u.ID}))
	require.NoError(t, recipes.Create(&models.Recipe{Title: "Toast", Instructions: longInstructions, UserID: &u.ID}))

	all, err := recipes.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Delicious Shed Ham", all[0].Title)
	require.NotNil(t, all[0].MinutesToComplete)
	assert.Equal(t, 60, *all[0].MinutesToComplete)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "Chef", all[0].User.Username)
	assert.Nil(t, all[1].MinutesToComplete)
}

func TestUserRepositoryDeleteCascades(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	recipes := NewRecipeRepository(gdb)
	doomed := newUser(t, users, "Doomed")
	keeper := newUser(t, users, "Keeper")
	for _, owner := range []*models.User{doomed, doomed, keeper} {
		require.NoError(t, recipes.Create(&models.Recipe{Title: "Soup", Instructions: longInstructions, UserID: &owner.ID}))
	}

	require.NoError(t, users.Delete(doomed))

	_, err := users.FindByID(doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var orphans int64
	require.NoError(t, gdb.Model(&models.Recipe{}).Where("user_id = ?", doomed.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	left, err := recipes.CountByUser(keeper.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, left)
}

func TestDatabaseCascadesRecipesOnRawUserDelete(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	recipes := NewRecipeRepository(gdb)
	doomed := newUser(t, users, "Doomed")
	keeper := newUser(t, users, "Keeper")
	for _, owner := range []*models.User{doomed, doomed, keeper} {
		require.NoError(t, recipes.Create(&models.Recipe{Title: "Soup", Instructions: longInstructions, UserID: &owner.ID}))
	}

	require.NoError(t, gdb.Exec("DELETE FROM users WHERE id = ?", doomed.ID).Error)

	var orphans int64
	require.NoError(t, gdb.Model(&models.Recipe{}).Where("user_id = ?", doomed.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	left, err := recipes.CountByUser(keeper.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, left)
}

func TestFindWithRecipes(t *testing.T) {
	gdb := dbtest.Open(t)
	users := NewUserRepository(gdb)
	recipes := NewRecipeRepository(gdb)
	u := newUser(t, users, "Cook")
	require.NoError(t, recipes.Create(&models.Recipe{Title: "Stew", Instructions: longInstructions, UserID: &u.ID}))

	got, err := users.FindWithRecipes(u.ID)
	require.NoError(t, err)
	require.Len(t, got.Recipes, 1)
	assert.Equal(t, "Stew", got.Recipes[0].Title)
}
