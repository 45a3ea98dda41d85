package dto

import "recipe-vault/backend/app/models"

type RecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeSummary is a recipe without its owner.
type RecipeSummary struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	UserID            *uint  `json:"user_id"`
}

// RecipeResponse embeds the owner's public fields, not the owner's recipes.
type RecipeResponse struct {
	RecipeSummary
	User *UserSummary `json:"user"`
}

func NewRecipeSummary(r *models.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	return RecipeResponse{RecipeSummary: NewRecipeSummary(r), User: NewUserSummary(r.User)}
}

func NewRecipeList(rs []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(rs))
	for i := range rs {
		out = append(out, NewRecipeResponse(&rs[i]))
	}
	return out
}
