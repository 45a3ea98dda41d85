package dto

import "recipe-vault/backend/app/models"

// UserSummary is the public view of a user, without its recipe list.
type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// UserResponse embeds the user's recipes, none of which re-embed their owner.
type UserResponse struct {
	UserSummary
	Recipes []RecipeSummary `json:"recipes"`
}

func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Username: u.Username, ImageURL: u.ImageURL, Bio: u.Bio}
}

func NewUserResponse(u *models.User) UserResponse {
	out := UserResponse{UserSummary: *NewUserSummary(u), Recipes: make([]RecipeSummary, 0, len(u.Recipes))}
	for i := range u.Recipes {
		out.Recipes = append(out.Recipes, NewRecipeSummary(&u.Recipes[i]))
	}
	return out
}
