package controllers

import (
	"net/http"

	"recipe-vault/backend/app/dto"
	"recipe-vault/backend/app/metrics"
	"recipe-vault/backend/app/middleware"
	"recipe-vault/backend/app/services"
)

type RecipeController struct{ Recipes *services.RecipeService }

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{Recipes: recipes}
}

func (c *RecipeController) Index(w http.ResponseWriter, r *http.Request) {
	recipes, err := c.Recipes.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRecipeList(recipes))
}

func (c *RecipeController) Create(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := middleware.GetSession(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.RecipeRequest
	if !decode(w, r, &req) {
		return
	}
	rec, err := c.Recipes.Create(r.Context(), uid, services.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	metrics.RecipesCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.NewRecipeResponse(rec))
}
