package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/spoonacular"
	"github.com/pantrychef/backend/pkg/logger"
)

const defaultSearchLimit = 5

// RecipeProvider is the upstream recipe source used by the browse routes
type RecipeProvider interface {
	FetchRandom(ctx context.Context) (*spoonacular.Recipe, error)
	SearchByIngredients(ctx context.Context, ingredients []string, limit int) ([]spoonacular.Recipe, error)
}

// RecipeHandler serves transient recipes fetched from the upstream provider
type RecipeHandler struct {
	provider RecipeProvider
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(provider RecipeProvider) *RecipeHandler {
	return &RecipeHandler{provider: provider}
}

// RegisterRoutes registers the provider-backed routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/random-recipe", h.RandomRecipe)
	router.GET("/search", h.Search)
}

// RandomRecipe returns one random recipe from the upstream API
func (h *RecipeHandler) RandomRecipe(c *gin.Context) {
	recipe, err := h.provider.FetchRandom(c.Request.Context())
	switch {
	case errors.Is(err, spoonacular.ErrAPIKeyMissing):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key is not configured."})
	case errors.Is(err, spoonacular.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"message": "No random recipe found."})
	case err != nil:
		logger.Error().Err(err).Msg("failed to fetch random recipe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe."})
	default:
		c.JSON(http.StatusOK, recipe)
	}
}

// Search returns recipes matching a comma-separated ingredient list. Results
// may be partial: candidates whose detail fetch failed are omitted.
func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("ingredients")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'ingredients' query parameter (e.g., ?ingredients=apple,sugar)."})
		return
	}

	var ingredients []string
	for _, ing := range strings.Split(query, ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'ingredients' query parameter (e.g., ?ingredients=apple,sugar)."})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 10 {
			limit = n
		}
	}

	recipes, err := h.provider.SearchByIngredients(c.Request.Context(), ingredients, limit)
	switch {
	case errors.Is(err, spoonacular.ErrAPIKeyMissing):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key is not configured."})
	case errors.Is(err, spoonacular.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"message": "No recipes found for the given ingredients."})
	case err != nil:
		logger.Error().Err(err).Msg("failed to search recipes by ingredients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes by ingredients from external API."})
	default:
		c.JSON(http.StatusOK, recipes)
	}
}
