package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
	"github.com/pantrychef/backend/pkg/logger"
)

// FavoriteHandler serves CRUD over the persisted favorites collection
type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler instance
func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// RegisterRoutes registers the favorites routes
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.POST("", h.Create)
		recipes.PUT("/:id", h.Update)
		recipes.DELETE("/:id", h.Delete)
	}
}

// List returns all favorites ordered by id
func (h *FavoriteHandler) List(c *gin.Context) {
	recipes, err := h.favorites.List(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Create saves a new favorite and returns it with its assigned id
func (h *FavoriteHandler) Create(c *gin.Context) {
	var req types.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Image:        req.Image,
		Instructions: req.Instructions,
		Ingredients:  models.JSONBStringArray(req.Ingredients),
		ReadyIn:      req.ReadyIn,
	}

	if err := h.favorites.Create(c.Request.Context(), &recipe); err != nil {
		logger.Error().Err(err).Msg("failed to create favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// Update applies a partial update and returns the updated favorite
func (h *FavoriteHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	var req types.UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	recipe, err := h.favorites.Update(c.Request.Context(), uint(id), &req)
	if errors.Is(err, service.ErrFavoriteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Uint64("id", id).Msg("failed to update favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Delete removes a favorite
func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	err = h.favorites.Remove(c.Request.Context(), uint(id))
	if errors.Is(err, service.ErrFavoriteNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Uint64("id", id).Msg("failed to delete favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe removed from favorites",
		"id":      id,
	})
}
