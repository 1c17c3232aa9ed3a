package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// ErrFavoriteNotFound is returned when no favorite matches the given id
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteService owns the persisted favorite-recipe collection. Every
// operation is a single statement; there is no transactional coupling
// between calls and concurrent writers follow last-write-wins.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns all favorites ordered by ascending id. The result is never
// nil so an empty collection serializes as an empty JSON array.
func (s *FavoriteService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create persists a new favorite and returns it with its assigned id
func (s *FavoriteService) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.Ingredients == nil {
		recipe.Ingredients = models.JSONBStringArray{}
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// Remove deletes the favorite with the given id
func (s *FavoriteService) Remove(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// Update overwrites the supplied mutable fields on the favorite with the
// given id and returns the updated record
func (s *FavoriteService) Update(ctx context.Context, id uint, req *types.UpdateFavoriteRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.JSONBStringArray(req.Ingredients)
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}
