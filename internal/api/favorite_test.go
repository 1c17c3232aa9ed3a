package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Image        string   `json:"image"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
	ReadyIn      *int     `json:"readyIn"`
}

func TestFavoriteLifecycle(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	// Create
	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{
		"title":       "Pasta",
		"ingredients": []string{"pasta", "salt"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created favoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Pasta", created.Title)
	assert.Equal(t, []string{"pasta", "salt"}, created.Ingredients)

	// List contains the new record
	w = doJSON(t, router, "GET", "/api/recipes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []favoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Delete
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/recipes/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// List no longer contains it
	w = doJSON(t, router, "GET", "/api/recipes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	// Second delete of the same id is a 404
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/recipes/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFavoriteMissingTitle(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{
		"ingredients": []string{"pasta"},
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFavoriteInvalidJSON(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, "POST", "/api/recipes", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFavorite(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{
		"title":        "Old Title",
		"image":        "https://img.example.com/old.jpg",
		"instructions": "Old instructions",
		"ingredients":  []string{"a", "b"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created favoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/recipes/%d", created.ID), map[string]interface{}{
		"title": "New Title",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var updated favoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Title", updated.Title)
	// Untouched fields keep their stored values
	assert.Equal(t, "https://img.example.com/old.jpg", updated.Image)
	assert.Equal(t, "Old instructions", updated.Instructions)
	assert.Equal(t, []string{"a", "b"}, updated.Ingredients)
}

func TestUpdateFavoriteNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, "PUT", "/api/recipes/424242", map[string]interface{}{
		"title": "whatever",
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFavoriteInvalidID(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, "DELETE", "/api/recipes/not-a-number", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
