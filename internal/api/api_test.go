package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/spoonacular"
	"github.com/pantrychef/backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("api-test", false)
	os.Exit(m.Run())
}

// fakeProvider implements RecipeProvider for handler tests
type fakeProvider struct {
	randomFn    func(ctx context.Context) (*spoonacular.Recipe, error)
	searchFn    func(ctx context.Context, ingredients []string, limit int) ([]spoonacular.Recipe, error)
	searchCalls int
}

func (f *fakeProvider) FetchRandom(ctx context.Context) (*spoonacular.Recipe, error) {
	return f.randomFn(ctx)
}

func (f *fakeProvider) SearchByIngredients(ctx context.Context, ingredients []string, limit int) ([]spoonacular.Recipe, error) {
	f.searchCalls++
	return f.searchFn(ctx, ingredients, limit)
}

// setupTestRouter wires all handlers against an in-memory database
func setupTestRouter(t *testing.T, provider RecipeProvider) (*gin.Engine, *service.AuthService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}))

	auth := service.NewAuthService(db, "test-secret")
	favorites := service.NewFavoriteService(db)

	router := gin.New()
	apiGroup := router.Group("/api")
	if provider != nil {
		NewRecipeHandler(provider).RegisterRoutes(apiGroup)
	}
	NewFavoriteHandler(favorites).RegisterRoutes(apiGroup)
	NewAuthHandler(auth).RegisterRoutes(apiGroup)
	NewUserHandler(auth).RegisterRoutes(apiGroup)

	return router, auth
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
