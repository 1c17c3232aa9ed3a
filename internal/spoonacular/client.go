package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pantrychef/backend/pkg/logger"
)

const defaultAPIURL = "https://api.spoonacular.com"

var (
	// ErrAPIKeyMissing indicates a configuration problem, not an upstream failure
	ErrAPIKeyMissing = errors.New("spoonacular API key is not configured")
	// ErrNoResults indicates the upstream answered but had nothing for us
	ErrNoResults = errors.New("no recipes found")
)

// Recipe is the normalized recipe shape produced from the heterogeneous
// upstream responses. It carries no local ID; one is assigned only when the
// recipe is saved as a favorite.
type Recipe struct {
	Title        string   `json:"title"`
	Image        string   `json:"image,omitempty"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
	ReadyIn      *int     `json:"readyIn,omitempty"`
}

// Client talks to the Spoonacular API
type Client struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewClient creates a new Spoonacular client. An empty apiKey is allowed so
// the process can start without one; calls will fail with ErrAPIKeyMissing.
func NewClient(apiKey string) *Client {
	apiURL := os.Getenv("SPOONACULAR_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		client: http.DefaultClient,
	}
}

// recipeInformation mirrors the fields we use from the upstream recipe object
type recipeInformation struct {
	Title               string `json:"title"`
	Image               string `json:"image"`
	Instructions        string `json:"instructions"`
	ReadyInMinutes      *int   `json:"readyInMinutes"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

// searchCandidate is one entry from the findByIngredients endpoint
type searchCandidate struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (r *recipeInformation) normalize() *Recipe {
	instructions := r.Instructions
	if instructions == "" {
		instructions = "No instructions available."
	}

	ingredients := make([]string, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	return &Recipe{
		Title:        r.Title,
		Image:        r.Image,
		Instructions: instructions,
		Ingredients:  ingredients,
		ReadyIn:      r.ReadyInMinutes,
	}
}

// FetchRandom fetches one random recipe from the upstream API
func (c *Client) FetchRandom(ctx context.Context) (*Recipe, error) {
	var payload struct {
		Recipes []recipeInformation `json:"recipes"`
	}

	params := url.Values{}
	params.Set("number", "1")
	params.Set("addRecipeInformation", "true")
	if err := c.get(ctx, "/recipes/random", params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Recipes) == 0 {
		return nil, ErrNoResults
	}

	return payload.Recipes[0].normalize(), nil
}

// FetchByID fetches full details for one recipe
func (c *Client) FetchByID(ctx context.Context, id int) (*Recipe, error) {
	var payload recipeInformation

	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.get(ctx, path, url.Values{}, &payload); err != nil {
		return nil, err
	}

	return payload.normalize(), nil
}

// SearchByIngredients queries the upstream for up to limit recipes matching
// the given ingredients, then fetches full details for each candidate
// concurrently. Detail fetches that fail are logged and dropped; partial
// results are preferred over an all-or-nothing failure. Only a failed or
// empty initial search is reported to the caller.
func (c *Client) SearchByIngredients(ctx context.Context, ingredients []string, limit int) ([]Recipe, error) {
	var candidates []searchCandidate

	params := url.Values{}
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", strconv.Itoa(limit))
	params.Set("ranking", "1")
	params.Set("ignorePantry", "false")
	if err := c.get(ctx, "/recipes/findByIngredients", params, &candidates); err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNoResults
	}

	// Settle-all fan-out: every detail fetch runs to completion and failures
	// only remove their own slot from the result set.
	results := make([]*Recipe, len(candidates))
	g := new(errgroup.Group)
	for i, candidate := range candidates {
		g.Go(func() error {
			recipe, err := c.FetchByID(ctx, candidate.ID)
			if err != nil {
				logger.Warn().
					Err(err).
					Int("recipe_id", candidate.ID).
					Str("title", candidate.Title).
					Msg("dropping recipe from search results")
				return nil
			}
			results[i] = recipe
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]Recipe, 0, len(results))
	for _, r := range results {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}

	return recipes, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach spoonacular: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spoonacular returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode spoonacular response: %w", err)
	}

	return nil
}
