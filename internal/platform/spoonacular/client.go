// Package spoonacular is a client for the Spoonacular recipe search API.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"foodlens/internal/food"
)

// ErrQuotaExceeded is returned when the API rejects a request because the
// daily request quota has been exhausted (HTTP 402).
var ErrQuotaExceeded = fmt.Errorf("spoonacular daily quota exceeded")

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Client is a client for the Spoonacular API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new Spoonacular client. An empty baseURL selects the
// public API endpoint. Requests carry a 10-second timeout so a stalled
// upstream cannot block a resolution indefinitely.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.spoonacular.com"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// searchResponse mirrors the complexSearch response shape.
type searchResponse struct {
	Results []recipeResult `json:"results"`
}

type recipeResult struct {
	Title               string               `json:"title"`
	Summary             string               `json:"summary"`
	ExtendedIngredients []extendedIngredient `json:"extendedIngredients"`
	Nutrition           nutrition            `json:"nutrition"`
	Vegan               bool                 `json:"vegan"`
	Vegetarian          bool                 `json:"vegetarian"`
	GlutenFree          bool                 `json:"glutenFree"`
	DairyFree           bool                 `json:"dairyFree"`
}

type extendedIngredient struct {
	Original string `json:"original"`
}

type nutrition struct {
	Nutrients []nutrient `json:"nutrients"`
}

type nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FindRecipe searches for a single recipe matching the query and extracts it
// into a food.Info. It returns nil, nil when the API has no results for the
// query, and ErrQuotaExceeded when the daily quota is exhausted.
func (c *Client) FindRecipe(ctx context.Context, query string) (*food.Info, error) {
	searchURL := fmt.Sprintf(
		"%s/recipes/complexSearch?query=%s&number=1&addRecipeInformation=true&fillIngredients=true&apiKey=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return nil, ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(search.Results) == 0 {
		return nil, nil
	}

	info := buildInfo(&search.Results[0], query)
	return &info, nil
}

// buildInfo extracts a fully populated food.Info from a recipe result,
// substituting defaults for anything the result does not carry.
func buildInfo(recipe *recipeResult, query string) food.Info {
	name := recipe.Title
	if name == "" {
		name = query
	}

	description := htmlTagPattern.ReplaceAllString(recipe.Summary, "")
	if runes := []rune(description); len(runes) > 200 {
		description = string(runes[:197]) + "..."
	}
	if description == "" {
		description = fmt.Sprintf("A delicious %s dish", query)
	}

	ingredients := make([]string, 0, len(recipe.ExtendedIngredients))
	for _, ingredient := range recipe.ExtendedIngredients {
		ingredients = append(ingredients, ingredient.Original)
	}
	if len(ingredients) == 0 {
		ingredients = []string{food.IngredientUnavailable}
	}

	calories := 0
	for _, n := range recipe.Nutrition.Nutrients {
		if n.Name == "Calories" {
			calories = int(n.Amount)
			break
		}
	}

	return food.Info{
		Name:        name,
		Description: description,
		Ingredients: ingredients,
		Calories:    calories,
		Vegan:       recipe.Vegan,
		Vegetarian:  recipe.Vegetarian,
		GlutenFree:  recipe.GlutenFree,
		DairyFree:   recipe.DairyFree,
		Allergens:   food.DetectAllergens(ingredients),
	}
}
