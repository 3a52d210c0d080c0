package food

import (
	"context"
	"log"
	"strings"
)

// RecipeSource defines the interface for the external recipe/nutrition source.
// FindRecipe returns nil, nil when the source has no match for the query.
type RecipeSource interface {
	FindRecipe(ctx context.Context, query string) (*Info, error)
}

// Resolver turns a food name into an enriched Info record, querying the recipe
// source and degrading to the curated fallback table on any failure.
type Resolver struct {
	source RecipeSource
}

// NewResolver creates a new Resolver backed by the given recipe source.
func NewResolver(source RecipeSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve looks up enriched information for a food name. It is total: network
// errors, malformed responses, quota rejections, and empty result sets all
// degrade to the curated fallback record, never to an error. The fallback
// receives the caller's original name so lookup behavior stays consistent
// between the two paths.
func (r *Resolver) Resolve(ctx context.Context, foodName string) Info {
	cleanName := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(foodName), "_", " "))

	log.Printf("Searching recipes for: %s", cleanName)

	info, err := r.source.FindRecipe(ctx, cleanName)
	if err != nil {
		log.Printf("Recipe search failed for %q, using fallback: %v", cleanName, err)
		return Lookup(foodName)
	}
	if info == nil {
		log.Printf("No recipes found for %q, using fallback", cleanName)
		return Lookup(foodName)
	}

	log.Printf("Found recipe: %s with %d ingredients", info.Name, len(info.Ingredients))
	return *info
}
