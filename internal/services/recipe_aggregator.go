package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"recipefinder/internal/metrics"
	"recipefinder/internal/spoonacular"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultAggregateConcurrency = 8

// RecipeSource is the part of the recipe provider the aggregator reads from.
type RecipeSource interface {
	InformationBulk(ctx context.Context, ids []string) ([]spoonacular.Recipe, error)
	Equipment(ctx context.Context, id string) ([]spoonacular.Equipment, error)
}

// FavouriteCounter is the part of the favourites store the aggregator reads from.
type FavouriteCounter interface {
	CountByRecipeID(ctx context.Context, recipeID int64) (int64, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
}

type AggregatorOptions struct {
	// EquipmentEnrichment fetches the equipment widget for every recipe.
	EquipmentEnrichment bool
	// PerUserBookmarks marks a recipe as bookmarked only when the current
	// user has a favourite for it. Off, every recipe is bookmarked.
	PerUserBookmarks bool
	// Concurrency bounds the per-recipe fan-out.
	Concurrency int
}

type AggregateInput struct {
	RecipeIDs []string
	UserID    uuid.UUID
}

// RecipeSummary is the compact card shown on the dashboard.
type RecipeSummary struct {
	ID                    int64             `json:"id"`
	Image                 string            `json:"image"`
	ImageType             string            `json:"imageType"`
	Likes                 int64             `json:"likes"`
	MissedIngredientCount int               `json:"missedIngredientCount"`
	MissedIngredients     []json.RawMessage `json:"missedIngredients"`
	Title                 string            `json:"title"`
	UnusedIngredients     []json.RawMessage `json:"unusedIngredients"`
	UsedIngredientCount   int               `json:"usedIngredientCount"`
	Bookmarked            bool              `json:"bookmarked"`
	TotalLikes            int64             `json:"totalLikes"`
}

// RecipeDetailView is the expanded recipe shown when a card is opened.
type RecipeDetailView struct {
	ID                  int64                   `json:"id"`
	Image               string                  `json:"image"`
	Title               string                  `json:"title"`
	ReadyInMinutes      int                     `json:"readyInMinutes"`
	Summary             string                  `json:"summary"`
	ExtendedIngredients []json.RawMessage       `json:"extendedIngredients"`
	Steps               []json.RawMessage       `json:"steps,omitempty"`
	Equipments          []spoonacular.Equipment `json:"equipments"`
}

type Aggregation struct {
	Recipes       []RecipeSummary    `json:"recipes"`
	RecipesDetail []RecipeDetailView `json:"recipesDetail"`
}

type Aggregator struct {
	recipes    RecipeSource
	favourites FavouriteCounter
	opts       AggregatorOptions
	metrics    *metrics.Metrics
	log        *zap.Logger
}

func NewAggregator(recipes RecipeSource, favourites FavouriteCounter, opts AggregatorOptions, m *metrics.Metrics, log *zap.Logger) *Aggregator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultAggregateConcurrency
	}
	return &Aggregator{
		recipes:    recipes,
		favourites: favourites,
		opts:       opts,
		metrics:    m,
		log:        log,
	}
}

// Aggregate fetches the recipes in one bulk call and joins each of them
// with its favourite count. A failed bulk fetch fails the whole call; a
// failed count only zeroes that recipe's totalLikes.
func (a *Aggregator) Aggregate(ctx context.Context, in AggregateInput) (*Aggregation, error) {
	raw, err := a.recipes.InformationBulk(ctx, in.RecipeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch recipes: %w", err)
	}

	out := &Aggregation{
		Recipes:       make([]RecipeSummary, len(raw)),
		RecipesDetail: make([]RecipeDetailView, len(raw)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Concurrency)
	for i := range raw {
		i := i
		recipe := raw[i]
		g.Go(func() error {
			out.Recipes[i] = a.summarize(gctx, recipe, in.UserID)
			out.RecipesDetail[i] = a.detail(gctx, recipe)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Aggregator) summarize(ctx context.Context, recipe spoonacular.Recipe, userID uuid.UUID) RecipeSummary {
	summary := RecipeSummary{
		ID:                    recipe.ID,
		Image:                 recipe.Image,
		ImageType:             recipe.ImageType,
		Likes:                 recipe.AggregateLikes,
		MissedIngredientCount: recipe.MissedIngredientCount,
		MissedIngredients:     recipe.MissedIngredients,
		Title:                 recipe.Title,
		UnusedIngredients:     recipe.UnusedIngredients,
		UsedIngredientCount:   recipe.UsedIngredientCount,
		Bookmarked:            a.bookmarked(ctx, recipe.ID, userID),
	}

	count, err := a.favourites.CountByRecipeID(ctx, recipe.ID)
	if err != nil {
		a.metrics.FavouriteCountFailed()
		a.log.Warn("favourite count failed, reporting zero likes",
			zap.Int64("recipe_id", recipe.ID), zap.Error(err))
		return summary
	}
	summary.TotalLikes = count + recipe.AggregateLikes
	return summary
}

func (a *Aggregator) bookmarked(ctx context.Context, recipeID int64, userID uuid.UUID) bool {
	if !a.opts.PerUserBookmarks {
		return true
	}
	exists, err := a.favourites.ExistsForUser(ctx, userID, recipeID)
	if err != nil {
		a.log.Warn("bookmark lookup failed", zap.Int64("recipe_id", recipeID), zap.Error(err))
		return false
	}
	return exists
}

func (a *Aggregator) detail(ctx context.Context, recipe spoonacular.Recipe) RecipeDetailView {
	view := RecipeDetailView{
		ID:                  recipe.ID,
		Image:               recipe.Image,
		Title:               recipe.Title,
		ReadyInMinutes:      recipe.ReadyInMinutes,
		Summary:             recipe.Summary,
		ExtendedIngredients: recipe.ExtendedIngredients,
		Steps:               spoonacular.FirstSteps(recipe.AnalyzedInstructions),
		Equipments:          []spoonacular.Equipment{},
	}
	if !a.opts.EquipmentEnrichment {
		return view
	}

	equipment, err := a.recipes.Equipment(ctx, strconv.FormatInt(recipe.ID, 10))
	if err != nil {
		a.log.Warn("equipment lookup failed", zap.Int64("recipe_id", recipe.ID), zap.Error(err))
		return view
	}
	if equipment != nil {
		view.Equipments = equipment
	}
	return view
}
