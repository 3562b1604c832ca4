package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/forms"
	"recipefinder/internal/spoonacular"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RecipeController struct {
	recipes             spoonacular.RecipeProvider
	equipmentEnrichment bool
	log                 *zap.Logger
}

func NewRecipeController(recipes spoonacular.RecipeProvider, equipmentEnrichment bool, log *zap.Logger) *RecipeController {
	return &RecipeController{recipes: recipes, equipmentEnrichment: equipmentEnrichment, log: log}
}

// Search godoc
// @Summary Search recipes
// @Description Searches by ingredients when type is "ingredients", otherwise by title
// @Tags recipes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param type formData string false "ingredients or title"
// @Param ingredients formData []string false "Ingredients" collectionFormat(multi)
// @Param title formData string false "Title"
// @Success 200 {object} map[string]interface{} "Recipes"
// @Failure 400 {object} map[string]interface{} "Missing ingredients or title"
// @Failure 500 {object} map[string]interface{} "External API request failed"
// @Router /recipes/search [post]
func (rc *RecipeController) Search(c *gin.Context) {
	req, err := forms.Search(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}

	recipes, err := rc.recipes.Search(c.Request.Context(), req)
	if err != nil {
		message := apperrors.MsgUpstreamError
		var upstream *spoonacular.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusText != "" {
			message = upstream.StatusText
		}
		respondFailure(c, apperrors.Internal(message, nil, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Detail godoc
// @Summary Recipe detail
// @Description Fetches the recipe information and its instructions
// @Tags recipes
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData string true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Detail, equipments and instructions"
// @Failure 400 {object} map[string]interface{} "Missing recipe ID"
// @Failure 500 {object} map[string]interface{} "External API request failed"
// @Router /recipes/detail [post]
func (rc *RecipeController) Detail(c *gin.Context) {
	id, err := forms.RecipeID(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}

	var (
		detail       json.RawMessage
		detailErr    error
		instructions []json.RawMessage
		equipments   = []spoonacular.Equipment{}
	)

	// Only the detail call decides the outcome; the others degrade.
	ctx := c.Request.Context()
	var g errgroup.Group
	g.Go(func() error {
		detail, detailErr = rc.recipes.Information(ctx, id)
		return nil
	})
	g.Go(func() error {
		analyzed, err := rc.recipes.AnalyzedInstructions(ctx, id)
		if err != nil {
			rc.log.Warn("instructions lookup failed", zap.String("recipe_id", id), zap.Error(err))
			return nil
		}
		instructions = spoonacular.FirstSteps(analyzed)
		return nil
	})
	if rc.equipmentEnrichment {
		g.Go(func() error {
			equipment, err := rc.recipes.Equipment(ctx, id)
			if err != nil {
				rc.log.Warn("equipment lookup failed", zap.String("recipe_id", id), zap.Error(err))
				return nil
			}
			if equipment != nil {
				equipments = equipment
			}
			return nil
		})
	}
	_ = g.Wait()

	if detailErr != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgUpstreamError, nil, detailErr))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail":       detail,
		"equipments":   equipments,
		"instructions": instructions,
	})
}
