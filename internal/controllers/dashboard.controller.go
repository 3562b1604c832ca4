package controllers

import (
	"context"
	"net/http"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/forms"
	"recipefinder/internal/middleware"
	"recipefinder/internal/services"

	"github.com/gin-gonic/gin"
)

type RecipeAggregator interface {
	Aggregate(ctx context.Context, in services.AggregateInput) (*services.Aggregation, error)
}

type DashboardController struct {
	aggregator RecipeAggregator
}

func NewDashboardController(aggregator RecipeAggregator) *DashboardController {
	return &DashboardController{aggregator: aggregator}
}

// Aggregate godoc
// @Summary Dashboard recipes
// @Description Fetches the selected recipes in bulk and adds their favourite counts
// @Tags dashboard
// @Accept x-www-form-urlencoded
// @Produce json
// @Param recipeIds formData []string true "Recipe IDs" collectionFormat(multi)
// @Success 200 {object} services.Aggregation
// @Failure 400 {object} map[string]interface{} "No recipe selected"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "External API request failed"
// @Router /dashboard [post]
func (dc *DashboardController) Aggregate(c *gin.Context) {
	ids, err := forms.RecipeIDs(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}

	session := middleware.SessionFromContext(c)
	out, err := dc.aggregator.Aggregate(c.Request.Context(), services.AggregateInput{
		RecipeIDs: ids,
		UserID:    session.UserID,
	})
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgUpstreamError, nil, err))
		return
	}

	c.JSON(http.StatusOK, out)
}

// Session godoc
// @Summary Dashboard page data
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "The session"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /dashboard [get]
func (dc *DashboardController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": middleware.SessionFromContext(c)})
}
