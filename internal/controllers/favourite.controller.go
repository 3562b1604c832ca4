package controllers

import (
	"net/http"
	"strconv"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/forms"
	"recipefinder/internal/middleware"
	"recipefinder/internal/models"
	"recipefinder/internal/repository"

	"github.com/gin-gonic/gin"
)

type FavouriteController struct {
	repo repository.FavouriteRepository
}

func NewFavouriteController(repo repository.FavouriteRepository) *FavouriteController {
	return &FavouriteController{repo: repo}
}

// CreateFavourite godoc
// @Summary Bookmark a recipe
// @Description Bookmarking a recipe twice keeps a single favourite
// @Tags favourites
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Recipe ID"
// @Success 201 {object} models.Favourite
// @Success 200 {object} models.Favourite "Already bookmarked"
// @Failure 400 {object} map[string]interface{} "Missing or invalid recipe ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /favourites [post]
func (fc *FavouriteController) CreateFavourite(c *gin.Context) {
	id, err := forms.RecipeID(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}
	recipeID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || recipeID <= 0 {
		respondFailure(c, apperrors.BadRequest(forms.MsgSelectRecipe, nil))
		return
	}

	favourite := &models.Favourite{
		RecipeID: recipeID,
		UserID:   middleware.SessionFromContext(c).UserID,
	}
	created, err := fc.repo.Create(c.Request.Context(), favourite)
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, nil, err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, favourite)
}

// ListFavourites godoc
// @Summary The current user's bookmarked recipe IDs
// @Tags favourites
// @Produce json
// @Success 200 {object} map[string]interface{} "recipeIds, newest first"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /favourites [get]
func (fc *FavouriteController) ListFavourites(c *gin.Context) {
	favourites, err := fc.repo.FindAllByUserID(c.Request.Context(), middleware.SessionFromContext(c).UserID)
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, nil, err))
		return
	}

	ids := make([]int64, 0, len(favourites))
	for _, f := range favourites {
		ids = append(ids, f.RecipeID)
	}
	c.JSON(http.StatusOK, gin.H{"recipeIds": ids})
}
