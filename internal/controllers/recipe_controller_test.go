package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"recipefinder/internal/controllers"
	"recipefinder/internal/mocks"
	"recipefinder/internal/spoonacular"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func setupRecipeController(equipmentEnrichment bool) (*gin.Engine, *mocks.MockRecipeProvider) {
	recipes := new(mocks.MockRecipeProvider)
	controller := controllers.NewRecipeController(recipes, equipmentEnrichment, zap.NewNop())

	router := setupTestRouter()
	router.POST("/recipes/search", controller.Search)
	router.POST("/recipes/detail", controller.Detail)
	return router, recipes
}

func TestSearchRecipes(t *testing.T) {
	found := []json.RawMessage{json.RawMessage(`{"id":1,"title":"Apple Pie"}`)}

	tests := []struct {
		name           string
		form           url.Values
		setupMocks     func(*mocks.MockRecipeProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "by ingredients",
			form: url.Values{"type": {"ingredients"}, "ingredients": {"apples", "flour"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Search", mock.Anything, spoonacular.ByIngredients{Ingredients: []string{"apples", "flour"}}).Return(found, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"recipes":[{"id":1,"title":"Apple Pie"}]}`,
		},
		{
			name: "by title",
			form: url.Values{"type": {"title"}, "title": {"pie"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Search", mock.Anything, spoonacular.ByTitle{Title: "pie"}).Return(found, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"recipes":[{"id":1,"title":"Apple Pie"}]}`,
		},
		{
			name:           "missing ingredients",
			form:           url.Values{"type": {"ingredients"}},
			setupMocks:     func(r *mocks.MockRecipeProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Please enter at least one ingredient"}`,
		},
		{
			name:           "missing title",
			form:           url.Values{"type": {"title"}},
			setupMocks:     func(r *mocks.MockRecipeProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Please enter a title"}`,
		},
		{
			name: "upstream status text",
			form: url.Values{"title": {"pie"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Search", mock.Anything, spoonacular.ByTitle{Title: "pie"}).
					Return(nil, &spoonacular.UpstreamError{StatusCode: 402, StatusText: "Payment Required"})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Payment Required"}`,
		},
		{
			name: "transport failure",
			form: url.Values{"title": {"pie"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Search", mock.Anything, spoonacular.ByTitle{Title: "pie"}).Return(nil, errors.New("dial tcp: timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"External API request failed. Try again later."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recipes := setupRecipeController(false)
			tt.setupMocks(recipes)

			w := postForm(router, "/recipes/search", tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			recipes.AssertExpectations(t)
		})
	}
}

func TestRecipeDetail(t *testing.T) {
	detail := json.RawMessage(`{"id":716429,"title":"Pasta"}`)
	step := `{"number":1,"step":"Preheat and boil water.","ingredients":[],
		"equipment":[{"id":404784,"name":"oven","image":"oven.jpg","temperature":{"number":200.0,"unit":"Celsius"}}]}`
	instructions := []spoonacular.AnalyzedInstruction{
		{Steps: []json.RawMessage{json.RawMessage(step)}},
	}

	tests := []struct {
		name           string
		form           url.Values
		enrichment     bool
		setupMocks     func(*mocks.MockRecipeProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "detail with instructions",
			form: url.Values{"id": {"716429"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Information", mock.Anything, "716429").Return(detail, nil)
				r.On("AnalyzedInstructions", mock.Anything, "716429").Return(instructions, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"detail":{"id":716429,"title":"Pasta"},"equipments":[],"instructions":[` + step + `]}`,
		},
		{
			name: "instructions failure degrades",
			form: url.Values{"id": {"716429"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Information", mock.Anything, "716429").Return(detail, nil)
				r.On("AnalyzedInstructions", mock.Anything, "716429").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"detail":{"id":716429,"title":"Pasta"},"equipments":[],"instructions":null}`,
		},
		{
			name:       "with equipment enrichment",
			form:       url.Values{"id": {"716429"}},
			enrichment: true,
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Information", mock.Anything, "716429").Return(detail, nil)
				r.On("AnalyzedInstructions", mock.Anything, "716429").Return([]spoonacular.AnalyzedInstruction{}, nil)
				r.On("Equipment", mock.Anything, "716429").Return([]spoonacular.Equipment{{Name: "pot", Image: "pot.jpg"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"detail":{"id":716429,"title":"Pasta"},"equipments":[{"name":"pot","image":"pot.jpg"}],"instructions":null}`,
		},
		{
			name: "detail failure",
			form: url.Values{"id": {"716429"}},
			setupMocks: func(r *mocks.MockRecipeProvider) {
				r.On("Information", mock.Anything, "716429").Return(nil, &spoonacular.UpstreamError{StatusCode: 404, StatusText: "Not Found"})
				r.On("AnalyzedInstructions", mock.Anything, "716429").Return(instructions, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"External API request failed. Try again later."}`,
		},
		{
			name:           "missing id",
			form:           url.Values{},
			setupMocks:     func(r *mocks.MockRecipeProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Please select a recipe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recipes := setupRecipeController(tt.enrichment)
			tt.setupMocks(recipes)

			w := postForm(router, "/recipes/detail", tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			recipes.AssertExpectations(t)
			if !tt.enrichment {
				recipes.AssertNotCalled(t, "Equipment", mock.Anything, mock.Anything)
			}
		})
	}
}
