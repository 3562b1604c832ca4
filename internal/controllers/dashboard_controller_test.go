package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"recipefinder/internal/controllers"
	"recipefinder/internal/identity"
	"recipefinder/internal/middleware"
	"recipefinder/internal/mocks"
	"recipefinder/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func sessionProvider(session *identity.Session) *mocks.MockSessionProvider {
	provider := new(mocks.MockSessionProvider)
	if session == nil {
		provider.On("CurrentSession", mock.Anything).Return(nil, nil)
	} else {
		provider.On("CurrentSession", mock.Anything).Return(session, nil)
	}
	return provider
}

func setupDashboardController(session *identity.Session) (*gin.Engine, *mocks.MockAggregator) {
	aggregator := new(mocks.MockAggregator)
	controller := controllers.NewDashboardController(aggregator)

	router := setupTestRouter()
	group := router.Group("/dashboard", middleware.RequireSession(sessionProvider(session), zap.NewNop()))
	group.POST("", controller.Aggregate)
	group.GET("", controller.Session)
	return router, aggregator
}

func TestDashboardAggregate(t *testing.T) {
	session := &identity.Session{UserID: uuid.New(), Email: "cook@example.com"}
	aggregation := &services.Aggregation{
		Recipes: []services.RecipeSummary{{ID: 1, Title: "Apple Pie", Likes: 5, TotalLikes: 8, Bookmarked: true}},
		RecipesDetail: []services.RecipeDetailView{
			{ID: 1, Title: "Apple Pie"},
		},
	}

	tests := []struct {
		name           string
		session        *identity.Session
		form           url.Values
		setupMocks     func(*mocks.MockAggregator)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:    "aggregates the selected recipes",
			session: session,
			form:    url.Values{"recipeIds": {"1"}},
			setupMocks: func(a *mocks.MockAggregator) {
				a.On("Aggregate", mock.Anything, services.AggregateInput{RecipeIDs: []string{"1"}, UserID: session.UserID}).
					Return(aggregation, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				body := decodeBody(t, w)
				recipes := body["recipes"].([]interface{})
				assert.Len(t, recipes, 1)
				assert.Equal(t, float64(8), recipes[0].(map[string]interface{})["totalLikes"])
				assert.Equal(t, true, recipes[0].(map[string]interface{})["bookmarked"])
				assert.Len(t, body["recipesDetail"].([]interface{}), 1)
			},
		},
		{
			name:           "unauthorized",
			form:           url.Values{"recipeIds": {"1"}},
			setupMocks:     func(a *mocks.MockAggregator) {},
			expectedStatus: http.StatusUnauthorized,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			},
		},
		{
			name:           "no recipes selected",
			session:        session,
			form:           url.Values{},
			setupMocks:     func(a *mocks.MockAggregator) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"Please select at least one recipe"}`, w.Body.String())
			},
		},
		{
			name:    "upstream failure",
			session: session,
			form:    url.Values{"recipeIds": {"1"}},
			setupMocks: func(a *mocks.MockAggregator) {
				a.On("Aggregate", mock.Anything, mock.Anything).Return(nil, errors.New("bulk failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"External API request failed. Try again later."}`, w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, aggregator := setupDashboardController(tt.session)
			tt.setupMocks(aggregator)

			w := postForm(router, "/dashboard", tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w)
			aggregator.AssertExpectations(t)
		})
	}
}

func TestDashboardSession(t *testing.T) {
	router, _ := setupDashboardController(nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := &identity.Session{UserID: uuid.New(), Email: "cook@example.com"}
	router, _ = setupDashboardController(session)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cook@example.com", decodeBody(t, w)["session"].(map[string]interface{})["email"])
}
