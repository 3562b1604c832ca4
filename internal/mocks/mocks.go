// Package mocks holds testify mocks shared by the handler and service tests.
package mocks

import (
	"context"
	"encoding/json"
	"net/http"

	"recipefinder/internal/identity"
	"recipefinder/internal/models"
	"recipefinder/internal/services"
	"recipefinder/internal/spoonacular"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRecipeProvider struct {
	mock.Mock
}

func (m *MockRecipeProvider) Search(ctx context.Context, req spoonacular.SearchRequest) ([]json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockRecipeProvider) Information(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockRecipeProvider) AnalyzedInstructions(ctx context.Context, id string) ([]spoonacular.AnalyzedInstruction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.AnalyzedInstruction), args.Error(1)
}

func (m *MockRecipeProvider) Equipment(ctx context.Context, id string) ([]spoonacular.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.Equipment), args.Error(1)
}

func (m *MockRecipeProvider) InformationBulk(ctx context.Context, ids []string) ([]spoonacular.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spoonacular.Recipe), args.Error(1)
}

type MockFavouriteRepository struct {
	mock.Mock
}

func (m *MockFavouriteRepository) Create(ctx context.Context, favourite *models.Favourite) (bool, error) {
	args := m.Called(ctx, favourite)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) CountByRecipeID(ctx context.Context, recipeID int64) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavouriteRepository) ExistsForUser(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favourite), args.Error(1)
}

type MockSessionProvider struct {
	mock.Mock
}

func (m *MockSessionProvider) CurrentSession(r *http.Request) (*identity.Session, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}

type MockAuthenticator struct {
	MockSessionProvider
}

func (m *MockAuthenticator) SignInWithPassword(ctx context.Context, email, password string) (string, *identity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*identity.Session), args.Error(2)
}

func (m *MockAuthenticator) SignUp(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthenticator) ConfirmEmail(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockAuthenticator) SignOut(ctx context.Context, session *identity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthenticator) CookieName() string {
	return "session"
}

type MockOAuthFlow struct {
	mock.Mock
}

func (m *MockOAuthFlow) AuthURL(ctx context.Context, provider string) (string, error) {
	args := m.Called(ctx, provider)
	return args.String(0), args.Error(1)
}

func (m *MockOAuthFlow) Callback(ctx context.Context, state, code string) (string, *identity.Session, error) {
	args := m.Called(ctx, state, code)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*identity.Session), args.Error(2)
}

type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) Aggregate(ctx context.Context, in services.AggregateInput) (*services.Aggregation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Aggregation), args.Error(1)
}
