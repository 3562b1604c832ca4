package forms

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/spoonacular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func requireFailure(t *testing.T, err error) *apperrors.Failure {
	t.Helper()
	var failure *apperrors.Failure
	require.True(t, errors.As(err, &failure), "expected a failure, got %v", err)
	assert.Equal(t, http.StatusBadRequest, failure.Status)
	return failure
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name       string
		parse      func(*http.Request) (Credentials, error)
		form       url.Values
		wantErr    string
		wantValues map[string]string
	}{
		{
			name:    "login without email",
			parse:   Login,
			form:    url.Values{"password": {"secret"}},
			wantErr: MsgEnterEmail,
		},
		{
			name:    "missing email is reported before password",
			parse:   Register,
			form:    url.Values{},
			wantErr: MsgEnterEmail,
		},
		{
			name:       "login without password echoes email",
			parse:      Login,
			form:       url.Values{"email": {"cook@example.com"}},
			wantErr:    MsgEnterPassword,
			wantValues: map[string]string{"email": "cook@example.com"},
		},
		{
			name:       "register without password echoes email",
			parse:      Register,
			form:       url.Values{"email": {"cook@example.com"}},
			wantErr:    MsgEnterNewPassword,
			wantValues: map[string]string{"email": "cook@example.com"},
		},
		{
			name:  "valid",
			parse: Login,
			form:  url.Values{"email": {" cook@example.com "}, "password": {"secret"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := tt.parse(formRequest(tt.form))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "cook@example.com", creds.Email)
				assert.Equal(t, "secret", creds.Password)
				return
			}
			failure := requireFailure(t, err)
			assert.Equal(t, tt.wantErr, failure.Message)
			assert.Equal(t, tt.wantValues, failure.Values)
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    spoonacular.SearchRequest
		wantErr string
	}{
		{
			name: "ingredients",
			form: url.Values{"type": {"ingredients"}, "ingredients": {"apples", " ", "flour"}},
			want: spoonacular.ByIngredients{Ingredients: []string{"apples", "flour"}},
		},
		{
			name:    "ingredients missing",
			form:    url.Values{"type": {"ingredients"}, "ingredients": {""}},
			wantErr: MsgEnterIngredient,
		},
		{
			name: "title",
			form: url.Values{"type": {"title"}, "title": {"pasta"}},
			want: spoonacular.ByTitle{Title: "pasta"},
		},
		{
			name: "title is the default mode",
			form: url.Values{"title": {"soup"}},
			want: spoonacular.ByTitle{Title: "soup"},
		},
		{
			name:    "title missing",
			form:    url.Values{"type": {"title"}},
			wantErr: MsgEnterTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(formRequest(tt.form))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, requireFailure(t, err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipeID(t *testing.T) {
	id, err := RecipeID(formRequest(url.Values{"id": {"716429"}}))
	require.NoError(t, err)
	assert.Equal(t, "716429", id)

	_, err = RecipeID(formRequest(url.Values{}))
	assert.Equal(t, MsgSelectRecipe, requireFailure(t, err).Message)
}

func TestRecipeIDs(t *testing.T) {
	ids, err := RecipeIDs(formRequest(url.Values{"recipeIds": {"1", "2", ""}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)

	_, err = RecipeIDs(formRequest(url.Values{}))
	assert.Equal(t, MsgSelectRecipes, requireFailure(t, err).Message)
}

func TestUnreadableForm(t *testing.T) {
	malformed := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("title=%zz&recipeIds=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	tests := []struct {
		name  string
		parse func(*http.Request) error
	}{
		{name: "login", parse: func(r *http.Request) error { _, err := Login(r); return err }},
		{name: "search", parse: func(r *http.Request) error { _, err := Search(r); return err }},
		{name: "detail", parse: func(r *http.Request) error { _, err := RecipeID(r); return err }},
		{name: "dashboard", parse: func(r *http.Request) error { _, err := RecipeIDs(r); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, MsgUnreadableForm, requireFailure(t, tt.parse(malformed())).Message)
		})
	}
}

func TestMultipartForm(t *testing.T) {
	var body strings.Builder
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("id", "716429"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", writer.FormDataContentType())

	id, err := RecipeID(req)
	require.NoError(t, err)
	assert.Equal(t, "716429", id)
}
