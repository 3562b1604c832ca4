// Package forms turns submitted form fields into typed parameters.
//
// Each form is validated field by field in declaration order and only the
// first failing field is reported, so a missing email is always reported
// before the password is looked at. Failures carry the values the client
// should redisplay.
package forms

import (
	"errors"
	"net/http"
	"strings"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/spoonacular"

	"github.com/go-playground/validator/v10"
)

const (
	MsgEnterEmail         = "Please enter your email"
	MsgEnterPassword      = "Please enter your password"
	MsgEnterNewPassword   = "Please enter a password"
	MsgEnterIngredient    = "Please enter at least one ingredient"
	MsgEnterTitle         = "Please enter a title"
	MsgSelectRecipe       = "Please select a recipe"
	MsgSelectRecipes      = "Please select at least one recipe"
	MsgUnreadableForm     = "The submitted form could not be read"
	SearchTypeIngredients = "ingredients"
)

var validate = validator.New()

// Credentials are the login and register fields.
type Credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type recipeID struct {
	ID string `validate:"required"`
}

type recipeIDs struct {
	RecipeIDs []string `validate:"required,min=1"`
}

type ingredientSearch struct {
	Ingredients []string `validate:"required,min=1"`
}

type titleSearch struct {
	Title string `validate:"required"`
}

const maxFormMemory = 32 << 20

// parse reads the urlencoded or multipart body into r.PostForm.
func parse(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return apperrors.BadRequest(MsgUnreadableForm, nil)
	}
	return nil
}

// firstFailure maps the first field error to its message. Validation
// errors are ordered like the struct fields.
func firstFailure(err error, messages map[string]string, values map[string]string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	return apperrors.BadRequest(messages[field], values)
}

// Login validates the login form.
func Login(r *http.Request) (Credentials, error) {
	return credentials(r, MsgEnterPassword)
}

// Register validates the registration form.
func Register(r *http.Request) (Credentials, error) {
	return credentials(r, MsgEnterNewPassword)
}

func credentials(r *http.Request, passwordMessage string) (Credentials, error) {
	if err := parse(r); err != nil {
		return Credentials{}, err
	}
	form := Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}

	if err := validate.Struct(form); err != nil {
		// The email has already passed when the password fails.
		var values map[string]string
		if form.Email != "" {
			values = map[string]string{"email": form.Email}
		}
		return Credentials{}, firstFailure(err, map[string]string{
			"Email":    MsgEnterEmail,
			"Password": passwordMessage,
		}, values)
	}
	return form, nil
}

// Search validates the search form. A type of "ingredients" searches by
// ingredients; any other type searches by title.
func Search(r *http.Request) (spoonacular.SearchRequest, error) {
	if err := parse(r); err != nil {
		return nil, err
	}

	if r.PostForm.Get("type") == SearchTypeIngredients {
		form := ingredientSearch{Ingredients: nonEmpty(r.PostForm["ingredients"])}
		if err := validate.Struct(form); err != nil {
			return nil, firstFailure(err, map[string]string{"Ingredients": MsgEnterIngredient}, nil)
		}
		return spoonacular.ByIngredients{Ingredients: form.Ingredients}, nil
	}

	form := titleSearch{Title: strings.TrimSpace(r.PostForm.Get("title"))}
	if err := validate.Struct(form); err != nil {
		return nil, firstFailure(err, map[string]string{"Title": MsgEnterTitle}, nil)
	}
	return spoonacular.ByTitle{Title: form.Title}, nil
}

// RecipeID validates the recipe detail form.
func RecipeID(r *http.Request) (string, error) {
	if err := parse(r); err != nil {
		return "", err
	}
	form := recipeID{ID: strings.TrimSpace(r.PostForm.Get("id"))}
	if err := validate.Struct(form); err != nil {
		return "", firstFailure(err, map[string]string{"ID": MsgSelectRecipe}, nil)
	}
	return form.ID, nil
}

// RecipeIDs validates the dashboard form.
func RecipeIDs(r *http.Request) ([]string, error) {
	if err := parse(r); err != nil {
		return nil, err
	}
	form := recipeIDs{RecipeIDs: nonEmpty(r.PostForm["recipeIds"])}
	if err := validate.Struct(form); err != nil {
		return nil, firstFailure(err, map[string]string{"RecipeIDs": MsgSelectRecipes}, nil)
	}
	return form.RecipeIDs, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
