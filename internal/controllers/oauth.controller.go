package controllers

import (
	"context"
	"errors"
	"net/http"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/identity"

	"github.com/gin-gonic/gin"
)

const defaultOAuthProvider = "google"

type OAuthFlow interface {
	AuthURL(ctx context.Context, provider string) (string, error)
	Callback(ctx context.Context, state, code string) (string, *identity.Session, error)
}

type OauthController struct {
	oauth      OAuthFlow
	cookieName string
	cookies    CookieOptions
}

func NewOauthController(oauth OAuthFlow, cookieName string, cookies CookieOptions) *OauthController {
	return &OauthController{oauth: oauth, cookieName: cookieName, cookies: cookies}
}

// LoginOAuth godoc
// @Summary Start an OAuth sign-in
// @Tags auth
// @Param provider query string false "OAuth provider" default(google)
// @Success 307 "Redirect to the provider's consent page"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /auth/oauth [post]
func (oc *OauthController) LoginOAuth(c *gin.Context) {
	provider := c.DefaultQuery("provider", defaultOAuthProvider)

	url, err := oc.oauth.AuthURL(c.Request.Context(), provider)
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, nil, err))
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback godoc
// @Summary Complete an OAuth sign-in
// @Tags auth
// @Param state query string true "State issued by /auth/oauth"
// @Param code query string true "Authorization code"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 {object} map[string]interface{} "Invalid state"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /auth/callback [get]
func (oc *OauthController) Callback(c *gin.Context) {
	token, _, err := oc.oauth.Callback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if errors.Is(err, identity.ErrInvalidOAuthState) {
		respondFailure(c, apperrors.BadRequest(msgInvalidCredentials, nil))
		return
	}
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, nil, err))
		return
	}

	setSessionCookie(c, oc.cookieName, token, oc.cookies)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
