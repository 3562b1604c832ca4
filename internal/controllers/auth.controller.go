package controllers

import (
	"context"
	"errors"
	"net/http"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/forms"
	"recipefinder/internal/identity"
	"recipefinder/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgUserExists         = "This user already exists!"
	msgLoggedIn           = "Logged in."
	msgCheckEmail         = "Please check your email to confirm your account."
	msgInvalidLink        = "This confirmation link is invalid or has expired."
)

// Authenticator is the identity service as seen by the auth handlers.
type Authenticator interface {
	identity.SessionProvider
	SignInWithPassword(ctx context.Context, email, password string) (string, *identity.Session, error)
	SignUp(ctx context.Context, email, password string) error
	ConfirmEmail(ctx context.Context, email, code string) error
	SignOut(ctx context.Context, session *identity.Session) error
	CookieName() string
}

// AuthResult is the body of a successful login or registration.
type AuthResult struct {
	Message string `json:"message"`
	Login   bool   `json:"login"`
}

type AuthController struct {
	auth       Authenticator
	cookies    CookieOptions
	websiteURL string
	log        *zap.Logger
}

func NewAuthController(auth Authenticator, cookies CookieOptions, websiteURL string, log *zap.Logger) *AuthController {
	return &AuthController{auth: auth, cookies: cookies, websiteURL: websiteURL, log: log}
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} AuthResult
// @Failure 400 {object} map[string]interface{} "Missing field or invalid credentials"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	creds, err := forms.Login(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}
	values := map[string]string{"email": creds.Email}

	token, _, err := ac.auth.SignInWithPassword(c.Request.Context(), creds.Email, creds.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		respondFailure(c, apperrors.BadRequest(msgInvalidCredentials, values))
		return
	}
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, values, err))
		return
	}

	setSessionCookie(c, ac.auth.CookieName(), token, ac.cookies)
	c.JSON(http.StatusOK, AuthResult{Message: msgLoggedIn, Login: true})
}

// Register godoc
// @Summary Create an account
// @Description Creates an unconfirmed account and emails a confirmation link
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password (at least 6 characters)"
// @Success 200 {object} AuthResult
// @Failure 400 {object} map[string]interface{} "Missing field, invalid credentials or existing user"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	creds, err := forms.Register(c.Request)
	if err != nil {
		respondFailure(c, err)
		return
	}
	values := map[string]string{"email": creds.Email}

	err = ac.auth.SignUp(c.Request.Context(), creds.Email, creds.Password)
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		respondFailure(c, apperrors.BadRequest(msgInvalidCredentials, values))
		return
	case errors.Is(err, identity.ErrUserExists):
		respondFailure(c, apperrors.BadRequest(msgUserExists, values))
		return
	case err != nil:
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, values, err))
		return
	}

	c.JSON(http.StatusOK, AuthResult{Message: msgCheckEmail, Login: false})
}

// Confirm godoc
// @Summary Confirm an email address
// @Tags auth
// @Param email query string true "Email"
// @Param code query string true "Confirmation code"
// @Success 303 "Redirect to the website"
// @Failure 400 {object} map[string]interface{} "Invalid or expired link"
// @Router /auth/confirm [get]
func (ac *AuthController) Confirm(c *gin.Context) {
	email, code := c.Query("email"), c.Query("code")
	if email == "" || code == "" {
		respondFailure(c, apperrors.BadRequest(msgInvalidLink, nil))
		return
	}

	err := ac.auth.ConfirmEmail(c.Request.Context(), email, code)
	if errors.Is(err, identity.ErrInvalidCode) {
		respondFailure(c, apperrors.BadRequest(msgInvalidLink, nil))
		return
	}
	if err != nil {
		respondFailure(c, apperrors.Internal(apperrors.MsgServerError, nil, err))
		return
	}

	c.Redirect(http.StatusSeeOther, ac.websiteURL)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 303 "Redirect to /"
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	if session := middleware.SessionFromContext(c); session != nil {
		if err := ac.auth.SignOut(c.Request.Context(), session); err != nil {
			ac.log.Warn("failed to revoke session", zap.String("user_id", session.UserID.String()), zap.Error(err))
		}
	}
	clearSessionCookie(c, ac.auth.CookieName(), ac.cookies)
	c.Redirect(http.StatusSeeOther, "/")
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "The session, or null"
// @Router /auth/session [get]
func (ac *AuthController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": middleware.SessionFromContext(c)})
}
