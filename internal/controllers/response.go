package controllers

import (
	"net/http"
	"time"

	"recipefinder/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// CookieOptions control the session cookie set on sign-in.
type CookieOptions struct {
	Secure bool
	TTL    time.Duration
}

func respondFailure(c *gin.Context, err error) {
	failure := apperrors.From(err)
	if failure.Cause != nil {
		_ = c.Error(failure.Cause)
	}
	c.JSON(failure.Status, failure.Body())
}

func setSessionCookie(c *gin.Context, name, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
}

func clearSessionCookie(c *gin.Context, name string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", opts.Secure, true)
}
