package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrUnknownProvider   = errors.New("unknown oauth provider")
	ErrInvalidOAuthState = errors.New("invalid oauth state")
)

const oauthStateTTL = 10 * time.Minute

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// StateStore keeps OAuth state values between the redirect and the callback.
type StateStore interface {
	SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
}

// OAuthProvider is an OAuth2 client plus the endpoint that returns the
// signed-in user's email.
type OAuthProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		UserInfoURL: googleUserInfoURL,
	}
}

type OAuth struct {
	identity  *Service
	states    StateStore
	providers map[string]*OAuthProvider
}

func NewOAuth(identity *Service, states StateStore, providers map[string]*OAuthProvider) *OAuth {
	return &OAuth{identity: identity, states: states, providers: providers}
}

// AuthURL returns the provider's consent page URL, requesting offline
// access and forcing the consent prompt.
func (o *OAuth) AuthURL(ctx context.Context, provider string) (string, error) {
	p, ok := o.providers[provider]
	if !ok || p.Config.ClientID == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	state, err := randomState()
	if err != nil {
		return "", err
	}
	if err := o.states.SaveOAuthState(ctx, provider+":"+state, oauthStateTTL); err != nil {
		return "", fmt.Errorf("save oauth state: %w", err)
	}

	return p.Config.AuthCodeURL(provider+":"+state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// Callback completes the code exchange and signs the user in.
func (o *OAuth) Callback(ctx context.Context, state, code string) (string, *Session, error) {
	provider, _, found := strings.Cut(state, ":")
	p, ok := o.providers[provider]
	if !found || !ok {
		return "", nil, ErrInvalidOAuthState
	}

	valid, err := o.states.ConsumeOAuthState(ctx, state)
	if err != nil {
		return "", nil, fmt.Errorf("consume oauth state: %w", err)
	}
	if !valid {
		return "", nil, ErrInvalidOAuthState
	}

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("exchange oauth code: %w", err)
	}

	email, err := fetchEmail(ctx, p.Config.Client(ctx, token), p.UserInfoURL)
	if err != nil {
		return "", nil, err
	}
	return o.identity.signInVerified(ctx, email, provider)
}

func fetchEmail(ctx context.Context, client *http.Client, userInfoURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var info struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" || !info.EmailVerified {
		return "", errors.New("provider did not return a verified email")
	}
	return info.Email, nil
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
