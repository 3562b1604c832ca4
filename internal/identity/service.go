package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"recipefinder/internal/models"
	"recipefinder/internal/repository"
	"recipefinder/internal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers unknown users, wrong passwords, unconfirmed
	// accounts and credentials that do not meet the sign-up rules.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCode        = errors.New("invalid or expired confirmation code")
)

const confirmationTTL = 10 * time.Minute

// SessionProvider resolves the session of a request. A missing or invalid
// session is (nil, nil); an error means the lookup itself failed.
type SessionProvider interface {
	CurrentSession(r *http.Request) (*Session, error)
}

// RevocationStore remembers signed-out tokens.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Mailer interface {
	Send(recipient, subject, message string) error
}

type Options struct {
	CookieName string
	// ConfirmURL is the endpoint the confirmation email links to.
	ConfirmURL string
}

type Service struct {
	users         repository.UserRepository
	verifications repository.VerificationRepository
	tokens        *TokenManager
	revoked       RevocationStore
	mailer        Mailer
	validate      *validator.Validate
	log           *zap.Logger
	opts          Options
}

func NewService(
	users repository.UserRepository,
	verifications repository.VerificationRepository,
	tokens *TokenManager,
	revoked RevocationStore,
	mailer Mailer,
	log *zap.Logger,
	opts Options,
) *Service {
	return &Service{
		users:         users,
		verifications: verifications,
		tokens:        tokens,
		revoked:       revoked,
		mailer:        mailer,
		validate:      validator.New(),
		log:           log,
		opts:          opts,
	}
}

func (s *Service) CookieName() string {
	return s.opts.CookieName
}

// SignInWithPassword checks the credentials and issues a session token.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (string, *Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("look up user: %w", err)
	}
	if !checkPassword(user.Password, password) || !user.Verified {
		return "", nil, ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Email)
}

// SignUp creates an unconfirmed account and emails a confirmation link.
// Signing up again with an unconfirmed email re-sends the link and keeps
// the password chosen first.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if s.validate.Var(email, "email") != nil || len(password) < minPasswordLength {
		return ErrInvalidCredentials
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil && existing.Verified:
		return ErrUserExists
	case err == nil:
		// Pending account: only the link is sent again.
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := hashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := s.users.CreateUser(ctx, &models.User{Email: email, Password: hash, Provider: "email"}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
	default:
		return fmt.Errorf("look up user: %w", err)
	}

	return s.sendConfirmation(ctx, email)
}

func (s *Service) sendConfirmation(ctx context.Context, email string) error {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}

	if err := s.verifications.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("clear verification: %w", err)
	}
	verification := &models.Verification{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(confirmationTTL),
	}
	if err := s.verifications.CreateVerification(ctx, verification); err != nil {
		return fmt.Errorf("create verification: %w", err)
	}

	link := s.opts.ConfirmURL + "?" + url.Values{"email": {email}, "code": {code}}.Encode()
	go func() {
		if err := s.mailer.Send(email, "Confirm your account", "Confirm your account by following this link: "+link); err != nil {
			s.log.Error("failed to send confirmation email", zap.String("email", email), zap.Error(err))
		}
	}()
	return nil
}

// ConfirmEmail marks the account as verified when code matches.
func (s *Service) ConfirmEmail(ctx context.Context, email, code string) error {
	_, err := s.verifications.FindByEmailAndCode(ctx, email, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("find verification: %w", err)
	}
	if err := s.users.SetUserVerified(ctx, email); err != nil {
		return fmt.Errorf("verify user: %w", err)
	}
	if err := s.verifications.DeleteByEmail(ctx, email); err != nil {
		s.log.Warn("failed to delete used verification", zap.String("email", email), zap.Error(err))
	}
	return nil
}

// SignOut revokes the session token for the rest of its lifetime.
func (s *Service) SignOut(ctx context.Context, session *Session) error {
	if session == nil {
		return nil
	}
	return s.revoked.Revoke(ctx, session.TokenID, time.Until(session.ExpiresAt))
}

func (s *Service) CurrentSession(r *http.Request) (*Session, error) {
	token := tokenFromRequest(r, s.opts.CookieName)
	if token == "" {
		return nil, nil
	}
	session, err := s.tokens.Parse(token)
	if err != nil {
		s.log.Debug("rejected session token", zap.Error(err))
		return nil, nil
	}
	revoked, err := s.revoked.IsRevoked(r.Context(), session.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, nil
	}
	return session, nil
}

// signInVerified finds or creates a confirmed account for an email proven
// by an OAuth provider and issues a session token.
func (s *Service) signInVerified(ctx context.Context, email, provider string) (string, *Session, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{Email: email, Provider: provider, Verified: true}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return "", nil, fmt.Errorf("create user: %w", err)
		}
	case err != nil:
		return "", nil, fmt.Errorf("look up user: %w", err)
	case !user.Verified:
		// The pending password was never proven by the owner of the email.
		if err := s.users.UpdatePassword(ctx, user.ID, ""); err != nil {
			return "", nil, fmt.Errorf("clear pending password: %w", err)
		}
		if err := s.users.SetUserVerified(ctx, email); err != nil {
			return "", nil, fmt.Errorf("verify user: %w", err)
		}
	}
	return s.tokens.Issue(user.ID, user.Email)
}
