package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/identity"
	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/validation"
)

const minPasswordLength = 6

// authService implements AuthService against the external identity provider
// and the account registry in the document store.
type authService struct {
	identity IdentityProvider
	users    db.UserRepository
	log      *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(idp IdentityProvider, users db.UserRepository, logger *zap.Logger) AuthService {
	return &authService{identity: idp, users: users, log: logger}
}

// SignUp validates the credentials locally, checks the registry for a
// duplicate email, creates the account with the identity provider, and then
// records the account under users/{uid}. The password is never persisted;
// it stays with the identity provider.
func (s *authService) SignUp(ctx context.Context, email, password string) (string, error) {
	if !validation.IsValidEmail(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing account: %w", err)
	}
	if exists {
		return "", identity.ErrDuplicateAccount
	}

	uid, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		return "", err
	}

	user := models.User{ID: uid, Email: email, CreatedAt: time.Now().UTC()}
	if err := s.users.Create(ctx, user); err != nil {
		// The identity account exists but the registry record does not; a
		// later signup attempt reports DuplicateAccount from the provider.
		s.log.Error("account created but registry write failed",
			zap.String("uid", uid),
			zap.Error(err),
		)
		return "", err
	}

	s.log.Info("account created", zap.String("uid", uid))
	return uid, nil
}

// SignIn verifies the credentials with the identity provider.
func (s *authService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	session, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.log.Info("sign-in succeeded", zap.String("uid", session.UID))
	return session, nil
}
