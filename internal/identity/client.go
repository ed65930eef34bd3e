// Package identity wraps the Google Identity Toolkit relying-party API for
// password-based signup and sign-in. The Admin SDK cannot verify a password;
// that check belongs to the Identity Toolkit endpoint keyed by the project's
// web API key, which is exactly the surface the application has always
// authenticated against.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/example/cmail/internal/models"
)

var (
	// ErrDuplicateAccount indicates the email is already registered.
	ErrDuplicateAccount = errors.New("account already exists for this email")
	// ErrInvalidCredentials indicates the email/password pair was rejected.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Client talks to the Identity Toolkit relying-party endpoints.
type Client struct {
	svc *identitytoolkit.RelyingpartyService
}

// NewClient creates an identity client authenticated by the Firebase web API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("identity: API key is required")
	}
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity: failed to create service: %w", err)
	}
	return &Client{svc: svc.Relyingparty}, nil
}

// SignUp creates a new account and returns the provider-issued uid.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	resp, err := c.svc.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return "", classify(err)
	}
	return resp.LocalId, nil
}

// SignIn verifies the credentials and returns a session carrying the ID
// token used to authenticate subsequent requests. The username is the local
// part of the email address.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := c.svc.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return &models.Session{
		UID:          resp.LocalId,
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// classify maps Identity Toolkit error codes onto the package sentinels.
// The endpoint reports credential problems through a handful of message
// strings; all of them collapse to ErrInvalidCredentials so callers never
// learn whether the email or the password was wrong.
func classify(err error) error {
	var apiErr *googleapi.Error
	msg := err.Error()
	if errors.As(err, &apiErr) {
		msg = apiErr.Message + " " + msg
	}

	switch {
	case strings.Contains(msg, "EMAIL_EXISTS"):
		return fmt.Errorf("%w: %v", ErrDuplicateAccount, err)
	case strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(msg, "INVALID_PASSWORD"),
		strings.Contains(msg, "EMAIL_NOT_FOUND"):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	default:
		return fmt.Errorf("identity provider request failed: %w", err)
	}
}
