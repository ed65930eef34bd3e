package identity

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func apiError(code int, message string) error {
	return &googleapi.Error{Code: code, Message: message}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"email exists", apiError(http.StatusBadRequest, "EMAIL_EXISTS"), ErrDuplicateAccount},
		{"invalid login credentials", apiError(http.StatusBadRequest, "INVALID_LOGIN_CREDENTIALS"), ErrInvalidCredentials},
		{"invalid password", apiError(http.StatusBadRequest, "INVALID_PASSWORD"), ErrInvalidCredentials},
		{"email not found", apiError(http.StatusBadRequest, "EMAIL_NOT_FOUND"), ErrInvalidCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, classify(tc.err), tc.want)
		})
	}
}

func TestClassify_UnknownErrorPassesThrough(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	got := classify(cause)
	require.ErrorIs(t, got, cause)
	require.NotErrorIs(t, got, ErrDuplicateAccount)
	require.NotErrorIs(t, got, ErrInvalidCredentials)
}

func TestClassify_MessageInWrappedBody(t *testing.T) {
	t.Parallel()
	// Some transports surface the code only in the raw body, not in Message.
	err := errors.New(`googleapi: got HTTP response code 400 with body: {"error":{"message":"INVALID_LOGIN_CREDENTIALS"}}`)
	require.ErrorIs(t, classify(err), ErrInvalidCredentials)
}
