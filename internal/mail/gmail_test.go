package mail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyGmailError_InvalidAddress(t *testing.T) {
	t.Parallel()

	err := classifyGmailError(&googleapi.Error{Code: 400, Message: "Address not found"})
	require.ErrorIs(t, err, ErrInvalidRecipient)

	err = classifyGmailError(&googleapi.Error{Code: 400, Message: "Domain name not found"})
	require.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestClassifyGmailError_BadRequest(t *testing.T) {
	t.Parallel()

	err := classifyGmailError(&googleapi.Error{Code: 400, Message: "Invalid To header"})
	require.ErrorIs(t, err, ErrInvalidRecipient)
	require.Contains(t, err.Error(), "bad request")
}

func TestClassifyGmailError_NotFound(t *testing.T) {
	t.Parallel()

	err := classifyGmailError(&googleapi.Error{Code: 404, Message: "Requested entity was not found."})
	require.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestClassifyGmailError_Unclassified(t *testing.T) {
	t.Parallel()

	err := classifyGmailError(&googleapi.Error{Code: 500, Message: "backend exploded"})
	require.NotErrorIs(t, err, ErrInvalidRecipient)
	require.NotErrorIs(t, err, ErrRecipientNotFound)
	require.Contains(t, err.Error(), "backend exploded")
	require.Contains(t, err.Error(), "500")
}

func TestClassifyGmailError_TransportFailure(t *testing.T) {
	t.Parallel()

	err := classifyGmailError(errors.New("dial tcp: connection refused"))
	require.ErrorIs(t, err, ErrConnection)
}
