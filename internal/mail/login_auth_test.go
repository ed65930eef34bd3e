package mail

import (
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginAuth_ChallengeResponses(t *testing.T) {
	t.Parallel()

	auth := &loginAuth{username: "user@office.com", password: "secret", host: "smtp.office365.com"}

	proto, initial, err := auth.Start(&smtp.ServerInfo{Name: "smtp.office365.com", TLS: true})
	require.NoError(t, err)
	require.Equal(t, "LOGIN", proto)
	require.Nil(t, initial)

	resp, err := auth.Next([]byte("Username:"), true)
	require.NoError(t, err)
	require.Equal(t, []byte("user@office.com"), resp)

	resp, err = auth.Next([]byte("Password:"), true)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), resp)

	_, err = auth.Next([]byte("Surprise:"), true)
	require.Error(t, err)

	resp, err = auth.Next(nil, false)
	require.NoError(t, err)
	require.Nil(t, resp)
}

func TestLoginAuth_RefusesWrongServer(t *testing.T) {
	t.Parallel()

	auth := &loginAuth{username: "u", password: "p", host: "smtp.office365.com"}

	_, _, err := auth.Start(&smtp.ServerInfo{Name: "evil.example.com", TLS: true})
	require.Error(t, err)
}

func TestLoginAuth_RefusesPlaintextSession(t *testing.T) {
	t.Parallel()

	auth := &loginAuth{username: "u", password: "p", host: "smtp.office365.com"}

	_, _, err := auth.Start(&smtp.ServerInfo{Name: "smtp.office365.com", TLS: false})
	require.Error(t, err)
}
