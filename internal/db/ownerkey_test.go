package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeOwnerKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "chris_at_gmail_dot_com", SanitizeOwnerKey("chris@gmail.com"))
	require.Equal(t, "a_dot_b_at_c_dot_co_dot_uk", SanitizeOwnerKey("a.b@c.co.uk"))
	require.Equal(t, "plain", SanitizeOwnerKey("plain"))
}

func TestSanitizeOwnerKey_IdempotentOnOwnOutput(t *testing.T) {
	t.Parallel()

	// The sanitized form contains no '@' or '.', so re-sanitizing is a no-op.
	for _, email := range []string{"chris@gmail.com", "john.doe@example.org", "x@y.z"} {
		once := SanitizeOwnerKey(email)
		require.Equal(t, once, SanitizeOwnerKey(once))
	}
}
