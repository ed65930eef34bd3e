package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/cmail/internal/tabular"
)

func TestIsValidEmail_Accepts(t *testing.T) {
	t.Parallel()

	for _, email := range []string{
		"a@b.com",
		"john.doe@example.com",
		"user+tag@sub.example.co",
		"under_score@domain.org",
	} {
		require.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}
}

func TestIsValidEmail_Rejects(t *testing.T) {
	t.Parallel()

	for _, email := range []string{
		"a@b",        // domain without a dot
		"a b@c.com",  // embedded whitespace
		"a@b .com",   // whitespace in domain
		"",           // empty
		"no-at.com",  // missing @
		"@no.local",  // missing local part
		"bad@@x.com", // double @
	} {
		require.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestHasRequiredColumn(t *testing.T) {
	t.Parallel()

	table, err := tabular.ParseCSV(strings.NewReader("Name,Email\nJohn,john@x.com\n"))
	require.NoError(t, err)

	require.True(t, HasRequiredColumn(table, "Name"))
	require.True(t, HasRequiredColumn(table, "Email"))
	require.False(t, HasRequiredColumn(table, "email"), "column names are case-sensitive")
	require.False(t, HasRequiredColumn(table, "Phone"))
	require.False(t, HasRequiredColumn(nil, "Name"))
}
