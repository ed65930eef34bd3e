// Package validation holds the pure input checks used across the application:
// syntactic email validation and tabular column-presence checks performed
// before bulk imports. Nothing here touches the network or the store.
package validation

import (
	"regexp"

	"github.com/example/cmail/internal/tabular"
)

// emailPattern accepts local-part "@" domain, where the domain must contain at
// least one dot. Whitespace is rejected by the character classes. This is a
// syntactic check only; it says nothing about deliverability.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// IsValidEmail reports whether s looks like a well-formed email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// HasRequiredColumn reports whether the table exposes the named column.
// Column names are compared case-sensitively, matching the import contracts
// ("Name"/"Email" for contacts, lowercase "email" for recipients).
func HasRequiredColumn(t *tabular.Table, column string) bool {
	if t == nil {
		return false
	}
	return t.HasColumn(column)
}
