package db

import "strings"

var ownerKeyReplacer = strings.NewReplacer("@", "_at_", ".", "_dot_")

// SanitizeOwnerKey derives the database shard key for an owner from their
// email address: "@" becomes "_at_" and "." becomes "_dot_". The scheme must
// be reproduced exactly for compatibility with previously stored data.
//
// This is a plain string substitution, not a collision-resistant encoding:
// an address that already contains the literal "_at_" or "_dot_" could
// collide with another address's encoded form. It is kept for compatibility.
// Applying it to an already-sanitized key changes nothing, since the output
// contains neither "@" nor ".".
func SanitizeOwnerKey(email string) string {
	return ownerKeyReplacer.Replace(email)
}
