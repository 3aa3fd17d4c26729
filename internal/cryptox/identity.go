package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIdentity returns the lowercase hex SHA-256 digest of username.
// It is a lookup key, not a password hash: no salt is applied so the
// value can be recomputed from the username alone.
func HashIdentity(username string) string {
	sum := sha256.Sum256([]byte(username))
	return hex.EncodeToString(sum[:])
}
