package cryptox

import (
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AES-256 key length produced by every deriver.
	KeySize = 32

	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA256 work factor.
	PBKDF2Iterations = 100000

	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// kdfSalt is fixed so the key can be re-derived from the secret alone.
var kdfSalt = []byte("salt")

// KeyDeriverFunc turns an application secret into a symmetric key.
type KeyDeriverFunc func(secret []byte) ([]byte, error)

// DeriveKey derives a 256-bit AES key from secret with PBKDF2-HMAC-SHA256.
//
// The salt and iteration count are fixed, so identical secrets always yield
// identical keys. The secret is an application-level pass-phrase, not an
// end-user password.
//
// Returns common.ErrKeyDerivation if secret is empty.
func DeriveKey(secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", common.ErrKeyDerivation)
	}
	return pbkdf2.Key(secret, kdfSalt, PBKDF2Iterations, KeySize, sha256.New), nil
}

// DeriveKeyArgon2 is the Argon2id alternative to DeriveKey. Keys produced by
// the two functions are not interchangeable.
func DeriveKeyArgon2(secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", common.ErrKeyDerivation)
	}
	return argon2.IDKey(secret, kdfSalt, 1, 64*1024, 4, KeySize), nil
}

// KeyDeriver returns the deriver registered under name. An empty name
// selects PBKDF2.
func KeyDeriver(name string) (KeyDeriverFunc, error) {
	switch name {
	case "", KDFPBKDF2:
		return DeriveKey, nil
	case KDFArgon2id:
		return DeriveKeyArgon2, nil
	default:
		return nil, fmt.Errorf("%w: unknown kdf %q", common.ErrKeyDerivation, name)
	}
}
