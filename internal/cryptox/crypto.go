// Package cryptox holds the cryptographic primitives of credkeeper: key
// derivation from the application secret, AES-256-GCM sealing of credential
// records and the identity hash used as a storage index.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext with AES-GCM under key.
//
// A new random 12-byte nonce is generated for each call and prepended to the
// ciphertext; the result is returned as standard base64 text:
//
//	base64(nonce || ciphertext || tag)
//
// The key must be a valid AES key (32 bytes for AES-256).
func Encrypt(key, plaintext []byte) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := common.GenerateRandByteArray(NonceSize)

	out := make([]byte, 0, NonceSize+len(plaintext)+TagSize)
	out = append(out, nonce...)
	out = aesgcm.Seal(out, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Malformed base64, truncated input, a foreign key
// or any modification of the blob yield common.ErrAuthentication; no partial
// plaintext is ever returned.
func Decrypt(key []byte, blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed encoding", common.ErrAuthentication)
	}
	if len(data) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: truncated input", common.ErrAuthentication)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key", common.ErrAuthentication)
	}

	plaintext, err := aesgcm.Open(nil, data[:NonceSize], data[NonceSize:], nil)
	if err != nil {
		return nil, common.ErrAuthentication
	}
	return plaintext, nil
}

// EncryptRecord serializes v to JSON and seals it with Encrypt.
//
// Example:
//
//	key, _ := DeriveKey([]byte("app-secret"))
//	blob, err := EncryptRecord(key, models.Credential{Username: "alice", Password: "P@ssw0rd1"})
//	if err != nil {
//	    log.Fatal(err)
//	}
func EncryptRecord(key []byte, v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(plaintext)

	return Encrypt(key, plaintext)
}

// DecryptRecord opens blob with Decrypt and unmarshals the JSON payload into v.
// A payload that authenticates but is not valid JSON is reported as
// common.ErrAuthentication as well.
func DecryptRecord(key []byte, blob string, v any) error {
	plaintext, err := Decrypt(key, blob)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: malformed payload", common.ErrAuthentication)
	}
	return nil
}
