package cryptox

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	key1, err := DeriveKey([]byte("app-secret"))
	require.NoError(t, err)
	key2, err := DeriveKey([]byte("app-secret"))
	require.NoError(t, err)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	// snapshot: PBKDF2-HMAC-SHA256("app-secret", "salt", 100000, 32)
	expectedHex := "c68eca32c8ca1e1f3ea0a95617a7224f931e26b7043430c57f4d4bf6b8acd8d4"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSecrets(t *testing.T) {
	key1, err := DeriveKey([]byte("secret-1"))
	require.NoError(t, err)
	key2, err := DeriveKey([]byte("secret-2"))
	require.NoError(t, err)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different secrets, got same")
	}
}

func TestDeriveKey_EmptySecret(t *testing.T) {
	_, err := DeriveKey(nil)
	require.ErrorIs(t, err, common.ErrKeyDerivation)

	_, err = DeriveKeyArgon2([]byte{})
	require.ErrorIs(t, err, common.ErrKeyDerivation)
}

func TestDeriveKeyArgon2_DeterministicAndDistinct(t *testing.T) {
	a1, err := DeriveKeyArgon2([]byte("app-secret"))
	require.NoError(t, err)
	a2, err := DeriveKeyArgon2([]byte("app-secret"))
	require.NoError(t, err)
	p, err := DeriveKey([]byte("app-secret"))
	require.NoError(t, err)

	assert.Len(t, a1, KeySize)
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, p, a1)
}

func TestKeyDeriver(t *testing.T) {
	for _, name := range []string{"", KDFPBKDF2, KDFArgon2id} {
		fn, err := KeyDeriver(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}

	_, err := KeyDeriver("scrypt")
	require.ErrorIs(t, err, common.ErrKeyDerivation)
}

func TestHashIdentity(t *testing.T) {
	assert.Equal(t, "2bd806c97f0e00af1a1fc3328fa763a9269723c8db8fac4f93af71db186d6e90", HashIdentity("alice"))
	assert.Equal(t, HashIdentity("alice"), HashIdentity("alice"))
	assert.NotEqual(t, HashIdentity("alice"), HashIdentity("Alice"))
	assert.Len(t, HashIdentity(""), 64)
}

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := DeriveKey([]byte("app-secret"))
	require.NoError(t, err)
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)
	plaintext := []byte(`{"username":"alice","password":"P@ssw0rd1"}`)

	blob, err := Encrypt(key, plaintext)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	require.Len(t, raw, NonceSize+len(plaintext)+TagSize)

	got, err := Decrypt(key, blob)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestEncrypt_FreshNonceEveryCall(t *testing.T) {
	key := testKey(t)

	b1, err := Encrypt(key, []byte("same"))
	require.NoError(t, err)
	b2, err := Encrypt(key, []byte("same"))
	require.NoError(t, err)

	r1, _ := base64.StdEncoding.DecodeString(b1)
	r2, _ := base64.StdEncoding.DecodeString(b2)
	assert.NotEqual(t, r1[:NonceSize], r2[:NonceSize])
	assert.NotEqual(t, b1, b2)
}

func TestEncrypt_InvalidKey(t *testing.T) {
	_, err := Encrypt([]byte("short"), []byte("x"))
	require.Error(t, err)
}

func TestDecrypt_TamperedByteFails(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt(key, []byte(`{"username":"alice","password":"P@ssw0rd1"}`))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01

		got, err := Decrypt(key, base64.StdEncoding.EncodeToString(tampered))
		require.ErrorIs(t, err, common.ErrAuthentication, "byte %d", i)
		require.Nil(t, got, "byte %d", i)
	}
}

func TestDecrypt_ForeignKeyFails(t *testing.T) {
	blob, err := Encrypt(testKey(t), []byte("payload"))
	require.NoError(t, err)

	other, err := DeriveKey([]byte("another-secret"))
	require.NoError(t, err)

	_, err = Decrypt(other, blob)
	require.ErrorIs(t, err, common.ErrAuthentication)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name string
		blob string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"empty", ""},
		{"shorter than nonce and tag", base64.StdEncoding.EncodeToString(make([]byte, NonceSize+TagSize-1))},
		{"nonce and tag only", base64.StdEncoding.EncodeToString(make([]byte, NonceSize+TagSize))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(key, tt.blob)
			require.ErrorIs(t, err, common.ErrAuthentication)
		})
	}
}

func TestDecrypt_InvalidKeyIsAuthenticationError(t *testing.T) {
	blob, err := Encrypt(testKey(t), []byte("payload"))
	require.NoError(t, err)

	_, err = Decrypt([]byte("short"), blob)
	require.ErrorIs(t, err, common.ErrAuthentication)
}

type record struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func TestEncryptRecord_RoundTrip(t *testing.T) {
	key := testKey(t)
	in := record{Username: "alice", Password: "P@ssw0rd1"}

	blob, err := EncryptRecord(key, in)
	require.NoError(t, err)

	plaintext, err := Decrypt(key, blob)
	require.NoError(t, err)
	require.JSONEq(t, `{"username":"alice","password":"P@ssw0rd1"}`, string(plaintext))

	var out record
	require.NoError(t, DecryptRecord(key, blob, &out))
	require.Equal(t, in, out)
}

func TestDecryptRecord_NonJSONPayload(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt(key, []byte("not json"))
	require.NoError(t, err)

	var out record
	require.ErrorIs(t, DecryptRecord(key, blob, &out), common.ErrAuthentication)
}

func TestEncryptRecord_MarshalError(t *testing.T) {
	_, err := EncryptRecord(testKey(t), make(chan int))
	require.Error(t, err)
}
