// Package credentials implements the credential repository on top of a
// storage.Store.
//
// Entries are written under the key "user:<identity hash>", where the
// identity hash is the hex SHA-256 of the username, and the value is the
// base64 AEAD blob produced by cryptox.EncryptRecord:
//
//	user:2bd806c9...6e90 -> "q2x0...Zg=="
//
// Errors
//
//   - Put returns common.ErrConflict if an entry already exists for the hash.
//   - Get returns common.ErrorNotFound if no entry exists.
//   - Store failures are wrapped with context and returned as-is.
package credentials
