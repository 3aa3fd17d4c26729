// Package models defines client-side data models used by credkeeper.
package models

// Credential is the plaintext record sealed into a stored entry. It only
// lives in memory: during a register/login call and in the active session.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Clone returns a copy of c, or nil if c is nil.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
