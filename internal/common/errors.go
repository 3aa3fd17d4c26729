// Package common defines shared sentinel errors and small helpers used across
// credkeeper layers. Callers should use errors.Is to match the sentinels and
// CodeOf to obtain the stable discriminant of an auth failure.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("entry already exists")

	// Crypto errors.
	ErrKeyDerivation  = errors.New("key derivation failed")
	ErrAuthentication = errors.New("message authentication failed")

	// Auth errors surfaced to the user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("username not found")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrDecryption         = errors.New("could not read credential data")
	ErrStorage            = errors.New("credential storage unavailable")
)

// Code is the stable discriminant of an AuthError.
type Code string

const (
	CodeKeyDerivation      Code = "key_derivation"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeUserExists         Code = "user_exists"
	CodeUserNotFound       Code = "user_not_found"
	CodeWrongPassword      Code = "wrong_password"
	CodeDecryption         Code = "decryption"
	CodeStorage            Code = "storage"
)

var sentinels = map[Code]error{
	CodeKeyDerivation:      ErrKeyDerivation,
	CodeInvalidCredentials: ErrInvalidCredentials,
	CodeUserExists:         ErrUserExists,
	CodeUserNotFound:       ErrUserNotFound,
	CodeWrongPassword:      ErrWrongPassword,
	CodeDecryption:         ErrDecryption,
	CodeStorage:            ErrStorage,
}

// AuthError is returned by the auth service. Code identifies the failure,
// Cause optionally holds the lower-level error that triggered it.
type AuthError struct {
	Code  Code
	Cause error
}

// NewAuthError builds an AuthError for code wrapping cause (which may be nil).
func NewAuthError(code Code, cause error) *AuthError {
	return &AuthError{Code: code, Cause: cause}
}

func (e *AuthError) Error() string {
	msg := e.sentinel().Error()
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Message returns the user-facing text without low-level details.
func (e *AuthError) Message() string {
	return e.sentinel().Error()
}

// Unwrap exposes both the sentinel for the code and the cause.
func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Cause}
}

func (e *AuthError) sentinel() error {
	if s, ok := sentinels[e.Code]; ok {
		return s
	}
	return errors.New(string(e.Code))
}

// CodeOf returns the Code carried by err, or "" if err is not an AuthError.
func CodeOf(err error) Code {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
