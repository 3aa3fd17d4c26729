// Package services contains application services for the credkeeper client.
// This file defines the auth session controller: registration and login
// against the local encrypted credential store, and the in-memory session.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dmitrijs2005/credkeeper/internal/client/models"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// AuthService defines authentication operations for the UI layer.
//
// Contract:
//   - Register: store a new encrypted credential and log the user in.
//   - Login: verify a credential against the stored entry and log the user in.
//   - Logout: drop the session; never fails.
//   - CurrentUser: the logged-in credential, or nil.
//   - IsBusy: true while a Register or Login call is in flight.
//
// Failures are returned as *common.AuthError; use common.CodeOf or errors.Is
// with the common sentinels to tell them apart. If ctx ends while Register or
// Login waits for another operation, the context error is returned instead.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context)
	CurrentUser() *models.Credential
	IsBusy() bool
}

// authService is the concrete AuthService. Register, Login and Logout are
// serialized by ops, a weight-1 semaphore, so session writes never interleave.
type authService struct {
	repo credentials.Repository
	key  []byte
	log  logging.Logger

	ops  *semaphore.Weighted
	busy atomic.Int32

	mu      sync.RWMutex
	session *models.Credential
}

// NewAuthService derives the record key from secret with the named KDF
// ("pbkdf2" when empty) and returns a logged-out AuthService. A derivation
// failure is returned as a CodeKeyDerivation AuthError and is fatal.
func NewAuthService(repo credentials.Repository, secret []byte, kdf string, log logging.Logger) (AuthService, error) {
	derive, err := cryptox.KeyDeriver(kdf)
	if err != nil {
		return nil, common.NewAuthError(common.CodeKeyDerivation, err)
	}
	key, err := derive(secret)
	if err != nil {
		return nil, common.NewAuthError(common.CodeKeyDerivation, err)
	}
	return &authService{repo: repo, key: key, log: log, ops: semaphore.NewWeighted(1)}, nil
}

// begin marks an operation as running, waits for its turn and returns the
// matching cleanup.
func (a *authService) begin(ctx context.Context) (func(), error) {
	a.busy.Add(1)
	if err := a.ops.Acquire(ctx, 1); err != nil {
		a.busy.Add(-1)
		return nil, fmt.Errorf("waiting for auth operation: %w", err)
	}
	return func() {
		a.ops.Release(1)
		a.busy.Add(-1)
	}, nil
}

func (a *authService) opLogger(op string) logging.Logger {
	return a.log.With("op", op, "op_id", uuid.NewString())
}

// Register creates the stored entry for username and logs the user in.
//
// Steps: reject empty or non-UTF-8 fields, compute the identity hash, fail with
// CodeUserExists if an entry is present, seal {username,password} under the
// record key, write it, and set the session.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	done, err := a.begin(ctx)
	if err != nil {
		return err
	}
	defer done()
	log := a.opLogger("register")

	if !usableCredentials(username, password) {
		log.Info(ctx, "rejected empty or non-UTF-8 credentials")
		return common.NewAuthError(common.CodeInvalidCredentials, nil)
	}

	hash := cryptox.HashIdentity(username)
	log = log.With("identity", hash[:8])

	exists, err := a.repo.Exists(ctx, hash)
	if err != nil {
		log.Error(ctx, "existence check failed", "error", err)
		return common.NewAuthError(common.CodeStorage, err)
	}
	if exists {
		log.Info(ctx, "identity already registered")
		return common.NewAuthError(common.CodeUserExists, nil)
	}

	record := &models.Credential{Username: username, Password: string(password)}
	blob, err := cryptox.EncryptRecord(a.key, record)
	if err != nil {
		// Nothing was written; reported like any other failed write.
		log.Error(ctx, "sealing credential failed", "error", err)
		return common.NewAuthError(common.CodeStorage, err)
	}

	if err := a.repo.Put(ctx, hash, blob); err != nil {
		if errors.Is(err, common.ErrConflict) {
			log.Info(ctx, "identity registered concurrently")
			return common.NewAuthError(common.CodeUserExists, err)
		}
		log.Error(ctx, "storing credential failed", "error", err)
		return common.NewAuthError(common.CodeStorage, err)
	}

	a.setSession(record)
	log.Info(ctx, "registered")
	return nil
}

// Login loads the stored entry for username, opens it and compares the
// stored password with password byte for byte. On any failure the session
// is left as it was.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	done, err := a.begin(ctx)
	if err != nil {
		return err
	}
	defer done()
	log := a.opLogger("login")

	if !usableCredentials(username, password) {
		log.Info(ctx, "rejected empty or non-UTF-8 credentials")
		return common.NewAuthError(common.CodeInvalidCredentials, nil)
	}

	hash := cryptox.HashIdentity(username)
	log = log.With("identity", hash[:8])

	blob, err := a.repo.Get(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			log.Info(ctx, "identity not registered")
			return common.NewAuthError(common.CodeUserNotFound, nil)
		}
		log.Error(ctx, "loading credential failed", "error", err)
		return common.NewAuthError(common.CodeStorage, err)
	}

	var record models.Credential
	if err := cryptox.DecryptRecord(a.key, blob, &record); err != nil {
		log.Warn(ctx, "stored credential could not be opened", "error", err)
		return common.NewAuthError(common.CodeDecryption, err)
	}

	if subtle.ConstantTimeCompare([]byte(record.Password), password) != 1 {
		log.Info(ctx, "password mismatch")
		return common.NewAuthError(common.CodeWrongPassword, nil)
	}

	a.setSession(&record)
	log.Info(ctx, "logged in")
	return nil
}

// Logout clears the session unconditionally. It waits for a running
// Register or Login even if ctx is canceled.
func (a *authService) Logout(ctx context.Context) {
	// Acquire cannot fail on a context without cancellation.
	_ = a.ops.Acquire(context.WithoutCancel(ctx), 1)
	defer a.ops.Release(1)

	a.setSession(nil)
	a.log.Info(ctx, "logged out")
}

// CurrentUser returns a copy of the logged-in credential, or nil.
func (a *authService) CurrentUser() *models.Credential {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.Clone()
}

func (a *authService) IsBusy() bool {
	return a.busy.Load() > 0
}

// usableCredentials reports whether both fields are non-empty valid UTF-8.
// The sealed record is JSON, which would replace invalid bytes and make the
// stored password differ from the one typed.
func usableCredentials(username string, password []byte) bool {
	return username != "" && len(password) > 0 &&
		utf8.ValidString(username) && utf8.Valid(password)
}

func (a *authService) setSession(c *models.Credential) {
	a.mu.Lock()
	a.session = c
	a.mu.Unlock()
}
