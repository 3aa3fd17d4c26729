// Package cli provides the interactive credkeeper command-line client.
//
// It wires configuration, the local credential store and the auth service
// into a small REPL:
//
//   - register / login / logout against the encrypted local store
//   - whoami shows the session, users shows how many identities exist
//
// The REPL is started via App.Root(ctx), which blocks until the user exits
// or input ends. Presentation of errors happens here; the services below
// only return typed errors.
package cli
