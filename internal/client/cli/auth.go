package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/client/validation"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// describe turns an error into the text shown to the user.
func describe(err error) string {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	var ae *common.AuthError
	if errors.As(err, &ae) {
		if ae.Code == common.CodeStorage {
			return ae.Message() + " (see log for details)"
		}
		return ae.Message()
	}
	return err.Error()
}

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for a username and password, checks them against the
// form rules and creates the account. On success the user is logged in.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validation.ValidateUsername(userName); err != nil {
		fmt.Fprintln(a.out, describe(err))
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		fmt.Fprintln(a.out, describe(err))
		return err
	}

	if err := a.authService.Register(ctx, userName, password); err != nil {
		fmt.Fprintln(a.out, describe(err))
		return err
	}

	fmt.Fprintf(a.out, "Registered, logged in as %s\n", userName)
	return nil
}

// Login prompts for credentials and authenticates against the local store.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		fmt.Fprintln(a.out, describe(err))
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the logged-in username.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintln(a.out, u.Username)
	return nil
}

// Users prints the number of registered identities.
func (a *App) Users(ctx context.Context) error {
	n, err := a.repo.Count(ctx)
	if err != nil {
		a.log.Error(ctx, "counting users failed", "error", err)
		err = common.NewAuthError(common.CodeStorage, err)
		fmt.Fprintln(a.out, describe(err))
		return err
	}
	fmt.Fprintf(a.out, "%d registered user(s)\n", n)
	return nil
}
