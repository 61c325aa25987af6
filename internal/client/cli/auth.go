package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/xshsama/learntrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// controller persists the credential record. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			log.Printf("Server unavailable, check your connection")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Logout tears the session down. Logging out while logged out succeeds.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", u.Username)
	if u.Nickname != "" {
		printlnFn("Nickname:", u.Nickname)
	}
	return nil
}
