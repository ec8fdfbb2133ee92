package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/py2dev/repeatermap/internal/common"
	"github.com/py2dev/repeatermap/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new operator's details and creates the account.
// Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	indicative, err := getSimpleText(a.reader, "Enter callsign (indicative)", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	ok, err := a.sessions.Register(ctx, services.RegistrationData{
		Indicative:      indicative,
		Name:            name,
		Email:           email,
		Phone:           phone,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	if !ok {
		fmt.Println("Registration failed: callsign or email already taken, or passwords don't match.")
		return nil
	}

	fmt.Println("Registered! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the local
// user directory.
func (a *App) Login(ctx context.Context) error {
	indicative, err := getSimpleText(a.reader, "Enter callsign (indicative)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.sessions.Login(ctx, indicative, string(password))
	if err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	if !ok {
		fmt.Println("Invalid callsign or password.")
		return nil
	}

	fmt.Printf("Welcome, %s!\n", indicative)
	return nil
}

// Logout closes the active session. A no-op when anonymous.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Println("Error:", err.Error())
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
