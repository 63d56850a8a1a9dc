package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/whaletown/whaletown/internal/client/flows"
	"github.com/whaletown/whaletown/internal/common"
)

// WhoAmI prints the stored profile of the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) || errors.Is(err, common.ErrNotFound) {
			fmt.Println("No profile stored, please log in again.")
			return nil
		}
		return err
	}

	fmt.Printf("Username: %s\nNickname: %s\n", user.Username, user.Nickname)
	if user.Email != "" {
		fmt.Printf("Email: %s\n", user.Email)
	}
	if user.Phone != "" {
		fmt.Printf("Phone: %s\n", user.Phone)
	}
	return nil
}

// ChangePassword prompts for the old and new passwords and performs the
// change through the change-password flow.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	flow := flows.NewChangePasswordFlow(a.auth)
	msg, err := flow.Submit(ctx, string(oldPassword), string(newPassword), string(confirm))
	if err != nil {
		fmt.Println(flow.LastError())
		return nil
	}
	if msg == "" {
		msg = "Password changed."
	}
	fmt.Println(msg)
	return nil
}

// Logout clears the local session and remembered credentials. It never
// contacts the network.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Println("Logged out.")
	return nil
}
