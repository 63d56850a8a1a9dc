package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/whaletown/whaletown/internal/client/flows"
	"github.com/whaletown/whaletown/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an identifier and password and performs a password
// login. On success it optionally remembers the credentials for the next
// start. Flow errors are printed, not returned: the user simply retries.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username, email or phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	flow := flows.NewLoginFlow(a.auth)
	if err := flow.SubmitPassword(ctx, identifier, string(password)); err != nil {
		fmt.Println(flow.LastError())
		return nil
	}

	a.session = flow.Session()
	fmt.Printf("Welcome, %s!\n", a.session.Username())

	if GetYesNo(a.reader, "Remember these credentials and log in automatically next time?", os.Stdout) {
		if err := a.auth.RememberCredentials(ctx, identifier, string(password), true); err != nil {
			a.log.Warn(ctx, "could not remember credentials", "error", err)
		}
	}
	return nil
}

// CodeLogin is the one-time-code login entry. The path is not available yet;
// the flow's informational message is shown as-is.
func (a *App) CodeLogin(ctx context.Context) error {
	flow := flows.NewLoginFlow(a.auth)
	flow.SwitchMode(flows.ModeCode)

	if err := flow.SubmitCode(ctx, "", ""); err != nil {
		fmt.Println(flow.LastError())
	}
	return nil
}

// ResetPassword walks the two-step password reset: request a code for an
// identifier, then submit the code together with the new password.
func (a *App) ResetPassword(ctx context.Context) error {
	flow := flows.NewLoginFlow(a.auth)
	flow.SwitchMode(flows.ModeReset)

	identifier, err := getSimpleText(a.reader, "Enter username, email or phone", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := flow.RequestResetCode(ctx, identifier)
	if err != nil {
		fmt.Println(flow.LastError())
		return nil
	}
	if msg != "" {
		fmt.Println(msg)
	}

	code, err := getSimpleText(a.reader, "Enter the verification code", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	msg, err = flow.SubmitReset(ctx, identifier, code, string(newPassword))
	if err != nil {
		fmt.Println(flow.LastError())
		return nil
	}
	if msg == "" {
		msg = "Password updated, you can log in now."
	}
	fmt.Println(msg)
	return nil
}
