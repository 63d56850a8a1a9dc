package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/whaletown/whaletown/internal/client/flows"
	"github.com/whaletown/whaletown/internal/common"
)

// Register walks the registration form: username, password, nickname, email
// with verification code, optional phone. The verification code is requested
// interactively; the resend cooldown of the underlying flow applies.
func (a *App) Register(ctx context.Context) error {
	flow := flows.NewRegisterFlow(a.auth)
	defer flow.Close()

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	nickname, err := getSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if flow.CanSendCode() {
		msg, err := flow.SendEmailCode(ctx, email)
		if err != nil {
			fmt.Println(flow.LastError())
			return nil
		}
		if msg == "" {
			msg = "Verification code sent."
		}
		fmt.Println(msg)
	}

	emailCode, err := getSimpleText(a.reader, "Enter the email verification code", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone (optional, press Enter to skip)", os.Stdout)
	if err != nil {
		return err
	}

	form := flows.RegisterForm{
		Username:  username,
		Password:  string(password),
		Nickname:  nickname,
		Email:     email,
		EmailCode: emailCode,
		Phone:     phone,
	}
	if err := flow.Submit(ctx, form); err != nil {
		fmt.Println(flow.LastError())
		return nil
	}

	a.session = flow.Session()
	fmt.Printf("Welcome, %s!\n", a.session.Username())
	return nil
}
