package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	CodeLogin(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
}

func (a *App) getStatus() string {
	if a.session != nil {
		return fmt.Sprintf("(%s)", a.session.Username())
	}
	return ""
}

// runREPL starts a simple read-eval-print loop for the Whaletown client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: help, login, codelogin, reset, register, exit.
// Commands while logged in: help, whoami, changepw, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to Whaletown CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("wt %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, changepw, logout, exit")
			} else {
				printlnFn("Available commands: login, codelogin, reset, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "codelogin":
			_ = a.CodeLogin(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "register":
			_ = a.Register(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "changepw":
			_ = a.ChangePassword(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
