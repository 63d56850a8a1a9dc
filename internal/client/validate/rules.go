// Package validate holds the client-side pre-checks applied before a network
// call. They are advisory only: the service remains the authority, and its
// rejection message is surfaced verbatim if a locally valid field is
// nonetheless rejected server-side.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

// Rule failures are plain strings rather than errors: they are user-facing
// messages for the current screen, not conditions to branch on. An empty
// string means the field passed.

func Username(s string) string {
	if strings.TrimSpace(s) == "" {
		return "please enter a username"
	}
	if len(s) < 3 {
		return "username must be at least 3 characters"
	}
	return ""
}

func Password(s string) string {
	if s == "" {
		return "please enter a password"
	}
	if len(s) < 6 {
		return "password must be at least 6 characters"
	}
	return ""
}

func Nickname(s string) string {
	if strings.TrimSpace(s) == "" {
		return "please enter a nickname"
	}
	return ""
}

func Email(s string) string {
	if strings.TrimSpace(s) == "" {
		return "please enter an email address"
	}
	if !emailRe.MatchString(s) {
		return "email format is invalid"
	}
	return ""
}

// Phone checks the 11-digit mobile format. It is only meaningful for
// non-empty input; callers skip it when the field was left blank.
func Phone(s string) string {
	if !phoneRe.MatchString(s) {
		return "phone number format is invalid"
	}
	return ""
}

func EmailCode(s string) string {
	if strings.TrimSpace(s) == "" {
		return "please enter the email verification code"
	}
	return ""
}
