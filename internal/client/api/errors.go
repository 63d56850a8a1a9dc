package api

import "errors"

// NetworkFailureMessage is the generic message shown for transport failures
// and malformed responses. The real cause goes to the log, not the user.
const NetworkFailureMessage = "network error, please try again later"

// Kind classifies an operation failure. Every failure an operation can
// return is one of these; callers switch on it exhaustively.
type Kind int

const (
	// KindValidation is a client-side rule violation that never reached
	// the network.
	KindValidation Kind = iota

	// KindBusiness is a service rejection of a well-formed request
	// (wrong password, duplicate username, expired code, ...).
	KindBusiness

	// KindNetwork is a transport failure or malformed response.
	KindNetwork

	// KindNotAvailable marks a deliberately unimplemented path.
	KindNotAvailable
)

// Error is the failure half of every operation result: a user-facing message,
// an optional machine code from the service, and a kind for flow decisions.
type Error struct {
	Kind    Kind
	Message string
	Code    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return e.Message + " (" + e.Code + ")"
	}
	return e.Message
}

// Validation builds a client-side validation failure.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Business builds a service-rejection failure carrying the service's message
// verbatim and its optional error code.
func Business(message, code string) *Error {
	return &Error{Kind: KindBusiness, Message: message, Code: code}
}

// Network builds the normalized transport failure.
func Network() *Error {
	return &Error{Kind: KindNetwork, Message: NetworkFailureMessage}
}

// NotAvailable builds the informational "not implemented yet" result.
func NotAvailable(message string) *Error {
	return &Error{Kind: KindNotAvailable, Message: message}
}

// Message extracts the user-facing message from any operation error.
// Errors that are not *Error (store failures and the like) collapse to the
// generic network-failure message so that internals never leak to the UI.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return NetworkFailureMessage
}
