// Package cli provides the interactive Whaletown command-line client.
//
// It wires configuration, the local session database, the identity API and
// an interactive REPL. Typical flow: restore a persisted session (or log in
// with remembered credentials), then execute user commands.
//
// Key features:
//   - Login with password, password reset, registration with email
//     verification
//   - Remembered credentials and automatic login on startup
//   - Change password, whoami, local logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
