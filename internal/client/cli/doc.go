// Package cli provides the interactive filedrop command-line client.
//
// App wires configuration, the HTTP API client, the clipboard, the save-as
// sink and the workflow services, then runs a REPL. The REPL plays the
// presentation layer: it subscribes to upload events (state changes,
// progress, success, copy feedback) and prints every error a command
// returns without leaving the loop.
//
// The REPL is started via App.Run(ctx, in), which blocks until the user
// exits. See runREPL for the command list.
package cli
