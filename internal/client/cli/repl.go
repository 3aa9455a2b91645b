package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	Select(ctx context.Context, args []string) error
	Upload(ctx context.Context) error
	Send(ctx context.Context, args []string) error
	Copy(ctx context.Context) error
	Reset(ctx context.Context) error
	Status(ctx context.Context) error
	Code(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Health(ctx context.Context) error
}

const helpText = `Upload:   select <path>, upload, send <path>, copy, reset, status
Lookup:   code <code>, preview [code], download [code]
Other:    health, help, exit`

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Every error a command returns is printed and the loop
// goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("filedrop (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
		case "select":
			err = a.Select(ctx, args)
		case "upload":
			err = a.Upload(ctx)
		case "send":
			err = a.Send(ctx, args)
		case "copy":
			err = a.Copy(ctx)
		case "reset":
			err = a.Reset(ctx)
		case "status":
			err = a.Status(ctx)
		case "code":
			err = a.Code(ctx, args)
		case "preview":
			err = a.Preview(ctx, args)
		case "download":
			err = a.Download(ctx, args)
		case "health":
			err = a.Health(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
