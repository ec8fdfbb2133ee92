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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddRepeater(ctx context.Context) error
	EditRepeater(ctx context.Context) error
	DeleteRepeater(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	MapView(ctx context.Context) error
	ShowLogs(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the repeatermap CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// All commands work without a session; the services decide how much of an
// operation applies to an anonymous user. Errors from handlers are ignored
// here; handlers report their own errors, keeping the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("repeatermap [%s]> ", statusFn()))
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
				printlnFn("Available commands: list, search, map, add, edit, delete, logs, logout, exit")
			} else {
				printlnFn("Available commands: register, login, list, search, map, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddRepeater(ctx)

		case "edit":
			_ = a.EditRepeater(ctx)

		case "delete":
			_ = a.DeleteRepeater(ctx)

		case "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx)

		case "map":
			_ = a.MapView(ctx)

		case "logs":
			_ = a.ShowLogs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
