package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs. printFn emits the prompt without a trailing newline.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	AddProduct(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	UpdateStock(ctx context.Context) error
	Delete(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Report(ctx context.Context) error
	Analyze(ctx context.Context) error
	Settings(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printFn(fmt.Sprintf("daraz %s> ", statusFn()))
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
		case "l", "list", "add", "show", "edit", "stock", "delete", "dashboard", "report", "analyze", "settings", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, show, edit, stock, delete, dashboard, report, analyze, settings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.AddProduct(ctx)

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "stock":
			_ = a.UpdateStock(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "report":
			_ = a.Report(ctx)

		case "analyze":
			_ = a.Analyze(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "(not logged in)"
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the Daraz inventory keeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
