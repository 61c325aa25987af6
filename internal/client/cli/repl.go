package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Subjects(ctx context.Context) error
	AddSubject(ctx context.Context) error
	Goals(ctx context.Context) error
	Tasks(ctx context.Context) error
	Done(ctx context.Context, args []string) error
	Checkin(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Report(ctx context.Context) error
}

// runREPL starts a read–eval–print loop. It reads a line from r, parses
// the first token as the command, and dispatches to methods on 'a'. The
// same buffered reader backs the command handlers' prompts, so input never
// gets stranded in a second buffer. The loop exits on EOF or when the user
// types "exit" or "quit". Errors returned by handlers are ignored here;
// handlers report their own errors, which keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ltrack %s> ", statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, subjects, addsubject, goals, tasks, done <task> <step>, checkin <task>, dashboard, report, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "subjects":
			_ = a.Subjects(ctx)

		case "addsubject":
			_ = a.AddSubject(ctx)

		case "goals":
			_ = a.Goals(ctx)

		case "tasks":
			_ = a.Tasks(ctx)

		case "done":
			_ = a.Done(ctx, args)

		case "checkin":
			_ = a.Checkin(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "report":
			_ = a.Report(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
