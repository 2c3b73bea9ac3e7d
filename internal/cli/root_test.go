package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error { s.calls = append(s.calls, name); return nil }

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }

func (s *stubExec) Login(ctx context.Context) error { return s.record("login") }

func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }

func (s *stubExec) List(ctx context.Context) error { return s.record("list") }

func (s *stubExec) AddProduct(ctx context.Context) error { return s.record("add") }

func (s *stubExec) Show(ctx context.Context) error { return s.record("show") }

func (s *stubExec) Edit(ctx context.Context) error { return s.record("edit") }

func (s *stubExec) UpdateStock(ctx context.Context) error { return s.record("stock") }

func (s *stubExec) Delete(ctx context.Context) error { return s.record("delete") }

func (s *stubExec) Dashboard(ctx context.Context) error { return s.record("dashboard") }

func (s *stubExec) Report(ctx context.Context) error { return s.record("report") }

func (s *stubExec) Analyze(ctx context.Context) error { return s.record("analyze") }

func (s *stubExec) Settings(ctx context.Context) error { return s.record("settings") }

func runScript(t *testing.T, a *stubExec, script string) []string {
	t.Helper()

	origPrintln, origPrint := printlnFn, printFn
	defer func() { printlnFn, printFn = origPrintln, origPrint }()
	var printed []string
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	printFn = func(args ...any) (int, error) { return 0, nil }

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return printed
}

func TestRunREPL_DispatchesLoggedIn(t *testing.T) {
	a := &stubExec{loggedIn: true}
	runScript(t, a, "list\nadd\nshow\nedit\nstock\ndelete\ndashboard\nreport\nanalyze\nsettings\nlogout\nexit\n")

	assert.Equal(t, []string{"list", "add", "show", "edit", "stock", "delete",
		"dashboard", "report", "analyze", "settings", "logout"}, a.calls)
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	a := &stubExec{loggedIn: false}
	printed := runScript(t, a, "list\ndashboard\nregister\nlogin\nexit\n")

	// catalog commands were blocked, auth commands went through
	assert.Equal(t, []string{"register", "login"}, a.calls)
	assert.Contains(t, printed, "Please login first.")
}

func TestRunREPL_UnknownAndEmpty(t *testing.T) {
	a := &stubExec{loggedIn: true}
	printed := runScript(t, a, "\nbogus\nquit\n")

	assert.Empty(t, a.calls)
	assert.Contains(t, printed, "Unknown command:")
	assert.Contains(t, printed, "Bye!")
}

func TestRunREPL_Help(t *testing.T) {
	in := &stubExec{loggedIn: true}
	printed := runScript(t, in, "help\nexit\n")
	assert.Contains(t, strings.Join(printed, "\n"), "dashboard")

	out := &stubExec{loggedIn: false}
	printed = runScript(t, out, "help\nexit\n")
	assert.Contains(t, strings.Join(printed, "\n"), "register")
}

func TestRunREPL_PromptStaysInline(t *testing.T) {
	a := &stubExec{loggedIn: false}

	origPrintln, origPrint := printlnFn, printFn
	defer func() { printlnFn, printFn = origPrintln, origPrint }()
	printlnFn = func(args ...any) (int, error) { return 0, nil }
	var prompts []string
	printFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				prompts = append(prompts, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), a, func() string { return "(not logged in)" }, scanner)

	assert.NotEmpty(t, prompts)
	// the cursor must stay on the prompt line
	assert.Equal(t, "daraz (not logged in)> ", prompts[0])
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	a := &stubExec{loggedIn: true}
	runScript(t, a, "list")
	assert.Equal(t, []string{"list"}, a.calls)
}
