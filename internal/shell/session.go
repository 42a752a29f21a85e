// Package shell is the terminal front end of the expense ledger. It reads
// commands line by line, forwards them to the expense service and prints
// the results and every error as a notification.
package shell

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/subcommands"

	"expenses/internal/core"
	"expenses/internal/ledger"
	applog "expenses/internal/log"
	"expenses/internal/render"
	"expenses/internal/trace"
)

// Expenses is the set of operations the shell offers.
type Expenses interface {
	AddExpense(ctx context.Context, in core.Input) (core.Expense, error)
	UndoLast(ctx context.Context) (core.Expense, error)
	Delete(ctx context.Context, sel ledger.Selection) (core.Expense, error)
	Total(ctx context.Context) core.Money
	All(ctx context.Context) []core.Expense
	Recent(ctx context.Context) []core.Expense
}

// Session holds the state of one shell: the service, the current
// selection and where to print. A Session is not safe for concurrent use.
type Session struct {
	svc    Expenses
	render *render.Renderer
	out    io.Writer
	logger *applog.Logger
	prompt string

	selection   ledger.Selection
	interactive bool
	lines       <-chan string
	done        bool
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt printed before each command.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithLogger sets the session logger.
func WithLogger(l *applog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l.WithComponent(applog.ComponentShell)
		}
	}
}

func New(svc Expenses, r *render.Renderer, out io.Writer, opts ...Option) *Session {
	s := &Session{
		svc:    svc,
		render: r,
		out:    out,
		logger: applog.Discard(),
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands from in until EOF, quit, or ctx is cancelled. Missing
// fields of add are prompted for.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	stop := make(chan struct{})
	defer close(stop)
	s.lines = scan(in, stop)
	s.interactive = true
	s.done = false

	fmt.Fprintln(s.out, "Expense Tracker. Type 'help' for the list of commands.")
	for !s.done {
		fmt.Fprint(s.out, s.prompt)
		line, ok := s.next(ctx)
		if !ok {
			fmt.Fprintln(s.out)
			return ctx.Err()
		}
		s.Execute(ctx, line)
	}
	return nil
}

// RunScript executes lines in order without prompting. Blank lines and
// lines starting with # are skipped. It returns the number of commands
// that failed.
func (s *Session) RunScript(ctx context.Context, lines []string) (int, error) {
	s.lines = nil
	s.interactive = false
	s.done = false

	failed := 0
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintln(s.out, s.prompt+line)
		if s.Execute(ctx, line) != subcommands.ExitSuccess {
			failed++
		}
		if s.done {
			break
		}
	}
	return failed, nil
}

// Execute runs a single command line.
func (s *Session) Execute(ctx context.Context, line string) subcommands.ExitStatus {
	args := strings.Fields(line)
	if len(args) == 0 {
		return subcommands.ExitSuccess
	}
	start := time.Now()
	id := trace.NewCommandID()
	ctx = trace.WithCommandID(ctx, id)
	ctx = applog.WithLogger(ctx, s.logger)
	s.logger.DebugContext(ctx, "Command started", applog.FieldCommandID, id, applog.FieldCommand, args[0])

	status := s.dispatch(ctx, args)
	s.logger.DebugContext(ctx, "Command completed",
		applog.FieldCommandID, id,
		applog.FieldCommand, args[0],
		applog.FieldSuccess, status == subcommands.ExitSuccess,
		applog.FieldDurationMs, time.Since(start).Milliseconds())
	return status
}

func (s *Session) dispatch(ctx context.Context, args []string) subcommands.ExitStatus {
	top := flag.NewFlagSet("expenses", flag.ContinueOnError)
	top.SetOutput(s.out)
	cdr := subcommands.NewCommander(top, "expenses")
	cdr.Output = s.out
	cdr.Error = s.out
	register(cdr)

	if !known(cdr, args[0]) {
		s.warn("Command Error", fmt.Sprintf("Unknown command %q. Type 'help' for the list of commands.", args[0]))
		return subcommands.ExitUsageError
	}
	// Commands take no flags; "--" keeps arguments such as -1 or -3.50
	// from being parsed as flags.
	argv := append([]string{args[0], "--"}, args[1:]...)
	if err := top.Parse(argv); err != nil {
		return subcommands.ExitUsageError
	}
	return cdr.Execute(ctx, s)
}

func known(cdr *subcommands.Commander, name string) bool {
	found := false
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// ask prompts for one more line. It fails outside interactive sessions.
func (s *Session) ask(ctx context.Context, prompt string) (string, bool) {
	if !s.interactive {
		return "", false
	}
	fmt.Fprint(s.out, prompt)
	return s.next(ctx)
}

func (s *Session) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

// scan forwards the lines of in until EOF or stop is closed.
func scan(in io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}

// info prints a notification the way the desktop version showed an
// information box: "Title: message".
func (s *Session) info(title, msg string) {
	fmt.Fprintf(s.out, "%s: %s\n", title, msg)
}

// warn prints a warning notification and logs it.
func (s *Session) warn(title, msg string) {
	fmt.Fprintf(s.out, "%s: %s\n", title, msg)
	s.logger.Debug("Warning shown", "title", title, "message", msg)
}

func (s *Session) showList(ctx context.Context, title string, es []core.Expense, numbered bool) subcommands.ExitStatus {
	text, err := s.render.List(title, es, numbered)
	if err != nil {
		applog.NewStructuredLogger(applog.FromContext(ctx)).
			LogError(ctx, "Failed to render list", err, applog.ComponentRender, applog.OpRender, nil)
		s.warn("Display Error", err.Error())
		return subcommands.ExitFailure
	}
	fmt.Fprint(s.out, text)
	return subcommands.ExitSuccess
}
