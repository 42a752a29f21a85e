package shell

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"expenses/internal/core"
	"expenses/internal/ledger"
)

func register(cdr *subcommands.Commander) {
	cdr.Register(&addCmd{}, "expenses")
	cdr.Register(&undoCmd{}, "expenses")
	cdr.Register(&deleteCmd{}, "expenses")
	cdr.Register(&selectCmd{}, "expenses")

	cdr.Register(&showCmd{}, "views")
	cdr.Register(&recentCmd{}, "views")
	cdr.Register(&totalCmd{}, "views")

	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(&quitCmd{name: "quit"}, "")
	cdr.Register(&quitCmd{name: "exit"}, "")
}

func session(args []interface{}) *Session {
	return args[0].(*Session)
}

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an expense" }
func (*addCmd) Usage() string {
	return `add <DD-MM-YYYY> <category> <amount>

  Adds an expense. The category may contain spaces; the last word is the
  amount. With no arguments the fields are asked for one by one.
`
}
func (*addCmd) SetFlags(*flag.FlagSet) {}

func (*addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	in, ok := s.inputFrom(ctx, f.Args())
	if !ok {
		fmt.Fprintln(s.out)
		s.warn("Input Error", "Input ended before all fields were filled in.")
		return subcommands.ExitFailure
	}
	e, err := s.svc.AddExpense(ctx, in)
	if err != nil {
		s.inputError(err)
		return subcommands.ExitFailure
	}
	s.selection = ledger.Selection{}
	s.info("Success", fmt.Sprintf("Expense of %s added on %s.", s.render.Compact(e.Amount), e.Date))
	return subcommands.ExitSuccess
}

// inputFrom splits add arguments into the form fields, prompting for them
// in interactive sessions when none were given.
func (s *Session) inputFrom(ctx context.Context, args []string) (core.Input, bool) {
	var in core.Input
	switch {
	case len(args) == 0 && s.interactive:
		var ok bool
		if in.Date, ok = s.ask(ctx, "Date (DD-MM-YYYY): "); !ok {
			return in, false
		}
		if in.Category, ok = s.ask(ctx, "Category: "); !ok {
			return in, false
		}
		if in.Amount, ok = s.ask(ctx, "Amount: "); !ok {
			return in, false
		}
	case len(args) >= 3:
		in.Date = args[0]
		in.Category = strings.Join(args[1:len(args)-1], " ")
		in.Amount = args[len(args)-1]
	case len(args) == 2:
		in.Date, in.Category = args[0], args[1]
	case len(args) == 1:
		in.Date = args[0]
	}
	return in, true
}

func (s *Session) inputError(err error) {
	switch {
	case errors.Is(err, core.ErrMissingField):
		s.warn("Input Error", "Please fill in all fields.")
	case errors.Is(err, core.ErrInvalidDate):
		s.warn("Input Error", "Date must be in DD-MM-YYYY format.")
	case errors.Is(err, core.ErrInvalidAmount):
		s.warn("Input Error", "Amount must be a valid number.")
	default:
		s.warn("Error", err.Error())
	}
}

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "remove the most recently added expense" }
func (*undoCmd) Usage() string {
	return `undo

  Removes the last added expense that is still in the list and shows the
  remaining expenses.
`
}
func (*undoCmd) SetFlags(*flag.FlagSet) {}

func (*undoCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	e, err := s.svc.UndoLast(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyHistory) {
			s.warn("Undo Error", "No expense to undo.")
		} else {
			s.warn("Undo Error", err.Error())
		}
		return subcommands.ExitFailure
	}
	s.selection = ledger.Selection{}
	s.showList(ctx, "Expenses List", s.svc.All(ctx), true)
	s.info("Undo Success", "Undone: "+e.Summary())
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense by its number in the list" }
func (*deleteCmd) Usage() string {
	return `delete [n]

  Deletes expense number n as numbered by 'show'. Without n the expense
  chosen with 'select' is deleted.
`
}
func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	sel := s.selection
	if f.NArg() > 0 {
		n, err := strconv.Atoi(f.Arg(0))
		if err != nil {
			s.warn("Selection Error", fmt.Sprintf("%q is not an expense number.", f.Arg(0)))
			return subcommands.ExitFailure
		}
		sel = ledger.At(n - 1)
	}

	e, err := s.svc.Delete(ctx, sel)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNoSelection):
			s.warn("Selection Error", "Please select an expense to delete.")
		case errors.Is(err, ledger.ErrIndexOutOfRange):
			i, _ := sel.Index()
			s.warn("Selection Error", fmt.Sprintf("There is no expense number %d.", i+1))
		default:
			s.warn("Selection Error", err.Error())
		}
		return subcommands.ExitFailure
	}
	s.selection = ledger.Selection{}
	s.showList(ctx, "Expenses List", s.svc.All(ctx), true)
	s.info("Success", "Deleted: "+e.Summary())
	return subcommands.ExitSuccess
}

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "choose the expense 'delete' removes" }
func (*selectCmd) Usage() string {
	return `select [n]

  Selects expense number n as numbered by 'show'. Without n the selection
  is cleared.
`
}
func (*selectCmd) SetFlags(*flag.FlagSet) {}

func (*selectCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	if f.NArg() == 0 {
		s.selection = ledger.Selection{}
		s.info("Selection", "Cleared.")
		return subcommands.ExitSuccess
	}
	n, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		s.warn("Selection Error", fmt.Sprintf("%q is not an expense number.", f.Arg(0)))
		return subcommands.ExitFailure
	}
	s.selection = ledger.At(n - 1)
	s.info("Selection", fmt.Sprintf("Expense number %d selected.", n))
	return subcommands.ExitSuccess
}

type showCmd struct{}

func (*showCmd) Name() string           { return "show" }
func (*showCmd) Synopsis() string       { return "list all expenses" }
func (*showCmd) Usage() string          { return "show\n\n  Lists every expense in the order it was added.\n" }
func (*showCmd) SetFlags(*flag.FlagSet) {}

func (*showCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	return s.showList(ctx, "Expenses List", s.svc.All(ctx), true)
}

type recentCmd struct{}

func (*recentCmd) Name() string     { return "recent" }
func (*recentCmd) Synopsis() string { return "list the most recently added expenses" }
func (*recentCmd) Usage() string {
	return `recent

  Lists the last added expenses, oldest first. Expenses removed afterwards
  are still listed.
`
}
func (*recentCmd) SetFlags(*flag.FlagSet) {}

func (*recentCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	return s.showList(ctx, "Recent Expenses", s.svc.Recent(ctx), false)
}

type totalCmd struct{}

func (*totalCmd) Name() string           { return "total" }
func (*totalCmd) Synopsis() string       { return "sum all expenses" }
func (*totalCmd) Usage() string          { return "total\n\n  Prints the sum of every expense in the list.\n" }
func (*totalCmd) SetFlags(*flag.FlagSet) {}

func (*totalCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	s.info("Total Expenses", "Total Expenses: "+s.render.Amount(s.svc.Total(ctx)))
	return subcommands.ExitSuccess
}

type quitCmd struct {
	name string
}

func (c *quitCmd) Name() string         { return c.name }
func (*quitCmd) Synopsis() string       { return "leave the shell; all expenses are discarded" }
func (c *quitCmd) Usage() string        { return c.name + "\n" }
func (*quitCmd) SetFlags(*flag.FlagSet) {}

func (*quitCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	session(args).done = true
	return subcommands.ExitSuccess
}
