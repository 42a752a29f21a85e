// Package render turns expenses into the text the shell prints.
//
// The line format "{date} - {category} - {symbol}{amount}" is fixed: the
// amount always has two decimals and no thousands grouping, e.g.
//
//	15-03-2024 - Food - ₹250.50
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"expenses/internal/core"
)

// Mode selects how listings are printed.
type Mode string

const (
	// Plain prints one line per expense.
	Plain Mode = "plain"
	// Markdown builds a markdown document and renders it for the terminal.
	Markdown Mode = "markdown"
)

// Symbol returns the display symbol of an ISO 4217 currency code.
func Symbol(code string) (string, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return "", fmt.Errorf("unknown currency %q", code)
	}
	return cur.Grapheme, nil
}

// Renderer formats expenses for one currency.
type Renderer struct {
	symbol string
	mode   Mode
	width  int
}

// New returns a Renderer for the currency code.
func New(currency string, mode Mode) (*Renderer, error) {
	symbol, err := Symbol(currency)
	if err != nil {
		return nil, err
	}
	switch mode {
	case Plain, Markdown:
	case "":
		mode = Plain
	default:
		return nil, fmt.Errorf("unknown render mode %q", mode)
	}
	return &Renderer{symbol: symbol, mode: mode, width: 80}, nil
}

// Amount formats m with the currency symbol and two decimals.
func (r *Renderer) Amount(m core.Money) string {
	return r.symbol + m.String()
}

// Compact formats m with the currency symbol and as few decimals as possible.
func (r *Renderer) Compact(m core.Money) string {
	return r.symbol + m.Compact()
}

// Line renders a single expense.
func (r *Renderer) Line(e core.Expense) string {
	return e.Date.String() + " - " + e.Category + " - " + r.Amount(e.Amount)
}

// Lines renders every expense with Line.
func (r *Renderer) Lines(es []core.Expense) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = r.Line(e)
	}
	return out
}

// List renders a titled listing. Numbered listings prefix each line with its
// 1-based position, which is what the shell's delete and select commands take.
func (r *Renderer) List(title string, es []core.Expense, numbered bool) (string, error) {
	if r.mode == Markdown {
		return Terminal(ListMarkdown(title, r, es, numbered), r.width)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	if len(es) == 0 {
		b.WriteString("  (no expenses)\n")
		return b.String(), nil
	}
	pad := len(strconv.Itoa(len(es)))
	for i, line := range r.Lines(es) {
		if numbered {
			fmt.Fprintf(&b, "  %*d. %s\n", pad, i+1, line)
		} else {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String(), nil
}
