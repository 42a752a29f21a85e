package render

import (
	"bytes"
	"strconv"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"

	"expenses/internal/core"
)

// ListMarkdown builds a markdown document with one table row per expense.
func ListMarkdown(title string, r *Renderer, es []core.Expense, numbered bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(es) == 0 {
		doc.PlainText("No expenses.")
		return doc.String()
	}

	header := []string{"Date", "Category", "Amount"}
	if numbered {
		header = append([]string{"#"}, header...)
	}
	rows := make([][]string, 0, len(es))
	for i, e := range es {
		row := []string{e.Date.String(), e.Category, r.Amount(e.Amount)}
		if numbered {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{
		Header: header,
		Rows:   rows,
	})
	return doc.String()
}

// Terminal renders a markdown document for a terminal of the given width.
// The "notty" style is used so the output carries no escape sequences and
// can be piped.
func Terminal(markdown string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(markdown)
}
