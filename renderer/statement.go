package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/valuation"
	md "github.com/nao1215/markdown"
)

// Line is one book entry valued at the statement time.
type Line struct {
	Key   valuation.ItemKey
	Value valuation.Value
	Root  bool // false when the entry is registered as a child of another
}

// Statement is a point-in-time valuation of every entry in a book,
// together with the compensated-sum total.
type Statement struct {
	At    time.Time
	Lines []Line
	Total valuation.Value
}

// NewStatement assesses every entry of the book as of 'at'.
func NewStatement(book *valuation.Book, at time.Time) (*Statement, error) {
	roots := make(map[valuation.ItemKey]bool)
	for _, key := range book.Roots() {
		roots[key] = true
	}

	s := &Statement{At: at}
	for key, item := range book.Items() {
		v, err := item.Assess(at)
		if err != nil {
			return nil, fmt.Errorf("assessing %s: %w", key, err)
		}
		s.Lines = append(s.Lines, Line{Key: key, Value: v, Root: roots[key]})
	}

	total, err := book.Assess(at)
	if err != nil {
		return nil, err
	}
	s.Total = total
	return s, nil
}

// StatementMarkdown renders the statement to a markdown document.
func StatementMarkdown(s *Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Valuation on %s", s.At.Format(time.RFC3339)))
	doc.PlainText(fmt.Sprintf("Total: %s", s.Total))

	doc.H2("Entries")

	rows := make([][]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		kind := "root"
		if !line.Root {
			kind = "child"
		}
		rows = append(rows, []string{line.Key.String(), kind, line.Value.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Item", "Kind", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
