package summary

import (
	"strings"
)

const dividerMarkup = "---"

// Render turns elements into a markdown document. Elements are separated by a
// single newline, widened to a blank line where needsGap says GitHub would
// otherwise merge two blocks. The document ends with one newline; an empty
// sequence renders as the empty string. Render does not validate; use a
// Summary for that.
func Render(elements []Element) string {
	if len(elements) == 0 {
		return ""
	}
	var b strings.Builder
	for i, el := range elements {
		if i > 0 {
			b.WriteByte('\n')
			if needsGap(elements[i-1], el) {
				b.WriteByte('\n')
			}
		}
		b.WriteString(RenderElement(el))
	}
	b.WriteByte('\n')
	return b.String()
}

// needsGap reports whether a blank line must separate prev and next so that
// next is not absorbed by prev: a paragraph followed by "---" or a Setext
// underline becomes a heading, and lines after a table become table rows.
func needsGap(prev, next Element) bool {
	if _, ok := next.(BlankLine); ok {
		return false
	}
	if _, ok := prev.(Table); ok {
		return true
	}
	if !continuesParagraph(prev) {
		return false
	}
	switch n := next.(type) {
	case Divider, Table:
		return true
	case Heading:
		return n.Kind.IsSetext()
	}
	return false
}

func continuesParagraph(el Element) bool {
	switch el.(type) {
	case Paragraph, LinkLine:
		return true
	}
	return false
}

// RenderElement renders a single element without a trailing newline.
func RenderElement(el Element) string {
	switch e := el.(type) {
	case Heading:
		return renderHeading(e)
	case Paragraph:
		if e.Content == nil {
			return ""
		}
		return e.Content.render(inPara)
	case CodeBlock:
		return renderCodeBlock(e)
	case Table:
		return renderTable(e)
	case LinkLine:
		return e.Link.render(inPara)
	case Divider:
		return dividerMarkup
	case BlankLine:
		return ""
	}
	return ""
}

func renderHeading(h Heading) string {
	text := singleLine(h.Text)
	if h.Kind.IsSetext() {
		text = escapeLineStart(text)
	} else {
		text = escapeClosingHashes(text)
	}
	underlineWidth := displayWidth(text)
	if h.ID != "" {
		text = spanOpen(h.ID) + text + "</span>"
	}
	if !h.Kind.IsSetext() {
		return strings.Repeat("#", h.Kind.Level()) + " " + text
	}
	mark := "="
	if h.Kind == Setext2 {
		mark = "-"
	}
	return text + "\n" + strings.Repeat(mark, max(underlineWidth, 1))
}

func renderCodeBlock(c CodeBlock) string {
	code := strings.TrimSuffix(c.Code, "\n")
	fence := fenceFor(code)
	return fence + strings.TrimSpace(c.Language) + "\n" + code + "\n" + fence
}

func renderTable(t Table) string {
	if len(t.Rows) == 0 {
		return ""
	}
	columns := len(t.Rows[0])
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, renderRow(t.Rows[0], columns))
	sep := make([]string, columns)
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
	for _, row := range t.Rows[1:] {
		lines = append(lines, renderRow(row, columns))
	}
	return strings.Join(lines, "\n")
}

// renderRow pads short rows and drops extra cells of hand-built Tables.
// Summary rejects such tables before they get here.
func renderRow(row []Cell, columns int) string {
	cells := make([]string, columns)
	for i := 0; i < columns && i < len(row); i++ {
		if row[i] != nil {
			cells[i] = row[i].render(inCell)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
