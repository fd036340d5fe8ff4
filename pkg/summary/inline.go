package summary

import (
	"html"
	"strings"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

// Inline is a fragment of text that can stand alone as a paragraph or fill a table cell.
// It is implemented by Plain, Text, Link and the value returned by Concat.
type Inline interface {
	render(ctx inlineContext) string
	validate() error
}

// Cell is a table cell.
type Cell = Inline

// inlineContext selects the escaping rules for the surrounding block.
type inlineContext int

const (
	inPara inlineContext = iota
	inCell
	inLabel
)

// Plain is unstyled text.
type Plain string

func (p Plain) render(ctx inlineContext) string { return escapeContent(string(p), ctx) }
func (Plain) validate() error                  { return nil }

// Cells turns strings into a row of Plain cells.
func Cells(values ...string) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		row[i] = Plain(v)
	}
	return row
}

// Text is styled inline text. The zero Style is StyleNone.
type Text struct {
	Content string
	Style   TextStyle
	// ID, when set, wraps the rendered text in a span so it can be linked to.
	ID string
}

// NewText returns Text with the given content and style.
func NewText(content string, style TextStyle) Text {
	return Text{Content: content, Style: style}
}

func Bold(content string) Text       { return NewText(content, StyleBold) }
func Italic(content string) Text     { return NewText(content, StyleItalic) }
func Underlined(content string) Text { return NewText(content, StyleUnderlined) }

// WithID returns a copy of t carrying an anchor id.
func (t Text) WithID(id string) Text {
	t.ID = id
	return t
}

// Markdown renders t as it would appear in a paragraph.
func (t Text) Markdown() string { return t.render(inPara) }

func (t Text) render(ctx inlineContext) string {
	content := escapeContent(t.Content, ctx)
	var out string
	if ctx == inPara {
		out = t.Style.decorateParagraphs(content)
	} else {
		out = t.Style.decorate(content)
	}
	if t.ID != "" {
		open := spanOpen(t.ID)
		if ctx == inCell {
			open = escapeCell(open)
		}
		out = open + out + "</span>"
	}
	return out
}

func (t Text) validate() error {
	if !t.Style.Valid() {
		return foundation.ValidationError("invalid text style").
			WithContext("style", int(t.Style)).
			Build()
	}
	return nil
}

func spanOpen(id string) string {
	return `<span id="` + html.EscapeString(singleLine(id)) + `">`
}

// Link is a hyperlink with an optionally styled label.
type Link struct {
	Label string
	URL   string
	// Title is emitted as the link title attribute when non-empty.
	Title string
	Style TextStyle
}

// NewLink returns an unstyled link.
func NewLink(label, url string) Link {
	return Link{Label: label, URL: url}
}

// WithTitle returns a copy of l with a title.
func (l Link) WithTitle(title string) Link {
	l.Title = title
	return l
}

// WithStyle returns a copy of l with a styled label.
func (l Link) WithStyle(style TextStyle) Link {
	l.Style = style
	return l
}

// Markdown renders l as [label](url).
func (l Link) Markdown() string { return l.render(inPara) }

func (l Link) render(ctx inlineContext) string {
	label := l.Style.decorate(escapeContent(l.Label, inLabel))
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(label)
	b.WriteString("](")
	b.WriteString(escapeURL(l.URL))
	if l.Title != "" {
		b.WriteString(` "`)
		b.WriteString(strings.ReplaceAll(lineJoiner.Replace(l.Title), `"`, `\"`))
		b.WriteString(`"`)
	}
	b.WriteString(")")
	if ctx == inCell {
		return escapeCell(b.String())
	}
	return b.String()
}

func (l Link) validate() error {
	if !l.Style.Valid() {
		return foundation.ValidationError("invalid link style").
			WithContext("style", int(l.Style)).
			Build()
	}
	if strings.TrimSpace(l.URL) == "" {
		return foundation.ValidationError("link url is empty").
			WithContext("label", l.Label).
			Build()
	}
	return nil
}

// Concat joins inline parts into one run of text, e.g. a label followed by a link.
func Concat(parts ...Inline) Inline {
	return concat(append([]Inline(nil), parts...))
}

type concat []Inline

func (c concat) render(ctx inlineContext) string {
	var b strings.Builder
	for _, p := range c {
		b.WriteString(p.render(ctx))
	}
	return b.String()
}

func (c concat) validate() error {
	for i, p := range c {
		if p == nil {
			return foundation.ValidationError("nil inline part").
				WithContext("part", i).
				Build()
		}
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}
