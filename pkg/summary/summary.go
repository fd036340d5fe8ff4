package summary

import (
	"io"
	"strings"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
)

// Summary accumulates elements in call order. Every Add* method returns the
// receiver so calls can be chained. A Summary is not safe for concurrent use.
type Summary struct {
	elements []Element
	err      error
}

// New returns an empty Summary.
func New() *Summary {
	return &Summary{}
}

// Err returns the first validation error recorded by an Add* call.
func (s *Summary) Err() error {
	return s.err
}

// Len returns the number of recorded elements.
func (s *Summary) Len() int {
	return len(s.elements)
}

// Elements returns a copy of the recorded elements.
func (s *Summary) Elements() []Element {
	return append([]Element(nil), s.elements...)
}

// Reset drops all elements and any recorded error.
func (s *Summary) Reset() *Summary {
	s.elements = nil
	s.err = nil
	return s
}

// add appends el unless an earlier call failed or check reports an error.
func (s *Summary) add(el Element, check error) *Summary {
	if s.err != nil {
		return s
	}
	if check != nil {
		s.err = check
		return s
	}
	s.elements = append(s.elements, el)
	return s
}

// AddHeading adds a heading. An empty text or unknown kind records ErrInvalidArgument.
func (s *Summary) AddHeading(text string, kind HeadingKind) *Summary {
	return s.AddHeadingWithID(text, kind, "")
}

// AddHeadingWithID adds a heading whose text is wrapped in a span carrying id.
func (s *Summary) AddHeadingWithID(text string, kind HeadingKind, id string) *Summary {
	h := Heading{Kind: kind, Text: text, ID: id}
	return s.add(h, validateHeading(h))
}

func validateHeading(h Heading) error {
	if !h.Kind.Valid() {
		return foundation.ValidationError("invalid heading kind").
			WithContext("kind", int(h.Kind)).
			Build()
	}
	if singleLine(h.Text) == "" {
		return foundation.ValidationError("heading text is empty").
			WithContext("kind", h.Kind.String()).
			Build()
	}
	return nil
}

// AddText adds a paragraph of unstyled text.
func (s *Summary) AddText(content string) *Summary {
	return s.AddStyledText(Text{Content: content})
}

// AddStyledText adds a paragraph holding a Text value.
func (s *Summary) AddStyledText(t Text) *Summary {
	return s.add(Paragraph{Content: t}, t.validate())
}

// AddInline adds a paragraph made of several inline parts.
func (s *Summary) AddInline(parts ...Inline) *Summary {
	c := Concat(parts...)
	return s.add(Paragraph{Content: c}, c.validate())
}

// AddCodeBlock adds a fenced code block. language may be empty.
func (s *Summary) AddCodeBlock(code, language string) *Summary {
	var check error
	if strings.ContainsAny(language, "`\n") {
		check = foundation.ValidationError("code block language contains a backtick or newline").
			WithContext("language", language).
			Build()
	}
	return s.add(CodeBlock{Code: code, Language: language}, check)
}

// AddTable adds a table whose first row is the header. Every row must have as
// many cells as the header: an empty table or header records ErrInvalidArgument,
// a row of a different length records ErrMalformedTable. Rows are copied.
func (s *Summary) AddTable(rows [][]Cell) *Summary {
	return s.add(Table{Rows: copyRows(rows)}, validateTable(rows))
}

func validateTable(rows [][]Cell) error {
	if len(rows) == 0 {
		return foundation.ValidationError("table has no rows").Build()
	}
	columns := len(rows[0])
	if columns == 0 {
		return foundation.ValidationError("table header row is empty").Build()
	}
	for i, row := range rows {
		if len(row) != columns {
			return foundation.TableError("table row length differs from header").
				WithContext("row", i).
				WithContext("cells", len(row)).
				WithContext("columns", columns).
				Build()
		}
		for j, cell := range row {
			if cell == nil {
				return foundation.ValidationError("table cell is nil").
					WithContext("row", i).
					WithContext("column", j).
					Build()
			}
			if err := cell.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddLink adds a link on its own line.
func (s *Summary) AddLink(label, url string, style TextStyle) *Summary {
	return s.AddLinkValue(Link{Label: label, URL: url, Style: style})
}

// AddLinkValue adds a prepared Link on its own line.
func (s *Summary) AddLinkValue(l Link) *Summary {
	return s.add(LinkLine{Link: l}, l.validate())
}

// AddDivider adds a thematic break.
func (s *Summary) AddDivider() *Summary {
	return s.add(Divider{}, nil)
}

// AddBlankLine adds an empty line.
func (s *Summary) AddBlankLine() *Summary {
	return s.add(BlankLine{}, nil)
}

// Append adds a prepared element with the same validation as the matching Add* method.
func (s *Summary) Append(el Element) *Summary {
	switch e := el.(type) {
	case Heading:
		return s.AddHeadingWithID(e.Text, e.Kind, e.ID)
	case Paragraph:
		if e.Content == nil {
			return s.add(nil, foundation.ValidationError("paragraph has no content").Build())
		}
		return s.add(e, e.Content.validate())
	case CodeBlock:
		return s.AddCodeBlock(e.Code, e.Language)
	case Table:
		return s.AddTable(e.Rows)
	case LinkLine:
		return s.AddLinkValue(e.Link)
	case Divider:
		return s.AddDivider()
	case BlankLine:
		return s.AddBlankLine()
	}
	return s.add(nil, foundation.ValidationError("unsupported element").Build())
}

// Render returns the markdown document without writing it anywhere.
func (s *Summary) Render() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return Render(s.elements), nil
}

// Write renders the document and hands it to sink in a single call. An empty
// summary does not touch the sink. The recorded elements are left untouched,
// so calling Write twice delivers the document twice.
func (s *Summary) Write(sink Sink) error {
	if sink == nil {
		return foundation.SinkError("sink is nil").Build()
	}
	doc, err := s.Render()
	if err != nil {
		return err
	}
	if doc == "" {
		return nil
	}
	return sink.Append(doc)
}

// WriteTo implements io.WriterTo.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	doc, err := s.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, doc)
	return int64(n), err
}
