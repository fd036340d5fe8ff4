package summary

// Element is one renderable block of a summary. The set of implementations is closed.
type Element interface {
	isElement()
}

// Heading is an ATX or Setext heading.
type Heading struct {
	Kind HeadingKind
	Text string
	ID   string
}

// Paragraph is a line of inline content.
type Paragraph struct {
	Content Inline
}

// CodeBlock is a fenced code block. Code is emitted verbatim.
type CodeBlock struct {
	Code     string
	Language string
}

// Table is a pipe table; Rows[0] is the header.
type Table struct {
	Rows [][]Cell
}

// LinkLine is a link on its own line.
type LinkLine struct {
	Link Link
}

// Divider is a thematic break.
type Divider struct{}

// BlankLine is an empty line.
type BlankLine struct{}

func (Heading) isElement()   {}
func (Paragraph) isElement() {}
func (CodeBlock) isElement() {}
func (Table) isElement()     {}
func (LinkLine) isElement()  {}
func (Divider) isElement()   {}
func (BlankLine) isElement() {}

// copyRows detaches a table from the caller's slices.
func copyRows(rows [][]Cell) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}
