package summary

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/ghsummary/internal/foundation/normalization"
)

// TextStyle selects the markdown decoration applied to inline text.
type TextStyle int

const (
	StyleNone TextStyle = iota
	StyleBold
	StyleItalic
	StyleUnderlined
)

var styleNames = [...]string{
	StyleNone:       "none",
	StyleBold:       "bold",
	StyleItalic:     "italic",
	StyleUnderlined: "underlined",
}

// Valid reports whether s is one of the declared styles.
func (s TextStyle) Valid() bool {
	return s >= StyleNone && s <= StyleUnderlined
}

func (s TextStyle) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TextStyle(%d)", int(s))
	}
	return styleNames[s]
}

// decorate wraps already escaped content in the style's markup.
func (s TextStyle) decorate(content string) string {
	switch s {
	case StyleBold:
		return "**" + content + "**"
	case StyleItalic:
		return "*" + content + "*"
	case StyleUnderlined:
		return "<u>" + content + "</u>"
	default:
		return content
	}
}

// decorateParagraphs decorates each run of non-blank lines on its own, since
// emphasis and inline HTML cannot span a paragraph break.
func (s TextStyle) decorateParagraphs(content string) string {
	if s == StyleNone || !strings.Contains(content, "\n") {
		return s.decorate(content)
	}
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	start := -1
	flush := func(end int) {
		if start >= 0 {
			out = append(out, s.decorate(strings.Join(lines[start:end], "\n")))
			start = -1
		}
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush(i)
			out = append(out, line)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(lines))
	return strings.Join(out, "\n")
}

var styleNormalizer = normalization.NewNormalizer("text style", map[string]TextStyle{
	"":           StyleNone,
	"none":       StyleNone,
	"plain":      StyleNone,
	"bold":       StyleBold,
	"strong":     StyleBold,
	"italic":     StyleItalic,
	"em":         StyleItalic,
	"underlined": StyleUnderlined,
	"underline":  StyleUnderlined,
}, StyleNone)

// ParseTextStyle maps a case-insensitive style name to a TextStyle.
// The empty string means StyleNone.
func ParseTextStyle(name string) (TextStyle, error) {
	return styleNormalizer.NormalizeWithError(name)
}

// HeadingKind selects ATX levels one through six or an underlined Setext heading.
type HeadingKind int

const (
	H1 HeadingKind = iota + 1
	H2
	H3
	H4
	H5
	H6
	// Setext underlines the heading text with '='.
	Setext
	// Setext2 underlines the heading text with '-'.
	Setext2
)

// Valid reports whether k is one of the declared heading kinds.
func (k HeadingKind) Valid() bool {
	return k >= H1 && k <= Setext2
}

// Level is the heading level: 1..6 for ATX headings, 1 for Setext and 2 for Setext2.
func (k HeadingKind) Level() int {
	switch {
	case k >= H1 && k <= H6:
		return int(k)
	case k == Setext:
		return 1
	case k == Setext2:
		return 2
	}
	return 0
}

// IsSetext reports whether k renders as an underlined heading.
func (k HeadingKind) IsSetext() bool {
	return k == Setext || k == Setext2
}

func (k HeadingKind) String() string {
	switch {
	case k >= H1 && k <= H6:
		return fmt.Sprintf("h%d", int(k))
	case k == Setext:
		return "setext"
	case k == Setext2:
		return "setext2"
	}
	return fmt.Sprintf("HeadingKind(%d)", int(k))
}

var headingNormalizer = normalization.NewNormalizer("heading kind", map[string]HeadingKind{
	"":        H1,
	"h1":      H1,
	"h2":      H2,
	"h3":      H3,
	"h4":      H4,
	"h5":      H5,
	"h6":      H6,
	"setext":  Setext,
	"setext1": Setext,
	"setext2": Setext2,
}, H1)

// ParseHeadingKind maps names such as "h2", "setext" or "setext2" to a HeadingKind.
// The empty string means H1.
func ParseHeadingKind(name string) (HeadingKind, error) {
	return headingNormalizer.NormalizeWithError(name)
}
