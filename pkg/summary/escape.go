package summary

import (
	"strings"

	"golang.org/x/text/width"
)

var (
	cellReplacer  = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")
	labelReplacer = strings.NewReplacer("[", `\[`, "]", `\]`)
	urlReplacer   = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29", "<", "%3C", ">", "%3E", "\n", "%0A", "\r", "%0D")
	lineJoiner    = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
)

func escapeContent(s string, ctx inlineContext) string {
	switch ctx {
	case inCell:
		return escapeCell(s)
	case inLabel:
		// A line break would end the link text and let the rest start a block.
		return labelReplacer.Replace(lineJoiner.Replace(s))
	default:
		return escapeLineStarts(s)
	}
}

// escapeCell keeps a value on one table row and inside one column.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

func escapeURL(s string) string {
	return urlReplacer.Replace(strings.TrimSpace(s))
}

// escapeLineStarts backslash-escapes block markers at the start of every line,
// so user text cannot open a heading, list, quote, fence or thematic break.
func escapeLineStarts(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	// Up to three spaces of indentation still start a block.
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	if i >= len(line) {
		return line
	}
	rest := line[i:]
	at := -1

	switch c := rest[0]; {
	case c == '#' || c == '>':
		at = i
	case strings.HasPrefix(rest, "```") || strings.HasPrefix(rest, "~~~"):
		at = i
	case (c == '-' || c == '+' || c == '*') && (len(rest) == 1 || rest[1] == ' ' || rest[1] == '\t'):
		at = i
	case (c == '-' || c == '*' || c == '_' || c == '=') && onlyRepeats(rest, c):
		at = i
	case c >= '0' && c <= '9':
		j := 0
		for j < len(rest) && j < 9 && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j < len(rest) && (rest[j] == '.' || rest[j] == ')') && (j+1 == len(rest) || rest[j+1] == ' ' || rest[j+1] == '\t') {
			at = i + j
		}
	}
	if at < 0 {
		return line
	}
	return line[:at] + `\` + line[at:]
}

// onlyRepeats reports whether s consists of c and blanks only.
func onlyRepeats(s string, c byte) bool {
	for k := 0; k < len(s); k++ {
		if s[k] != c && s[k] != ' ' && s[k] != '\t' {
			return false
		}
	}
	return true
}

// escapeClosingHashes keeps a trailing run of '#' in ATX heading text from
// being read as the optional closing sequence.
func escapeClosingHashes(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '#' {
		i--
	}
	if i == len(s) || (i > 0 && s[i-1] != ' ' && s[i-1] != '\t') {
		return s
	}
	return s[:i] + `\` + s[i:]
}

// singleLine collapses line breaks so a heading stays on one line.
func singleLine(s string) string {
	return strings.TrimSpace(lineJoiner.Replace(s))
}

// displayWidth counts wide and fullwidth runes as two columns and every other rune as one.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// fenceFor returns a backtick fence longer than any backtick run inside code.
func fenceFor(code string) string {
	longest, run := 0, 0
	for k := 0; k < len(code); k++ {
		if code[k] == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}
