// Package markup holds the line-level markdown helpers shared by the deck
// compiler stages.
package markup

import "strings"

// Lines splits text into lines, dropping a trailing carriage return from
// each line.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Fence tracks fenced code blocks while lines are visited in order.
type Fence struct {
	marker byte
	width  int
}

// Scan advances the tracker by one line and reports whether the line is
// part of a fenced code block, delimiters included.
func (f *Fence) Scan(line string) bool {
	if f.width == 0 {
		if marker, width, ok := fenceOpen(line); ok {
			f.marker, f.width = marker, width
			return true
		}
		return false
	}
	if fenceClose(line, f.marker, f.width) {
		f.width = 0
	}
	return true
}

// Open reports whether the tracker is inside an unterminated fence.
func (f *Fence) Open() bool {
	return f.width > 0
}

func fenceOpen(line string) (byte, int, bool) {
	s, ok := stripIndent(line)
	if !ok || len(s) < 3 || (s[0] != '`' && s[0] != '~') {
		return 0, 0, false
	}
	marker := s[0]
	width := 0
	for width < len(s) && s[width] == marker {
		width++
	}
	if width < 3 {
		return 0, 0, false
	}
	// An info string holding the marker again is inline code or an inline
	// strike span, not a fence.
	if strings.IndexByte(s[width:], marker) >= 0 {
		return 0, 0, false
	}
	return marker, width, true
}

func fenceClose(line string, marker byte, width int) bool {
	s, ok := stripIndent(line)
	if !ok {
		return false
	}
	n := 0
	for n < len(s) && s[n] == marker {
		n++
	}
	return n >= width && strings.TrimSpace(s[n:]) == ""
}

// stripIndent removes up to three leading spaces; deeper indentation is an
// indented code block, not a fence.
func stripIndent(line string) (string, bool) {
	i := 0
	for i < len(line) && i < 4 && line[i] == ' ' {
		i++
	}
	if i == 4 {
		return "", false
	}
	return line[i:], true
}

// MaskFences blanks every byte of fenced code blocks except newlines, so
// offsets into the result match offsets into text.
func MaskFences(text string) string {
	var (
		fence Fence
		b     strings.Builder
	)
	b.Grow(len(text))
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if fence.Scan(strings.TrimSuffix(line, "\r")) {
			b.WriteString(strings.Repeat(" ", len(line)))
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// MaskCode blanks fenced code blocks and inline code spans, backticks
// included, keeping newlines so offsets still line up with text. A span
// opened by a run of n backticks closes at the next run of exactly n
// within the same paragraph; an unmatched run is left as literal text.
func MaskCode(text string) string {
	b := []byte(MaskFences(text))
	for i := 0; i < len(b); {
		switch b[i] {
		case '\\':
			i += 2
			continue
		case '`':
		default:
			i++
			continue
		}
		n := backtickRun(b, i)
		end := closingRun(b, i+n, n)
		if end < 0 {
			i += n
			continue
		}
		for j := i; j < end+n; j++ {
			if b[j] != '\n' {
				b[j] = ' '
			}
		}
		i = end + n
	}
	return string(b)
}

func backtickRun(b []byte, i int) int {
	n := 0
	for i+n < len(b) && b[i+n] == '`' {
		n++
	}
	return n
}

// closingRun finds the next run of exactly n backticks at or after i,
// giving up at a blank line.
func closingRun(b []byte, i, n int) int {
	for i < len(b) {
		switch b[i] {
		case '`':
			m := backtickRun(b, i)
			if m == n {
				return i
			}
			i += m
		case '\n':
			j := i + 1
			for j < len(b) && (b[j] == ' ' || b[j] == '\t' || b[j] == '\r') {
				j++
			}
			if j == len(b) || b[j] == '\n' {
				return -1
			}
			i = j
		default:
			i++
		}
	}
	return -1
}
