package metadata

import (
	"regexp"
	"strings"

	"github.com/dgallion1/slidedeck/internal/markup"
)

const notePrefix = "Note:"

var headingLineRegex = regexp.MustCompile(`^#{1,6}(\s|$)`)

// splitNotes removes every speaker-notes block from lines. A block starts
// at a line beginning with "Note:" and runs up to the next heading line,
// the next "---" line or the end of the segment. Blocks are joined with a
// blank line.
func splitNotes(lines []string) (rest []string, notes string) {
	var (
		fence  markup.Fence
		blocks []string
		cur    []string
		inNote bool
	)
	flush := func() {
		if t := strings.TrimSpace(strings.Join(cur, "\n")); t != "" {
			blocks = append(blocks, t)
		}
		cur = nil
		inNote = false
	}

	rest = lines[:0:0]
	for _, line := range lines {
		inFence := fence.Scan(line)
		if inNote {
			if inFence || !endsNote(line) {
				cur = append(cur, line)
				continue
			}
			flush()
		}
		if !inFence && strings.HasPrefix(line, notePrefix) {
			inNote = true
			cur = append(cur, strings.TrimPrefix(line, notePrefix))
			continue
		}
		rest = append(rest, line)
	}
	if inNote {
		flush()
	}
	return rest, strings.Join(blocks, "\n\n")
}

func endsNote(line string) bool {
	return headingLineRegex.MatchString(line) || strings.TrimRight(line, " \t") == "---"
}
