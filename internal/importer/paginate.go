package importer

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/dgallion1/slidedeck/internal/markup"
)

// paginate breaks text into pages of about maxWords words. Paragraphs are
// kept whole when they fit; an oversized prose paragraph is split by
// sentences. Fenced code, lists and tables are never split.
func paginate(text string, maxWords int, prose bool) []string {
	if maxWords <= 0 {
		maxWords = 120
	}

	var (
		pages   []string
		current []string
		words   int
	)
	flush := func() {
		if len(current) > 0 {
			pages = append(pages, strings.Join(current, "\n\n"))
		}
		current, words = nil, 0
	}

	for _, para := range splitParagraphs(text) {
		n := wordCount(para)
		if n > maxWords && prose && splittable(para) {
			flush()
			pages = append(pages, splitBySentences(para, maxWords)...)
			continue
		}
		if words+n > maxWords && words > 0 {
			flush()
		}
		current = append(current, para)
		words += n
	}
	flush()
	return pages
}

// splitParagraphs splits on blank lines outside fenced code.
func splitParagraphs(text string) []string {
	var (
		fence markup.Fence
		paras []string
		cur   []string
	)
	flush := func() {
		if p := strings.TrimSpace(strings.Join(cur, "\n")); p != "" {
			paras = append(paras, p)
		}
		cur = nil
	}
	for _, line := range markup.Lines(text) {
		if !fence.Scan(line) && strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

func splittable(para string) bool {
	first := strings.TrimSpace(para)
	return !strings.HasPrefix(first, "```") &&
		!strings.HasPrefix(first, "~~~") &&
		!strings.HasPrefix(first, "- ") &&
		!strings.HasPrefix(first, "|")
}

// splitBySentences packs the sentences of a large paragraph into pages.
func splitBySentences(text string, maxWords int) []string {
	var (
		result  []string
		current strings.Builder
		words   int
	)
	for _, sent := range splitSentences(text) {
		n := wordCount(sent)
		if words+n > maxWords && words > 0 {
			result = append(result, current.String())
			current.Reset()
			words = 0
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sent)
		words += n
	}
	if words > 0 {
		result = append(result, current.String())
	}
	return result
}

var englishTokenizer = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// splitSentences splits prose with the English punkt model. The tokenizer
// leaves inter-sentence spaces on the following sentence; they are trimmed.
func splitSentences(text string) []string {
	tok, err := englishTokenizer()
	if err != nil {
		return []string{text}
	}
	var out []string
	for _, s := range tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
