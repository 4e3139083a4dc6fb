package compiler

import (
	"strings"
	"text/template"
)

var starter = template.Must(template.New("starter").Parse(`# {{.Title}}

Welcome to your presentation!

Note: Introduce yourself and the topic.

---

::: #667eea

## Beautiful Backgrounds

Use the ` + "`:::`" + ` syntax for clean, markdown-native slides.

- ^^^ No HTML comments needed
- vvv Intuitive symbols
- ---> Easy to read and write

--

## Colours and Gradients

::: linear-gradient(135deg, #667eea 0%, #764ba2 100%)

Sub-slides sit below their topic.

---

## Fragment Animations

Watch content reveal step by step:

- >> First item appears
- ^^^ Second item fades up
- +++ Third item grows
- >>green Fourth item highlights

---

::: https://images.unsplash.com/photo-1506905925346-21bda4d32df4
::: opacity:0.3

## Image Backgrounds

Background images with adjustable opacity for readability.

` + "```go" + `
// Code blocks work great too!
fmt.Println("Hello, World!")
` + "```" + `

---

## What's Next?

- Use ^^^ symbols for animations
- Try vvv different effects
- Add ---> more slides
- Customize <--- with ` + "`:::`" + ` directives

---

# Thank You!

Questions? +++Ask away+++
`))

// StarterTemplate returns a sample deck that exercises every directive and
// fragment grammar. An empty title becomes "My Presentation".
func StarterTemplate(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "My Presentation"
	}
	var b strings.Builder
	// The template is static; Execute can only fail on a writer error.
	_ = starter.Execute(&b, struct{ Title string }{title})
	return b.String()
}
