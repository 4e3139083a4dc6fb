package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	cli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dgallion1/slidedeck/internal/compiler"
	"github.com/dgallion1/slidedeck/internal/navigator"
)

var presentCommands = []string{
	"next", "prev", "first", "last", "goto ", "outline", "close", "notes", "reload", "help", "quit",
}

func completeCommand(line string) []string {
	var out []string
	for _, c := range presentCommands {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}
	return out
}

// presenter renders engine state as text.
type presenter struct {
	out    io.Writer
	engine *navigator.Engine
	notes  bool
	width  int // Terminal width for the slide rule, 0 for none
}

func (p *presenter) prompt() string {
	st := p.engine.State()
	d := p.engine.Deck()
	if d.Len() == 0 {
		return "slidedeck (empty)> "
	}
	steps := st.Reveal + 1 + p.engine.Remaining()
	if steps > 0 {
		return fmt.Sprintf("slidedeck %d/%d [%d/%d]> ", st.Slide+1, d.Len(), st.Reveal+1, steps)
	}
	return fmt.Sprintf("slidedeck %d/%d> ", st.Slide+1, d.Len())
}

func (p *presenter) show() {
	st := p.engine.State()
	if st.OutlineVisible {
		fmt.Fprintln(p.out, "Outline:")
		writeOutline(p.out, p.engine.Deck().Outline, st.Slide)
		return
	}
	s, ok := p.engine.Current()
	if !ok {
		fmt.Fprintln(p.out, "(no slides)")
		return
	}

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	if p.width > 0 {
		fmt.Fprintln(p.out, strings.Repeat("-", p.width))
	}
	fmt.Fprintf(p.out, "\n=== %s  [%d.%d]\n", title, s.Position.Horizontal+1, s.Position.Vertical+1)
	if s.Style != nil {
		fmt.Fprintf(p.out, "background: %s\n", s.Style.Kind())
	}
	if body := strings.TrimSpace(s.Body); body != "" {
		fmt.Fprintln(p.out, body)
	}
	if n := len(s.Fragments); n > 0 {
		fmt.Fprintf(p.out, "-- %d of %s revealed\n", len(p.engine.VisibleFragments()), plural(n, "fragment"))
	}
	if p.notes && s.Notes != "" {
		fmt.Fprintf(p.out, "\nNotes:\n%s\n", s.Notes)
	}
}

func (p *presenter) help() {
	fmt.Fprintln(p.out, `Commands:
  next, n, <enter>   reveal the next fragment or go to the next slide
  prev, p            step back
  first, last        jump to the first or last slide
  goto N             jump to slide N (1-based)
  outline, close     toggle or close the outline
  notes              toggle speaker notes
  reload             recompile the source file
  quit               leave the presentation`)
}

func runPresent(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	name := cmd.Args().First()
	src, err := readSource(name)
	if err != nil {
		return err
	}

	p := &presenter{
		out:    os.Stdout,
		engine: navigator.New(compiler.CompileBytes(src)),
		notes:  cmd.Bool("notes"),
		width:  terminalWidth(os.Stdout),
	}
	e.log.Debug("Presenting", "source", name, "slides", p.engine.Deck().Len())
	p.show()

	input := liner.NewLiner()
	defer input.Close()

	input.SetCtrlCAborts(true)
	input.SetTabCompletionStyle(liner.TabPrints)
	input.SetCompleter(completeCommand)

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := input.Prompt(p.prompt())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to read command: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			line = "next"
		} else {
			input.AppendHistory(line)
		}

		switch strings.ToLower(line) {
		case "quit", "q", "exit":
			return nil
		case "help", "h", "?":
			p.help()
			continue
		case "notes":
			p.notes = !p.notes
			p.show()
			continue
		case "reload":
			if name == "-" {
				fmt.Fprintln(p.out, "cannot reload STDIN")
				continue
			}
			src, err := readSource(name)
			if err != nil {
				e.log.Warn("Reload failed", "error", err)
				continue
			}
			p.engine.Load(compiler.CompileBytes(src))
			e.log.Info("Deck reloaded", "slides", p.engine.Deck().Len())
			p.show()
			continue
		}

		ev, err := parsePresentCommand(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if p.engine.Handle(ev) {
			e.log.Debug("Event applied", "event", ev.String(), "state", p.engine.State())
			p.show()
		}
	}
}

// terminalWidth returns the width of f when it is a terminal, else 0.
func terminalWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// parsePresentCommand parses an interactive command. Slide numbers typed
// at the prompt are 1-based.
func parsePresentCommand(line string) (navigator.Event, error) {
	ev, err := navigator.ParseEvent(line)
	if err != nil {
		return ev, err
	}
	if ev.Kind == navigator.GoTo {
		ev.Index--
	}
	return ev, nil
}
