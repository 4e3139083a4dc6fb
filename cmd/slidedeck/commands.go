package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/dgallion1/slidedeck/internal/compiler"
	"github.com/dgallion1/slidedeck/internal/config"
	"github.com/dgallion1/slidedeck/internal/deck"
	"github.com/dgallion1/slidedeck/internal/importer"
)

func runCompile(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	src, err := readSource(cmd.Args().First())
	if err != nil {
		return err
	}
	d := compiler.CompileBytes(src)
	for _, issue := range compiler.Lint(string(src)) {
		e.log.Warn("Suspicious separator", "issue", issue)
	}

	var data []byte
	if cmd.Bool("compact") {
		data, err = json.Marshal(d)
	} else {
		data, err = json.MarshalIndent(d, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("unable to encode deck: %w", err)
	}
	e.log.Debug("Deck compiled", "slides", d.Len(), "topics", len(d.Outline))
	return writeOutput(cmd.String("out"), append(data, '\n'), true)
}

func runOutline(ctx context.Context, cmd *cli.Command) error {
	src, err := readSource(cmd.Args().First())
	if err != nil {
		return err
	}
	writeOutline(os.Stdout, compiler.CompileBytes(src).Outline, -1)
	return nil
}

// writeOutline prints the outline as a numbered tree. The entry holding
// slide current, if any, is marked.
func writeOutline(w io.Writer, o deck.Outline, current int) {
	mark := func(id int) string {
		if id == current {
			return "> "
		}
		return "  "
	}
	for i, entry := range o {
		fmt.Fprintf(w, "%s%d. %s  #%s\n", mark(entry.SlideID), i+1, entry.Title, entry.Anchor)
		for j, child := range entry.Children {
			fmt.Fprintf(w, "%s   %d.%d %s  #%s\n", mark(child.SlideID), i+1, j+1, child.Title, child.Anchor)
		}
	}
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("missing DOCUMENT argument")
	}
	if !importer.IsSupportedExtension(name) {
		return fmt.Errorf("unsupported document type: %s", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	src, err := importer.Convert(f, name, int(cmd.Int("max-words")))
	if err != nil {
		return err
	}
	d := compiler.Compile(src)
	e.log.Info("Document imported", "document", name, "slides", d.Len(), "topics", len(d.Outline))
	return writeOutput(cmd.String("out"), []byte(src), true)
}

func runNew(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	fname := cmd.Args().First()
	src := compiler.StarterTemplate(cmd.String("title"))
	if err := writeOutput(fname, []byte(src), cmd.Bool("overwrite")); err != nil {
		return err
	}
	if fname != "" {
		e.log.Info("Starter deck written", "file", fname, "slides", compiler.Compile(src).Len())
	}
	return nil
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		e.log.Warn("Malformed command line, too many destinations", "ignoring", cmd.Args().Slice()[1:])
	}
	fname := cmd.Args().First()

	cfg, state := e.pres, "actual"
	if cmd.Bool("default") {
		cfg, state = config.DefaultPresentation(), "default"
	}
	data, err := config.DumpPresentation(cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	dest := fname
	if dest == "" {
		dest = "STDOUT"
	}
	e.log.Info("Outputing configuration", "state", state, "file", dest)
	return writeOutput(fname, data, true)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
