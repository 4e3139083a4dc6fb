package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/dgallion1/slidedeck/internal/config"
)

const appName = "slidedeck"

var version = "dev"

// env is shared by all subcommands; it is filled in by initializeAppContext
// once the command line has been parsed.
type env struct {
	log  *slog.Logger
	pres *config.Presentation
	cfg  string
}

type envKey struct{}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{log: slog.New(slog.NewTextHandler(os.Stderr, nil))})
}

func envFromContext(ctx context.Context) *env {
	return ctx.Value(envKey{}).(*env)
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)

	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	e.cfg = cmd.String("config")
	pres, err := config.LoadPresentation(e.cfg)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	e.pres = pres

	e.log.Debug("Program started", "args", os.Args, "ver", version, "runtime", runtime.Version())
	if e.cfg == "" {
		e.log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	envFromContext(ctx).log.Error("Program ended with error", "error", err)
	errWasHandled = true
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	envFromContext(ctx).log.Warn("Unknown command, nothing to do", "command", name)
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "compiles markdown into slide decks and presents them",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load presentation configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "compile",
				Usage:     "Compiles a markdown deck and prints it as JSON",
				Action:    runCompile,
				ArgsUsage: "SOURCE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write JSON to `FILE` instead of STDOUT"},
					&cli.BoolFlag{Name: "compact", Usage: "do not indent JSON output"},
				},
			},
			{
				Name:      "outline",
				Usage:     "Prints the table of contents of a deck",
				Action:    runOutline,
				ArgsUsage: "SOURCE",
			},
			{
				Name:      "stats",
				Usage:     "Summarizes one or more decks and reports separator mistakes",
				Action:    runStats,
				ArgsUsage: "SOURCE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print statistics as JSON"},
				},
			},
			{
				Name:      "present",
				Usage:     "Steps through a deck interactively",
				Action:    runPresent,
				ArgsUsage: "SOURCE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "notes", Aliases: []string{"n"}, Usage: "show speaker notes"},
				},
			},
			{
				Name:      "import",
				Usage:     "Converts a document (md, txt, csv, html, pdf, docx) into deck markdown",
				Action:    runImport,
				ArgsUsage: "DOCUMENT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write markdown to `FILE` instead of STDOUT"},
					&cli.IntFlag{Name: "max-words", Value: 120, Usage: "maximum `WORDS` per slide"},
				},
			},
			{
				Name:      "new",
				Usage:     "Writes a starter deck",
				Action:    runNew,
				ArgsUsage: "[DESTINATION]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Value: "My Presentation", Usage: "deck `TITLE`"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite an existing destination"},
				},
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual presentation configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default configuration"},
				},
				Action:    runDumpConfig,
				ArgsUsage: "DESTINATION",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
