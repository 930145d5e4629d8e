// Package main is the todo entry point. "todo" (or "todo tui") runs the
// terminal UI; "todo serve" runs the headless HTTP shell. Both wire the same
// application core with samber/do v2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-client/internal/adapters/http"
	"github.com/jsamuelsen11/todo-client/internal/adapters/tui"
	"github.com/jsamuelsen11/todo-client/internal/platform/config"
	"github.com/jsamuelsen11/todo-client/internal/platform/logging"
	"github.com/jsamuelsen11/todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

const (
	commandTUI   = "tui"
	commandServe = "serve"

	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions are the flags shared by every sub-command.
type cliOptions struct {
	command   string
	profile   string
	configDir string
	userFile  string
}

func parseArgs(args []string, usage io.Writer) (cliOptions, error) {
	opts := cliOptions{command: commandTUI}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.command, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("todo "+opts.command, flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() { printUsage(fs, usage) }

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	fs.StringVar(&opts.profile, "profile", profile, "configuration profile (local, dev, qa, prod)")
	fs.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and {profile}.yaml")
	fs.StringVar(&opts.userFile, "config", "", "TOML config file (default "+defaultUserFileHint()+")")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch opts.command {
	case commandTUI, commandServe:
		return opts, nil
	case "help":
		fs.Usage()
		return opts, flag.ErrHelp
	default:
		fs.Usage()
		return opts, fmt.Errorf("unknown command: %s", opts.command)
	}
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: todo [tui|serve] [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  tui     interactive terminal UI (default)\n")
	fmt.Fprintf(w, "  serve   headless HTTP shell\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}

func defaultUserFileHint() string {
	if p := config.DefaultUserFile(); p != "" {
		return p
	}
	return "none"
}

func loadConfig(opts cliOptions) (*config.Config, error) {
	loadOpts := []config.Option{config.WithConfigDir(opts.configDir)}
	if opts.userFile != "" {
		loadOpts = append(loadOpts, config.WithUserFile(opts.userFile, true))
	} else if p := config.DefaultUserFile(); p != "" {
		loadOpts = append(loadOpts, config.WithUserFile(p, false))
	}
	return config.Load(opts.profile, loadOpts...)
}

// logSink is the process logger and the writer behind it.
type logSink struct {
	logger *slog.Logger
	out    io.Writer
	close  func()
}

// setupLogging builds the process logger, stores it in ctx and installs it as
// the slog default so code that logs through logging.FromContext or slog
// directly writes to the same place. The terminal UI owns the terminal, so it
// always logs to a file.
func setupLogging(ctx context.Context, command string, cfg config.LogConfig) (context.Context, logSink, error) {
	sink := logSink{out: os.Stderr, close: func() {}}
	if command == commandTUI || cfg.File != "" {
		f, err := logging.OpenFile(cfg.File)
		if err != nil {
			return ctx, sink, err
		}
		sink.out = f
		sink.close = func() { _ = f.Close() }
	}

	sink.logger = logging.New(cfg.Level, cfg.Format, sink.out)
	slog.SetDefault(sink.logger)
	return logging.WithLogger(ctx, sink.logger), sink, nil
}

func run(ctx context.Context, args []string, usage io.Writer) error {
	opts, err := parseArgs(args, usage)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, sink, err := setupLogging(ctx, opts.command, cfg.Log)
	if err != nil {
		return err
	}
	defer sink.close()
	logger := sink.logger

	var otelOut io.Writer
	if opts.command == commandTUI {
		otelOut = sink.out
	}
	otel, err := telemetry.Setup(ctx, cfg.Telemetry, otelOut)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	logger.Info("starting", slog.String("command", opts.command), slog.String("profile", opts.profile))

	switch opts.command {
	case commandServe:
		return serve(ctx, injector, logger)
	default:
		return runTUI(ctx, injector, cfg)
	}
}

func serve(ctx context.Context, injector do.Injector, logger *slog.Logger) error {
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func runTUI(ctx context.Context, injector do.Injector, cfg *config.Config) error {
	board, err := do.Invoke[ports.TodoBoard](injector)
	if err != nil {
		return fmt.Errorf("resolving board: %w", err)
	}
	logger := do.MustInvoke[*slog.Logger](injector)

	model := tui.New(ctx, board, tui.Options{
		Keys:      cfg.UI.Keys,
		Location:  cfg.UI.Location(),
		NoticeTTL: cfg.UI.NoticeTTL,
		Logger:    logger,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
