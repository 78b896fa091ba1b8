package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"layoutcycle/config"
	"layoutcycle/log"
	"layoutcycle/tui"
	"layoutcycle/watcher"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "layoutcycle",
		Usage:   "Cycle a screen layout between Tree, Accordion and Landscape",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-file",
				Usage: "Path to configuration file (default: " + config.DefaultPath() + ")",
			},
			&cli.StringFlag{
				Name:  "debug-log",
				Usage: "Path to debug log file",
			},
			&cli.StringFlag{
				Name:    "theme",
				Aliases: []string{"t"},
				Usage:   "Override the UI theme",
			},
			&cli.BoolFlag{
				Name:  "no-mouse",
				Usage: "Disable mouse support",
			},
			&cli.BoolFlag{
				Name:  "list-themes",
				Usage: "List available themes and exit",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("list-themes") {
		fmt.Println(strings.Join(tui.ThemeNames(), "\n"))
		return nil
	}
	defer func() { _ = log.Close() }()

	configPath := cmd.String("config-file")
	if configPath == "" {
		configPath = config.DefaultPath()
	} else {
		expanded, err := config.ExpandPath(configPath)
		if err != nil {
			return fmt.Errorf("error expanding config-file: %w", err)
		}
		configPath = expanded
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	// Flags take precedence over the config file
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if theme := cmd.String("theme"); theme != "" {
		cfg.Theme = theme
	}
	if cmd.Bool("no-mouse") {
		cfg.Mouse = false
	}

	setupDebugLog(cfg.DebugLog)

	if _, ok := tui.ThemeIndex(cfg.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(tui.ThemeNames(), ", "))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	configEvents := watchConfig(ctx, configPath)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	} else if cfg.Mouse {
		log.Printf("mouse disabled: clicks need the alternate screen")
	}
	opts = append(opts, tea.WithContext(ctx))

	log.Printf("starting layoutcycle %s (theme=%q mouse=%v)", version, cfg.Theme, cfg.MouseEnabled())
	p := tea.NewProgram(tui.New(cfg, configEvents), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func setupDebugLog(path string) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		expanded = path
	}
	if err := log.SetFile(expanded); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", expanded, err)
	}
}

// watchConfig forwards config reloads to the TUI until ctx is done.
// It returns nil when the config directory cannot be watched.
func watchConfig(ctx context.Context, path string) <-chan tui.ConfigUpdateMsg {
	w, err := watcher.New(path)
	if err != nil {
		log.Printf("config watcher disabled: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Printf("config watcher disabled: %v", err)
		w.Stop()
		return nil
	}

	events := make(chan tui.ConfigUpdateMsg, 10)
	go func() {
		defer close(events)
		defer w.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				select {
				case events <- tui.ConfigUpdateMsg{Config: event.Config, Err: event.Err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events
}
