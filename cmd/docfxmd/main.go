package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfxmd/internal/check"
	"git.home.luguber.info/inful/docfxmd/internal/config"
	"git.home.luguber.info/inful/docfxmd/internal/convert"
	"git.home.luguber.info/inful/docfxmd/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docfxmd.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version information and quit"`

	Convert struct {
		Input  string `short:"i" help:"Input directory of DocFX YAML pages (overrides config)"`
		Output string `short:"o" help:"Output directory for Markdown documents (overrides config)"`
		Watch  bool   `short:"w" help:"Keep running and reconvert when the input directory changes"`
	} `cmd:"" help:"Convert DocFX API YAML pages into Markdown documents"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Check struct {
		Dir string `arg:"" optional:"" help:"Directory of generated documents (defaults to configured output)"`
	} `cmd:"" help:"Validate previously generated documents"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("docfxmd"),
		kong.Description("Convert DocFX API YAML pages into Docusaurus-compatible Markdown."),
		kong.Vars{"version": fmt.Sprintf("docfxmd %s (%s, %s)", version.Version, version.GitCommit, version.BuildTime)})

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "convert":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runConvert(cfg, CLI.Convert.Watch); err != nil {
			slog.Error("Convert failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration file written", "path", CLI.Config)
	case "check", "check <dir>":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runCheck(cfg, CLI.Check.Dir); err != nil {
			slog.Error("Check failed", "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.Convert.Input != "" {
		cfg.Input.Directory = CLI.Convert.Input
	}
	if CLI.Convert.Output != "" {
		cfg.Output.Directory = CLI.Convert.Output
	}
	return cfg, nil
}

func runConvert(cfg *config.Config, watch bool) error {
	if watch {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		watcher, err := convert.NewWatcher(cfg)
		if err != nil {
			return err
		}
		return watcher.Run(ctx)
	}

	_, err := convert.New(cfg).Run(context.Background())
	return err
}

func runCheck(cfg *config.Config, dir string) error {
	if dir == "" {
		dir = cfg.Output.Directory
	}

	issues, err := check.Directory(dir, cfg.Output.Extension)
	if err != nil {
		return err
	}
	for _, issue := range issues {
		slog.Warn("Document issue", "file", issue.File, "reason", issue.Reason)
	}
	if len(issues) > 0 {
		return fmt.Errorf("%d document(s) failed validation", len(issues))
	}

	slog.Info("All documents passed validation", "directory", dir)
	return nil
}
