package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/fbrowse/internal/app"
	"github.com/kk-code-lab/fbrowse/internal/config"
	"github.com/kk-code-lab/fbrowse/internal/logging"
)

type rootFlags struct {
	cfgFile string
	debug   bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "fbrowse [DIR]",
		Short: "Browse directories and preview files in the terminal",
		Long: `fbrowse lists a directory, lets you move through the tree with the
keyboard, previews text files and creates folders.

Settings are read from $HOME/.config/fbrowse/config.yaml, FBROWSE_*
environment variables and the flags below, in increasing precedence.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags.cfgFile)
			if err != nil {
				return err
			}
			return run(cfg, args, flags.debug)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/fbrowse/config.yaml)")
	f.Bool("show-hidden", true, "show dot-files on start")
	f.Duration("tick", config.DefaultTickRate, "housekeeping tick interval")
	f.Bool("watch", true, "refresh the listing when the directory changes on disk")
	f.Bool("highlight", true, "syntax-highlight previews")
	f.String("style", config.DefaultStyle, "highlight style name")
	f.Int64("max-preview-bytes", config.DefaultMaxBytes, "largest file that will be previewed")
	f.String("log-file", "", "write logs to this file")
	f.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	f.BoolVar(&flags.debug, "debug", false, "shorthand for --log-level=debug")

	return rootCmd
}

func loadConfig(cmd *cobra.Command, cfgFile string) (*config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return config.Load(v, cfgFile)
}

// resolveStartDir prefers the positional argument, then the configured
// directory, then the working directory.
func resolveStartDir(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.StartDir != "" {
		return cfg.StartDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wd, nil
}

func run(cfg *config.Config, args []string, debug bool) error {
	startDir, err := resolveStartDir(cfg, args)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
		Debug: debug,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	if cfg.Source != "" {
		log.WithField("file", cfg.Source).Debug("config loaded")
	}

	app, err := apppkg.NewApplication(apppkg.Options{
		StartDir:        startDir,
		ShowHidden:      cfg.ShowHidden,
		Ignore:          cfg.Ignore,
		TickRate:        cfg.TickRate,
		Watch:           cfg.Watch,
		PreviewMaxBytes: cfg.Preview.MaxBytes,
		Highlight:       cfg.Preview.Highlight,
		HighlightStyle:  cfg.Preview.Style,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}
