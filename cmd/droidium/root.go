package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/droidium/droidium/internal/apperrors"
	"github.com/droidium/droidium/internal/cleanup"
	"github.com/droidium/droidium/internal/files"
	"github.com/droidium/droidium/internal/logger"
	"github.com/droidium/droidium/internal/version"
)

func execute() {
	defer func() {
		if r := recover(); r != nil {
			logger.Fatal("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
		}
	}()
	if err := run(os.Args[1:]); err != nil {
		logger.Fatal("droidium exited with an error", "error", apperrors.PublicMessage(err))
	}
}

// run executes the root command with args, then the shutdown hooks.
func run(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		logger.Error("Shutdown cleanup failed", "error", cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	return err
}

type rootOptions struct {
	level   levelFlag
	logFile string
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{level: levelFlag(logger.LevelInfo)}

	cmd := &cobra.Command{
		Use:   "droidium",
		Short: "Droidium — Android reverse-engineering toolkit",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(&opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.Var(&opts.level, "log-level", "minimum log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "also append JSON log lines to this file")

	cmd.AddCommand(newAboutCmd())
	return cmd
}

func setupLogging(opts *rootOptions) error {
	if opts.logFile == "" {
		logger.Init(opts.level.Level(), nil)
		return nil
	}
	f, err := files.OpenAppend(opts.logFile, 0o600)
	if err != nil {
		return err
	}
	cleanup.Register("log file", f.Close)
	logger.Init(opts.level.Level(), f)
	return nil
}

// levelFlag is a pflag.Value that only accepts known level names.
type levelFlag slog.Level

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) String() string {
	return slog.Level(*l).String()
}

func (l *levelFlag) Set(s string) error {
	lvl, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	*l = levelFlag(lvl)
	return nil
}

func (l *levelFlag) Type() string { return "level" }

func (l levelFlag) Level() slog.Level { return slog.Level(l) }
