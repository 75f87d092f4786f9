package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/magicdawn/finder-sort/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("findersort failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "findersort",
		Short: "Sort paths from stdin in macOS Finder order",
		Long: `findersort reads a list of paths from stdin and writes them to stdout
ordered the way Finder lists them: numbers by value, extensions after
base names, optionally folders before files.

Defaults can be set with FINDERSORT_LOCALE, FINDERSORT_FOLDER_FIRST and
FINDERSORT_NULL in the environment or in a .env file.`,
		Example:       "  find . -print0 | findersort -z --folder-first | xargs -0 ls -d",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(".env")
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return app.NewApp(cfg, app.WithLogger(logger)).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Bool("folder-first", false, "list directories before sibling files")
	flags.String("locale", "", "BCP 47 collation locale, e.g. en-US or zh-CN (default root collation)")
	flags.BoolP("null", "z", false, "paths are NUL-separated on input and output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")

	return cmd
}

// applyFlags overrides cfg with flags set on the command line.
func applyFlags(flags *pflag.FlagSet, cfg *app.Config) error {
	var err error
	if flags.Changed("folder-first") {
		if cfg.FolderFirst, err = flags.GetBool("folder-first"); err != nil {
			return err
		}
	}
	if flags.Changed("locale") {
		if cfg.Locale, err = flags.GetString("locale"); err != nil {
			return err
		}
	}
	if flags.Changed("null") {
		if cfg.Null, err = flags.GetBool("null"); err != nil {
			return err
		}
	}
	return nil
}
