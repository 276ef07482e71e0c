package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlbuilder/internal/config"
	"github.com/vango-dev/htmlbuilder/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "htmlbuilder",
		Short: "Build and render HTML documents from descriptions",
		Long: `htmlbuilder turns JSON or YAML page descriptions into HTML.

Every element and attribute is checked while the tree is built, so a
description that renders is structurally valid:

  • Attributes must be attribute values
  • Children must be text or elements
  • Self-closing elements never have children`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				errors.DisableColors()
			}
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to "+config.ConfigFileName+" (default: search upward from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(flags),
		checkCmd(flags),
		tagsCmd(),
		serveCmd(flags),
		publishCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig loads the file named by --config, or the nearest project
// configuration, or defaults.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFile(f.configPath)
	}
	return config.LoadFromWorkingDir()
}

// documentPath returns the positional document argument or the configured
// document.
func documentPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.DocumentPath()
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
