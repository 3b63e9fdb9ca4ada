package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"leaguefetch/pkg/config"
	"leaguefetch/pkg/logger"
	"leaguefetch/pkg/scraper"
	"leaguefetch/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	noColor    bool
)

// rootCmd downloads every league logo and archives them
var rootCmd = &cobra.Command{
	Use:   "leaguefetch",
	Short: "Download football league logos and archive them",
	Long: `leaguefetch probes league IDs 1 through 10000 on the static image host,
keeps every logo that exists in ./downloaded_images and packs the directory
into ./downloaded_images.zip once the scan is complete.

IDs that do not resolve are skipped. The run only fails when the archive
cannot be written.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("leaguefetch failed", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.leaguefetch.yaml or $HOME/.config/leaguefetch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate(`leaguefetch {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runFetch(cmd *cobra.Command, args []string) error {
	flags := make(map[string]interface{})
	if logLevel != "" {
		flags["log-level"] = logLevel
	}
	if noColor {
		flags["no-color"] = true
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Console.NoColor {
		ui.SetNoColor(true)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.WithField("version", version).Info("leaguefetch starting")

	s, err := scraper.New(cfg, scraper.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize scraper: %w", err)
	}

	if _, err := s.Run(); err != nil {
		return err
	}
	return nil
}
