// Package cli wires the cobra command tree: configuration loading,
// logger setup and the per-kind build commands sit here, the actual
// work lives in internal/release and internal/dict.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/app"
	"github.com/heartmarshall/yomigen/internal/config"
)

var (
	cfgFile string
	dataDir string
	verbose bool
	quiet   bool

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "yomigen",
	Short: "Build Yomitan dictionaries from kaikki.org Wiktionary dumps",
	Long: `yomigen turns raw Wiktextract dumps from kaikki.org into installable
Yomitan dictionaries: per-edition glossaries, cross-edition glossaries
and IPA pronunciation banks.

Example usage:
  yomigen glossary --edition en --source ru   # Russian headwords, English glosses
  yomigen ipa --edition en --source ru        # Russian IPA from the English edition
  yomigen release                             # full configured matrix`,
	Version:      app.BuildVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if quiet {
			cfg.Log.Level = "error"
		}

		log = app.NewLogger(cfg.Log)
		log.Debug("starting", slog.String("version", app.BuildVersion()))
		return nil
	},
}

// Execute runs the command tree. Interrupts cancel the command context
// so in-flight downloads and builds stop at the next checkpoint.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data root for dumps, caches and dictionaries (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "errors only, no progress bars")
}
