package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/release"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Build the full configured dictionary matrix",
	Long: `Run every combination the release configuration describes: per-edition
glossaries and IPA banks, merged IPA banks, and cross glossaries between
the configured language pairs. A failed combination is logged and does
not stop the others; the command fails at the end if any failed.

Examples:
  yomigen release
  yomigen release --force --first 50000`,
	RunE: runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	addBuildFlags(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	return release.NewRunner(cfg, log).Run(cmd.Context(), opts)
}
