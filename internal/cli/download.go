package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/paths"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download and unpack one edition's dump",
	Long: `Download the raw Wiktextract dump for an edition from kaikki.org and
store it uncompressed under the data directory. Skipped when the dataset
is already present unless --force is given.

Examples:
  yomigen download --edition en
  yomigen download --edition fr --force`,
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVar(&buildEdition, "edition", "", "wiktionary edition to fetch (required)")
	downloadCmd.Flags().BoolVar(&buildForce, "force", false, "redownload even when the dataset is already present")
	downloadCmd.MarkFlagRequired("edition")
}

func runDownload(cmd *cobra.Command, args []string) error {
	edition, err := domain.ParseEdition(buildEdition)
	if err != nil {
		return err
	}

	pm := paths.New(cfg.DataDir)
	if err := pm.EnsureBaseDirs(); err != nil {
		return err
	}

	dl := kaikki.NewDownloader(kaikki.DownloadOptions{
		BaseURL:    cfg.Download.BaseURL,
		Timeout:    cfg.Download.Timeout,
		Retries:    cfg.Download.Retries,
		RetryDelay: cfg.Download.RetryDelay,
	}, log)

	opts := kaikki.FetchOptions{Force: buildForce}
	if interactive() {
		bar := newByteBar(edition.String() + " dump")
		defer bar.Finish()
		opts.Progress = bar
	}

	return dl.Fetch(cmd.Context(), edition, pm.DatasetPath(edition), opts)
}
