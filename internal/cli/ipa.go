package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/dict"
	"github.com/heartmarshall/yomigen/internal/domain"
)

var ipaCmd = &cobra.Command{
	Use:   "ipa",
	Short: "Build an IPA pronunciation dictionary for one language pair",
	Long: `Build an IPA pronunciation dictionary from a single Wiktionary edition:
transcriptions for source-language words, tagged with the edition's own
language as the target.

Examples:
  yomigen ipa --edition en --source ru
  yomigen ipa --edition fr --source de --first 1000`,
	RunE: runIPA,
}

var ipaMergedCmd = &cobra.Command{
	Use:   "ipa-merged",
	Short: "Build one language's IPA dictionary merged across editions",
	Long: `Merge the IPA transcriptions every configured edition carries for one
language into a single deduplicated pronunciation dictionary.

Examples:
  yomigen ipa-merged --lang ru
  yomigen ipa-merged --lang de --editions en,de`,
	RunE: runIPAMerged,
}

func init() {
	rootCmd.AddCommand(ipaCmd)
	addBuildFlags(ipaCmd)
	ipaCmd.Flags().StringVar(&buildEdition, "edition", "", "wiktionary edition to read (required)")
	ipaCmd.Flags().StringVar(&buildSource, "source", "", "source language code (required)")
	ipaCmd.MarkFlagRequired("edition")
	ipaCmd.MarkFlagRequired("source")

	rootCmd.AddCommand(ipaMergedCmd)
	addBuildFlags(ipaMergedCmd)
	ipaMergedCmd.Flags().StringVar(&buildLang, "lang", "", "language to merge transcriptions for (required)")
	ipaMergedCmd.Flags().StringSliceVar(&buildEditions, "editions", nil, "editions to read (default from config)")
	ipaMergedCmd.MarkFlagRequired("lang")
}

func runIPA(cmd *cobra.Command, args []string) error {
	req, err := editionRequest()
	if err != nil {
		return err
	}
	return runBuild(cmd, dict.IPA{}, req)
}

func runIPAMerged(cmd *cobra.Command, args []string) error {
	lang, err := domain.ParseLang(buildLang)
	if err != nil {
		return err
	}
	editions, err := mergedEditions()
	if err != nil {
		return err
	}

	return runBuild(cmd, dict.IPAMerged{}, dict.Request{
		Editions: editions,
		Source:   lang,
		Target:   lang,
	})
}
