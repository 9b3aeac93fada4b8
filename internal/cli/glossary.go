package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/dict"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Build a glossary dictionary for one language pair",
	Long: `Build a glossary dictionary from a single Wiktionary edition: headwords
in the source language, definitions taken from the edition's translations
into its own language. The target language is always the edition's own.

Examples:
  yomigen glossary --edition en --source ru               # ru headwords, en glosses
  yomigen glossary --edition de --source fr --first 1000  # capped trial run`,
	RunE: runGlossary,
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	addBuildFlags(glossaryCmd)
	glossaryCmd.Flags().StringVar(&buildEdition, "edition", "", "wiktionary edition to read (required)")
	glossaryCmd.Flags().StringVar(&buildSource, "source", "", "source language code (required)")
	glossaryCmd.MarkFlagRequired("edition")
	glossaryCmd.MarkFlagRequired("source")
}

func runGlossary(cmd *cobra.Command, args []string) error {
	req, err := editionRequest()
	if err != nil {
		return err
	}
	return runBuild(cmd, dict.Glossary{}, req)
}
