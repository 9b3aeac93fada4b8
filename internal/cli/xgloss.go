package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/dict"
	"github.com/heartmarshall/yomigen/internal/domain"
)

var xglossCmd = &cobra.Command{
	Use:   "xgloss",
	Short: "Build a cross glossary linking two languages",
	Long: `Build a cross glossary between two languages by pivoting through the
sense glosses of the configured editions: a source-language word and a
target-language word that translate the same sense end up linked.

Source and target must differ. Every edition from the release
configuration is read unless --editions narrows the set.

Examples:
  yomigen xgloss --source ru --target de
  yomigen xgloss --source de --target fr --editions en,fr`,
	RunE: runXGloss,
}

func init() {
	rootCmd.AddCommand(xglossCmd)
	addBuildFlags(xglossCmd)
	xglossCmd.Flags().StringVar(&buildSource, "source", "", "source language code (required)")
	xglossCmd.Flags().StringVar(&buildTarget, "target", "", "target language code (required)")
	xglossCmd.Flags().StringSliceVar(&buildEditions, "editions", nil, "editions to read (default from config)")
	xglossCmd.MarkFlagRequired("source")
	xglossCmd.MarkFlagRequired("target")
}

func runXGloss(cmd *cobra.Command, args []string) error {
	source, err := domain.ParseLang(buildSource)
	if err != nil {
		return err
	}
	target, err := domain.ParseLang(buildTarget)
	if err != nil {
		return err
	}
	if err := checkDistinctPair(source, target); err != nil {
		return err
	}

	editions, err := mergedEditions()
	if err != nil {
		return err
	}

	return runBuild(cmd, dict.CrossGlossary{}, dict.Request{
		Editions: editions,
		Source:   source,
		Target:   target,
	})
}
