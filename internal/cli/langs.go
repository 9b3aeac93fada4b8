package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/domain"
)

var langsEditions bool

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List supported language and edition codes",
	Long: `Print the supported language codes and their English names. With
--editions, print the Wiktionary editions kaikki.org extracts instead.`,
	RunE: runLangs,
}

func init() {
	rootCmd.AddCommand(langsCmd)
	langsCmd.Flags().BoolVar(&langsEditions, "editions", false, "list editions instead of languages")
}

func runLangs(cmd *cobra.Command, args []string) error {
	if langsEditions {
		for _, e := range domain.AllEditions() {
			fmt.Printf("%-8s %s\n", e, e.Name())
		}
		return nil
	}
	for _, l := range domain.AllLangs() {
		fmt.Printf("%-8s %s\n", l, l.Name())
	}
	return nil
}
