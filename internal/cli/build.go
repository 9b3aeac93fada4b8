package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomigen/internal/config"
	"github.com/heartmarshall/yomigen/internal/dict"
	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/release"
)

// Flags shared by the build commands. Only one command runs per
// invocation, so the commands can safely register the same variables.
var (
	buildEdition  string
	buildEditions []string
	buildSource   string
	buildTarget   string
	buildLang     string

	buildFirst   int
	buildRules   string
	buildFilters []string
	buildRejects []string
	buildForce   bool
)

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&buildFirst, "first", 0, "stop after this many accepted records (0 = no limit)")
	cmd.Flags().StringVar(&buildRules, "rules", "", "YAML file with filter/reject rules")
	cmd.Flags().StringArrayVar(&buildFilters, "filter", nil, "keep only records matching field=value (repeatable)")
	cmd.Flags().StringArrayVar(&buildRejects, "reject", nil, "drop records matching field=value (repeatable)")
	cmd.Flags().BoolVar(&buildForce, "force", false, "redownload dumps even when already present")
}

// buildRuleSet merges the --rules file with any --filter/--reject flags.
// Returns nil when no rules were given at all.
func buildRuleSet() (*dict.Rules, error) {
	var rules *dict.Rules
	if buildRules != "" {
		r, err := dict.LoadRules(buildRules)
		if err != nil {
			return nil, err
		}
		rules = r
	}

	if len(buildFilters)+len(buildRejects) > 0 && rules == nil {
		rules = &dict.Rules{}
	}
	for _, s := range buildFilters {
		r, err := dict.ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules.Filter = append(rules.Filter, r)
	}
	for _, s := range buildRejects {
		r, err := dict.ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules.Reject = append(rules.Reject, r)
	}

	return rules, nil
}

func buildOptions() (release.Options, error) {
	rules, err := buildRuleSet()
	if err != nil {
		return release.Options{}, err
	}

	opts := release.Options{
		Force: buildForce,
		First: buildFirst,
		Rules: rules,
	}
	if interactive() {
		opts.DownloadProgress = downloadProgress
		opts.ImportProgress = importProgress
	} else {
		opts.ImportProgress = importProgressLog
	}
	return opts, nil
}

// runBuild executes one kind for one combination. Free function because
// methods cannot carry type parameters.
func runBuild[I any](cmd *cobra.Command, kind dict.Kind[I], req dict.Request) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	return release.Build(cmd.Context(), release.NewRunner(cfg, log), kind, req, opts)
}

// editionRequest resolves --edition/--source into a per-edition
// combination; the target is always the edition's own language.
func editionRequest() (dict.Request, error) {
	edition, err := domain.ParseEdition(buildEdition)
	if err != nil {
		return dict.Request{}, err
	}
	source, err := domain.ParseLang(buildSource)
	if err != nil {
		return dict.Request{}, err
	}
	return dict.Request{
		Editions: []domain.Edition{edition},
		Source:   source,
		Target:   edition.Lang(),
	}, nil
}

// mergedEditions resolves --editions, falling back to the release
// configuration when the flag is absent.
func mergedEditions() ([]domain.Edition, error) {
	if len(buildEditions) == 0 {
		return cfg.Release.EditionList, nil
	}
	return config.ParseEditionList(buildEditions)
}

func checkDistinctPair(source, target domain.Lang) error {
	if source == target {
		return fmt.Errorf("%w: cross glossary needs two different languages, got %s-%s",
			domain.ErrBadCombination, source, target)
	}
	return nil
}
