package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir must not be empty")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be \"json\" or \"text\" (got %q)", c.Log.Format)
	}

	if err := c.Download.validate(); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	if err := c.Release.validate(); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	return nil
}

func (d *DownloadConfig) validate() error {
	if d.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	if d.Retries < 0 {
		return fmt.Errorf("retries must be >= 0 (got %d)", d.Retries)
	}
	if d.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", d.RetryDelay)
	}
	return nil
}

func (r *ReleaseConfig) validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", r.Workers)
	}
	if r.HeavyWorkers < 1 {
		return fmt.Errorf("heavy_workers must be >= 1 (got %d)", r.HeavyWorkers)
	}
	if len(r.Editions) == 0 {
		return fmt.Errorf("editions must not be empty")
	}

	editions, err := ParseEditionList(r.Editions)
	if err != nil {
		return fmt.Errorf("editions: %w", err)
	}
	r.EditionList = editions

	langs, err := ParseLangList(r.Languages)
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	r.LanguageList = langs

	cross, err := ParseLangList(r.CrossLanguages)
	if err != nil {
		return fmt.Errorf("cross_languages: %w", err)
	}
	r.CrossLanguageList = cross

	return nil
}

// ParseEditionList parses edition codes (e.g. ["en","de"]) into domain
// editions, skipping blank entries. An empty input returns a nil slice.
func ParseEditionList(codes []string) ([]domain.Edition, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	editions := make([]domain.Edition, 0, len(codes))
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		e, err := domain.ParseEdition(code)
		if err != nil {
			return nil, err
		}
		editions = append(editions, e)
	}

	return editions, nil
}

// ParseLangList parses language codes into domain languages, skipping
// blank entries. An empty input returns a nil slice.
func ParseLangList(codes []string) ([]domain.Lang, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	langs := make([]domain.Lang, 0, len(codes))
	for _, code := range codes {
		if strings.TrimSpace(code) == "" {
			continue
		}
		l, err := domain.ParseLang(code)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}

	return langs, nil
}
