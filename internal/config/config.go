package config

import (
	"time"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	DataDir     string `yaml:"data_dir"    env:"YOMIGEN_DATA_DIR"    env-default:"data"`
	Diagnostics bool   `yaml:"diagnostics" env:"YOMIGEN_DIAGNOSTICS" env-default:"false"`

	Log      LogConfig      `yaml:"log"`
	Download DownloadConfig `yaml:"download"`
	Release  ReleaseConfig  `yaml:"release"`
	Publish  PublishConfig  `yaml:"publish"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DownloadConfig holds settings for fetching kaikki.org dumps.
type DownloadConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"DOWNLOAD_BASE_URL"    env-default:"https://kaikki.org"`
	Timeout    time.Duration `yaml:"timeout"     env:"DOWNLOAD_TIMEOUT"     env-default:"30m"`
	Retries    int           `yaml:"retries"     env:"DOWNLOAD_RETRIES"     env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"DOWNLOAD_RETRY_DELAY" env-default:"5s"`
}

// ReleaseConfig holds settings for the full-matrix release run.
type ReleaseConfig struct {
	Editions []string `yaml:"editions" env:"RELEASE_EDITIONS" env-default:"en,de,fr"`

	// Workers bounds the pool for regular dictionary builds; 0 means NumCPU.
	Workers int `yaml:"workers" env:"RELEASE_WORKERS" env-default:"0"`
	// HeavyWorkers bounds the pool for cross-glossary builds, which hold
	// every edition's records for a pair in memory at once.
	HeavyWorkers int `yaml:"heavy_workers" env:"RELEASE_HEAVY_WORKERS" env-default:"2"`

	// Languages restricts the per-edition language matrix; empty means
	// every supported language.
	Languages []string `yaml:"languages" env:"RELEASE_LANGUAGES"`
	// CrossLanguages restricts the cross-glossary pair matrix; empty means
	// the configured editions' own languages.
	CrossLanguages []string `yaml:"cross_languages" env:"RELEASE_CROSS_LANGUAGES"`

	// EditionList is parsed from Editions during validation.
	EditionList []domain.Edition `yaml:"-" env:"-"`
	// LanguageList is parsed from Languages during validation.
	LanguageList []domain.Lang `yaml:"-" env:"-"`
	// CrossLanguageList is parsed from CrossLanguages during validation.
	CrossLanguageList []domain.Lang `yaml:"-" env:"-"`
}

// PublishConfig names the published artifacts in dictionary indexes.
// BaseURL empty disables the self-update links.
type PublishConfig struct {
	BaseURL  string `yaml:"base_url" env:"PUBLISH_BASE_URL"`
	Author   string `yaml:"author"   env:"PUBLISH_AUTHOR"   env-default:"yomigen contributors"`
	Homepage string `yaml:"homepage" env:"PUBLISH_HOMEPAGE" env-default:"https://github.com/heartmarshall/yomigen"`
}
