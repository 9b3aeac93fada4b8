package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/yomigen/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
data_dir: "/var/lib/yomigen"
diagnostics: true

log:
  level: "debug"
  format: "json"

download:
  base_url: "https://kaikki.example.org"
  timeout: "10m"
  retries: 5
  retry_delay: "2s"

release:
  editions: ["en", "de"]
  workers: 4
  heavy_workers: 1
  languages: ["ru", "ja"]
  cross_languages: ["en", "de"]

publish:
  base_url: "https://dicts.example.org"
  author: "example"
  homepage: "https://example.org"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/var/lib/yomigen" {
		t.Errorf("data_dir = %q, want %q", cfg.DataDir, "/var/lib/yomigen")
	}
	if !cfg.Diagnostics {
		t.Error("diagnostics should be true")
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}

	// Download
	if cfg.Download.BaseURL != "https://kaikki.example.org" {
		t.Errorf("download.base_url = %q", cfg.Download.BaseURL)
	}
	if cfg.Download.Timeout != 10*time.Minute {
		t.Errorf("download.timeout = %v, want %v", cfg.Download.Timeout, 10*time.Minute)
	}
	if cfg.Download.Retries != 5 {
		t.Errorf("download.retries = %d, want 5", cfg.Download.Retries)
	}
	if cfg.Download.RetryDelay != 2*time.Second {
		t.Errorf("download.retry_delay = %v, want 2s", cfg.Download.RetryDelay)
	}

	// Release
	if cfg.Release.Workers != 4 {
		t.Errorf("release.workers = %d, want 4", cfg.Release.Workers)
	}
	if cfg.Release.HeavyWorkers != 1 {
		t.Errorf("release.heavy_workers = %d, want 1", cfg.Release.HeavyWorkers)
	}
	if len(cfg.Release.EditionList) != 2 || cfg.Release.EditionList[0] != "en" || cfg.Release.EditionList[1] != "de" {
		t.Errorf("release.EditionList = %v, want [en de]", cfg.Release.EditionList)
	}
	if len(cfg.Release.LanguageList) != 2 || cfg.Release.LanguageList[0] != "ru" {
		t.Errorf("release.LanguageList = %v, want [ru ja]", cfg.Release.LanguageList)
	}
	if len(cfg.Release.CrossLanguageList) != 2 {
		t.Errorf("release.CrossLanguageList = %v, want [en de]", cfg.Release.CrossLanguageList)
	}

	// Publish
	if cfg.Publish.BaseURL != "https://dicts.example.org" {
		t.Errorf("publish.base_url = %q", cfg.Publish.BaseURL)
	}
	if cfg.Publish.Author != "example" {
		t.Errorf("publish.author = %q", cfg.Publish.Author)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("YOMIGEN_DATA_DIR", "/tmp/override")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/tmp/override" {
		t.Errorf("data_dir = %q, want %q (ENV override)", cfg.DataDir, "/tmp/override")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_FlagPathBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	flagged := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	cfg, err := Load(flagged)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/var/lib/yomigen" {
		t.Errorf("data_dir = %q, want flag file value", cfg.DataDir)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	// Set working dir to a temp dir with no config.yaml
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("data_dir = %q, want %q (default)", cfg.DataDir, "data")
	}
	if cfg.Download.Retries != 3 {
		t.Errorf("download.retries = %d, want 3 (default)", cfg.Download.Retries)
	}
	if cfg.Release.HeavyWorkers != 2 {
		t.Errorf("release.heavy_workers = %d, want 2 (default)", cfg.Release.HeavyWorkers)
	}
	want := []domain.Edition{"en", "de", "fr"}
	if len(cfg.Release.EditionList) != len(want) {
		t.Fatalf("release.EditionList = %v, want %v (default)", cfg.Release.EditionList, want)
	}
	for i, e := range want {
		if cfg.Release.EditionList[i] != e {
			t.Errorf("release.EditionList[%d] = %v, want %v", i, cfg.Release.EditionList[i], e)
		}
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_DataDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.DataDir = "  "

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty data_dir")
	}
}

func TestValidate_LogFormatInvalid(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestValidate_Download_BaseURLEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Download.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty download base_url")
	}
}

func TestValidate_Download_TimeoutZero(t *testing.T) {
	cfg := validConfig()
	cfg.Download.Timeout = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for Timeout = 0")
	}
}

func TestValidate_Download_RetriesNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Download.Retries = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative Retries")
	}
}

func TestValidate_Release_WorkersNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Release.Workers = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative Workers")
	}
}

func TestValidate_Release_HeavyWorkersZero(t *testing.T) {
	cfg := validConfig()
	cfg.Release.HeavyWorkers = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for HeavyWorkers = 0")
	}
}

func TestValidate_Release_EditionsEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Release.Editions = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty editions")
	}
}

func TestValidate_Release_UnknownEdition(t *testing.T) {
	cfg := validConfig()
	cfg.Release.Editions = []string{"en", "xx"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown edition")
	}
	if !errors.Is(err, domain.ErrUnknownEdition) {
		t.Errorf("error = %v, want ErrUnknownEdition", err)
	}
}

func TestValidate_Release_UnknownLanguage(t *testing.T) {
	cfg := validConfig()
	cfg.Release.Languages = []string{"klingon"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
	if !errors.Is(err, domain.ErrUnknownLang) {
		t.Errorf("error = %v, want ErrUnknownLang", err)
	}
}

func TestParseEditionList_SkipsBlanks(t *testing.T) {
	editions, err := ParseEditionList([]string{" en ", "", "de"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(editions) != 2 {
		t.Fatalf("len = %d, want 2", len(editions))
	}
	if editions[0] != "en" || editions[1] != "de" {
		t.Errorf("editions = %v, want [en de]", editions)
	}
}

func TestParseEditionList_Empty(t *testing.T) {
	editions, err := ParseEditionList(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editions != nil {
		t.Errorf("expected nil, got %v", editions)
	}
}

func TestParseLangList_Valid(t *testing.T) {
	langs, err := ParseLangList([]string{"RU", "grc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("len = %d, want 2", len(langs))
	}
	if langs[0] != "ru" || langs[1] != "grc" {
		t.Errorf("langs = %v, want [ru grc]", langs)
	}
}

func TestParseLangList_Unknown(t *testing.T) {
	_, err := ParseLangList([]string{"nope"})
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		DataDir: "data",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Download: DownloadConfig{
			BaseURL:    "https://kaikki.org",
			Timeout:    30 * time.Minute,
			Retries:    3,
			RetryDelay: 5 * time.Second,
		},
		Release: ReleaseConfig{
			Editions:     []string{"en", "de", "fr"},
			Workers:      0,
			HeavyWorkers: 2,
		},
	}
}
