// Package paths lays out the data directory shared by all commands:
// raw dumps, record caches, built dictionaries and diagnostics.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// Manager resolves every path under one data root.
//
// Layout:
//
//	{root}/kaikki/{edition}-raw-wiktextract-data.jsonl   decompressed dumps
//	{root}/db/wiktextract_{edition}.db                   record caches
//	{root}/dict/{target}/{source}/                       built dictionaries
//	{root}/diagnostics/{target}/{source}/                tag diagnostics
type Manager struct {
	root string
}

func New(root string) *Manager {
	return &Manager{root: root}
}

func (m *Manager) Root() string { return m.root }

func (m *Manager) DatasetDir() string { return filepath.Join(m.root, "kaikki") }

// DatasetPath is the location of an edition's decompressed JSONL dump.
func (m *Manager) DatasetPath(edition domain.Edition) string {
	name := fmt.Sprintf("%s-raw-wiktextract-data.jsonl", edition)
	return filepath.Join(m.DatasetDir(), name)
}

func (m *Manager) DBDir() string { return filepath.Join(m.root, "db") }

// DBPath is the location of an edition's record cache.
func (m *Manager) DBPath(edition domain.Edition) string {
	name := fmt.Sprintf("wiktextract_%s.db", edition)
	return filepath.Join(m.DBDir(), name)
}

// DictDir is the output directory for one (source, target) pair.
func (m *Manager) DictDir(source, target domain.Lang) string {
	return filepath.Join(m.root, "dict", string(target), string(source))
}

// DiagnosticsDir holds tag diagnostics for one (source, target) pair.
func (m *Manager) DiagnosticsDir(source, target domain.Lang) string {
	return filepath.Join(m.root, "diagnostics", string(target), string(source))
}

// EnsureBaseDirs creates the directories every run needs.
// Per-pair output directories are created on demand.
func (m *Manager) EnsureBaseDirs() error {
	for _, dir := range []string{m.DatasetDir(), m.DBDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureDictDir creates and returns the output directory for a pair.
func (m *Manager) EnsureDictDir(source, target domain.Lang) (string, error) {
	dir := m.DictDir(source, target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}
