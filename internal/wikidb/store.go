// Package wikidb caches parsed kaikki word entries in per-edition SQLite
// files, so repeated dictionary builds skip the multi-gigabyte JSONL parse.
package wikidb

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/gob"
	"fmt"
	"io"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// progressInterval is how many imported entries pass between progress callbacks.
const progressInterval = 10_000

const insertEntrySQL = `INSERT INTO wiktextract (lang, entry) VALUES (?, ?)`

// Store is one edition's record cache backed by a SQLite file.
//
// The cache is written once by Populate and then only read, so a single
// connection is enough and sidesteps writer lock contention.
type Store struct {
	db      *sql.DB
	edition domain.Edition
}

// Open opens (creating if needed) the cache file at path and applies
// pending schema migrations.
func Open(ctx context.Context, path string, edition domain.Edition) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(10000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("wikidb: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("wikidb: ping %s: %w", path, err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("wikidb: migrate %s: %w", path, err)
	}

	return &Store{db: db, edition: edition}, nil
}

// migrate applies embedded goose migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("sub fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// Edition returns the wiktionary edition this cache was opened for.
func (s *Store) Edition() domain.Edition { return s.edition }

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of cached entries for the given language.
func (s *Store) Count(ctx context.Context, lang domain.Lang) (int, error) {
	query, args, err := sq.Select("count(*)").
		From("wiktextract").
		Where(sq.Eq{"lang": string(lang)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("wikidb: build count query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("wikidb: count %s entries: %w", lang, err)
	}

	return count, nil
}

// Populated reports whether the cache holds any entries at all.
// An empty cache means the dataset was never imported.
func (s *Store) Populated(ctx context.Context) (bool, error) {
	query, args, err := sq.Select("count(*)").From("wiktextract").ToSql()
	if err != nil {
		return false, fmt.Errorf("wikidb: build count query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("wikidb: count entries: %w", err)
	}

	return count > 0, nil
}

// Populate imports every entry from the JSONL stream into the cache in a
// single transaction. Entries are keyed by their own lang_code, not the
// edition's language: one edition describes words of many languages.
//
// progress, if non-nil, is called with the running total every
// progressInterval entries and once more at the end.
func (s *Store) Populate(ctx context.Context, r io.Reader, progress func(total int)) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("wikidb: begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEntrySQL)
	if err != nil {
		return 0, fmt.Errorf("wikidb: prepare insert: %w", err)
	}
	defer stmt.Close()

	total := 0
	_, err = kaikki.DecodeLines(r, func(entry *kaikki.WordEntry) error {
		blob, err := encodeEntry(entry)
		if err != nil {
			return fmt.Errorf("encode %q: %w", entry.Word, err)
		}

		if _, err := stmt.ExecContext(ctx, entry.LangCode, blob); err != nil {
			return fmt.Errorf("insert %q: %w", entry.Word, err)
		}

		total++
		if progress != nil && total%progressInterval == 0 {
			progress(total)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("wikidb: import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("wikidb: commit import: %w", err)
	}

	if progress != nil {
		progress(total)
	}
	return total, nil
}

// ByLanguage streams every cached entry of the given language to fn in
// insertion order. A decode failure means the cache file is damaged and
// is reported as domain.ErrCorruptCache.
func (s *Store) ByLanguage(ctx context.Context, lang domain.Lang, fn func(entry *kaikki.WordEntry) error) error {
	query, args, err := sq.Select("id", "entry").
		From("wiktextract").
		Where(sq.Eq{"lang": string(lang)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("wikidb: build select query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("wikidb: select %s entries: %w", lang, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			blob []byte
		)
		if err := rows.Scan(&id, &blob); err != nil {
			return fmt.Errorf("wikidb: scan row: %w", err)
		}

		entry, err := decodeEntry(blob)
		if err != nil {
			return fmt.Errorf("wikidb: entry %d: %w: %v", id, domain.ErrCorruptCache, err)
		}

		if err := fn(entry); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("wikidb: iterate %s entries: %w", lang, err)
	}

	return nil
}

// encodeEntry serializes an entry for storage. gob is both faster to
// decode and smaller than the original JSON line.
func encodeEntry(e *kaikki.WordEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeEntry(blob []byte) (*kaikki.WordEntry, error) {
	var e kaikki.WordEntry
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}
