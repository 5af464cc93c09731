// Package filedb persists the ledger as one JSON file per collection inside
// a data directory, matching the layout the original desktop app wrote. It
// assumes a single logical writer.
//
// Files carry a versioned envelope {"version": 1, "records": [...]}; bare
// top-level arrays from the legacy app are migrated transparently on load.
// Decoding is strict: a file that cannot be decoded is renamed to a
// timestamped .corrupt-* backup and the collection starts empty, with the
// failure surfaced as ErrCorruptData instead of being swallowed.
package filedb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

const (
	transactionsFile = "transactions.json"
	debtsFile        = "debts.json"
	fundsFile        = "funds.json"
	goalsFile        = "goals.json"

	schemaVersion = 1
)

// ErrCorruptData marks a persisted file that could not be decoded. The raw
// file is preserved under a .corrupt-<timestamp> path before the store
// falls back to empty.
var ErrCorruptData = errors.New("persisted data is corrupt")

type envelope struct {
	Version int             `json:"version"`
	Records json.RawMessage `json:"records"`
}

// DB holds all collections in memory and flushes the touched collection to
// disk on every mutation, the way the original engines did.
type DB struct {
	dir string

	mu           sync.Mutex
	transactions []*transaction.Transaction
	debts        []*debt.Debt
	funds        []*fund.Fund
	goals        []*fund.Goal
}

// Open loads every collection from dir, creating it if needed.
//
// Corrupt files are backed up and skipped; in that case Open returns a
// usable *DB together with an error wrapping ErrCorruptData, so the caller
// can surface the problem and still run. Any other error is fatal.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db := &DB{dir: dir}

	var corrupt []error

	load := func(fn func() error) error {
		err := fn()
		if errors.Is(err, ErrCorruptData) {
			corrupt = append(corrupt, err)
			return nil
		}

		return err
	}

	if err := load(db.loadTransactions); err != nil {
		return nil, err
	}

	if err := load(db.loadDebts); err != nil {
		return nil, err
	}

	if err := load(db.loadFunds); err != nil {
		return nil, err
	}

	if err := load(db.loadGoals); err != nil {
		return nil, err
	}

	return db, errors.Join(corrupt...)
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, name)
}

// readRecords returns the raw records array of a collection file, handling
// both the versioned envelope and the legacy bare-array layout.
func (db *DB) readRecords(name string) (json.RawMessage, error) {
	data, err := os.ReadFile(db.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	// Legacy files are a bare top-level array (schema version 0).
	if data[0] == '[' {
		return json.RawMessage(data), nil
	}

	var env envelope

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, ErrCorruptData)
	}

	if env.Version != schemaVersion {
		return nil, fmt.Errorf("%s: unsupported schema version %d: %w", name, env.Version, ErrCorruptData)
	}

	return env.Records, nil
}

// decodeRecords strictly decodes a raw records array. Unknown fields are an
// error, not silently dropped data.
func decodeRecords[T any](name string, raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var records []T
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, ErrCorruptData)
	}

	return records, nil
}

// backupCorrupt moves a broken file aside so it is never lost. Failing to
// preserve the backup is fatal: we must not overwrite data we cannot read.
func (db *DB) backupCorrupt(name string) error {
	backup := db.path(name) + ".corrupt-" + time.Now().Format("20060102-150405")
	if err := os.Rename(db.path(name), backup); err != nil {
		return fmt.Errorf("preserving corrupt %s: %w", name, err)
	}

	return nil
}

// loadCollection reads and converts one collection, backing the file up and
// starting empty when it is corrupt.
func loadCollection[R, T any](db *DB, name string, convert func(R) (T, error)) ([]T, error) {
	raw, err := db.readRecords(name)

	var records []R

	if err == nil {
		records, err = decodeRecords[R](name, raw)
	}

	if err == nil {
		out := make([]T, 0, len(records))

		for _, r := range records {
			item, convErr := convert(r)
			if convErr != nil {
				err = fmt.Errorf("%s: %v: %w", name, convErr, ErrCorruptData)
				break
			}

			out = append(out, item)
		}

		if err == nil {
			return out, nil
		}
	}

	if !errors.Is(err, ErrCorruptData) {
		return nil, err
	}

	if backupErr := db.backupCorrupt(name); backupErr != nil {
		return nil, backupErr
	}

	return nil, err
}

// writeCollection marshals the envelope to a temp file and renames it into
// place, so a crash mid-write never truncates the live file.
func (db *DB) writeCollection(name string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	data, err := json.MarshalIndent(envelope{Version: schemaVersion, Records: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	tmp := db.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := os.Rename(tmp, db.path(name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}

	return nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04", // fund history entries from the legacy app
	time.DateOnly,
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
