package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// documentVersion is the current store document format version.
const documentVersion = 1

// ErrStorageUnreadable marks a store file that exists but could not be
// parsed or does not match the document schema. It is never fatal: the
// store opens empty and the caller decides whether to warn.
var ErrStorageUnreadable = errors.New("results store unreadable")

// document is the on-disk shape: a version marker and the ordered
// record array.
type document struct {
	Version int       `json:"version"`
	Results []*Record `json:"results"`
}

// Store is the append-only collection of result records, held fully in
// memory and rewritten to disk after every append. Single-process use
// only; concurrent invocations racing on the same file are out of
// scope.
type Store struct {
	path    string
	records []*Record
}

// Open loads the store at path. A missing file yields an empty store
// with a nil error. An unreadable file also yields an empty, usable
// store, alongside an error wrapping ErrStorageUnreadable so the caller
// can warn.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("%w: %v", ErrStorageUnreadable, err)
	}

	if err := validateDocument(data); err != nil {
		return s, fmt.Errorf("%w: %v", ErrStorageUnreadable, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s, fmt.Errorf("%w: %v", ErrStorageUnreadable, err)
	}

	s.records = doc.Results
	return s, nil
}

// Path returns the durable storage location backing this store.
func (s *Store) Path() string {
	return s.path
}

// All returns every record in insertion order.
func (s *Store) All() []*Record {
	return s.records
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Append adds a record and rewrites the whole document to disk. The
// write is atomic (temp file + rename), so a crashed append leaves the
// previous document intact.
func (s *Store) Append(rec *Record) error {
	s.records = append(s.records, rec)
	if err := s.flush(); err != nil {
		// Roll back the in-memory append so memory matches disk.
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("persist store: %w", err)
	}
	return nil
}

// Query returns all records for a participant in insertion order.
func (s *Store) Query(participant string) []*Record {
	var matched []*Record
	for _, rec := range s.records {
		if rec.Participant == participant {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Latest returns the record with the maximum timestamp among a
// participant's records, or nil if the participant has none.
func (s *Store) Latest(participant string) *Record {
	var latest *Record
	for _, rec := range s.records {
		if rec.Participant != participant {
			continue
		}
		if latest == nil || rec.Timestamp.After(latest.Timestamp) {
			latest = rec
		}
	}
	return latest
}

// ExportAll writes the full store document to dest. The same encoder
// as flush is used, so an exported file reloads identically; text is
// written as UTF-8 with HTML escaping off, preserving every character.
func (s *Store) ExportAll(dest string) error {
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// flush rewrites the entire document to the store path.
func (s *Store) flush() error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	if err := EnsureDir(s.path); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".results-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// encode serializes the document. HTML escaping is disabled so item
// texts and participant identifiers round-trip byte for byte.
func (s *Store) encode() ([]byte, error) {
	doc := document{Version: documentVersion, Results: s.records}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultDataPath resolves the results file path in priority order:
// 1. SCL90_DATA environment variable
// 2. $XDG_DATA_HOME/scl90/results.json
// 3. ~/.local/share/scl90/results.json
func DefaultDataPath() (string, error) {
	if p := os.Getenv("SCL90_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "scl90", "results.json"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
