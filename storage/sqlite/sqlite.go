// Package sqlite provides a persistent literal backend on SQLite.
//
// Literals are keyed by the BLAKE3 content address of storage.KeyOf. Lexical forms
// longer than the compression threshold are stored xz compressed. The backend has no
// specialized storage, every literal is stored by its lexical form.
package sqlite

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/damedic/rdf-toolbox-go/storage"
	"github.com/ulikunitz/xz"
	_ "modernc.org/sqlite"
)

// DefaultCompressThreshold is the lexical form length in bytes above which lexical
// forms are compressed.
const DefaultCompressThreshold = 4096

const schema = `
CREATE TABLE IF NOT EXISTS literals (
	id         INTEGER PRIMARY KEY,
	key        BLOB    NOT NULL UNIQUE,
	datatype   TEXT    NOT NULL,
	lang       TEXT    NOT NULL,
	lexical    BLOB    NOT NULL,
	compressed INTEGER NOT NULL
)`

// Store is a literal backend on a SQLite database.
type Store struct {
	db                *sql.DB
	compressThreshold int
}

// Option configures a Store.
type Option func(*Store)

// WithCompressThreshold sets the lexical form length above which lexical forms are
// compressed. A negative threshold disables compression.
func WithCompressThreshold(n int) Option {
	return func(s *Store) {
		s.compressThreshold = n
	}
}

// Open opens or creates the database at path.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// a single connection serializes writers and keeps in-memory databases shared
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	s := &Store{db: db, compressThreshold: DefaultCompressThreshold}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) FindOrMakeID(v storage.LiteralView) (storage.NodeID, error) {
	key := storage.KeyOf(v)
	lexical, compressed, err := s.encode(v.Lexical)
	if err != nil {
		return 0, err
	}
	_, err = s.db.Exec(
		`INSERT INTO literals (key, datatype, lang, lexical, compressed) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (key) DO NOTHING`,
		key[:], v.Datatype, v.Lang, lexical, compressed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert literal: %w", err)
	}
	id, ok, err := s.find(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("literal vanished after insert")
	}
	return id, nil
}

func (s *Store) FindID(v storage.LiteralView) (storage.NodeID, bool, error) {
	return s.find(storage.KeyOf(v))
}

func (s *Store) find(key storage.Key) (storage.NodeID, bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM literals WHERE key = ?`, key[:]).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find literal: %w", err)
	}
	return storage.NodeID(id), true, nil
}

func (s *Store) HasSpecializedStorageFor(string) bool {
	return false
}

func (s *Store) LiteralBackend(id storage.NodeID) (storage.LiteralView, error) {
	var (
		v          storage.LiteralView
		lexical    []byte
		compressed bool
	)
	err := s.db.QueryRow(
		`SELECT datatype, lang, lexical, compressed FROM literals WHERE id = ?`, int64(id),
	).Scan(&v.Datatype, &v.Lang, &lexical, &compressed)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.LiteralView{}, fmt.Errorf("%w: %d", storage.ErrNodeNotFound, id)
	}
	if err != nil {
		return storage.LiteralView{}, fmt.Errorf("read literal %d: %w", id, err)
	}
	if v.Lexical, err = decode(lexical, compressed); err != nil {
		return storage.LiteralView{}, fmt.Errorf("read literal %d: %w", id, err)
	}
	return v, nil
}

// Len returns the number of stored literals.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM literals`).Scan(&n)
	return n, err
}

func (s *Store) encode(lexical string) ([]byte, bool, error) {
	if s.compressThreshold < 0 || len(lexical) <= s.compressThreshold {
		return []byte(lexical), false, nil
	}
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, false, fmt.Errorf("compress lexical form: %w", err)
	}
	if _, err := io.WriteString(w, lexical); err != nil {
		return nil, false, fmt.Errorf("compress lexical form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, false, fmt.Errorf("compress lexical form: %w", err)
	}
	return buf.Bytes(), true, nil
}

func decode(lexical []byte, compressed bool) (string, error) {
	if !compressed {
		return string(lexical), nil
	}
	r, err := xz.NewReader(bytes.NewReader(lexical))
	if err != nil {
		return "", fmt.Errorf("decompress lexical form: %w", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decompress lexical form: %w", err)
	}
	return string(b), nil
}

// CompressedCount returns the number of literals stored compressed.
func (s *Store) CompressedCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM literals WHERE compressed`).Scan(&n)
	return n, err
}
