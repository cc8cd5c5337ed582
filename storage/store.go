package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/electr1fy0/noteboard/crypto"
	"github.com/electr1fy0/noteboard/notes"
)

// DefaultKey names the snapshot. A format change needs a new key; there is
// no migration.
const DefaultKey = "studentNotes_v1"

// ErrSealed is returned by Save after Load found an encrypted snapshot it
// could not open, so that a wrong passphrase never overwrites it.
var ErrSealed = errors.New("stored notes are encrypted with a different passphrase")

// record is the persisted shape of a note. Timestamps are epoch milliseconds.
type record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func toRecord(n notes.Note) record {
	return record{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.UnixMilli(),
		UpdatedAt: n.UpdatedAt.UnixMilli(),
	}
}

func fromRecord(r record) notes.Note {
	return notes.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

// Encode renders list as the JSON array stored under the key.
func Encode(list []notes.Note) ([]byte, error) {
	recs := make([]record, 0, len(list))
	for _, n := range list {
		recs = append(recs, toRecord(n))
	}
	return json.Marshal(recs)
}

// Decode parses a stored JSON array. A JSON null decodes to an empty list.
func Decode(data []byte) ([]notes.Note, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	list := make([]notes.Note, 0, len(recs))
	for _, r := range recs {
		list = append(list, fromRecord(r))
	}
	return list, nil
}

// Store reads and writes full snapshots of the note list under one key.
type Store struct {
	kv         KV
	key        string
	passphrase string
	logger     *slog.Logger

	sealed bool
}

type Option func(*Store)

func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// WithPassphrase encrypts snapshots at rest.
func WithPassphrase(p string) Option { return func(s *Store) { s.passphrase = p } }

func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ notes.Store = (*Store)(nil)

// Load returns the stored list. Anything that keeps it from reading one,
// including a missing key or a malformed value, yields an empty list.
func (s *Store) Load() []notes.Note {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("reading notes failed, starting empty", "key", s.key, "err", err)
		return []notes.Note{}
	}
	if !ok {
		return []notes.Note{}
	}
	list, err := s.decode([]byte(raw))
	if err != nil {
		s.logger.Warn("stored notes unreadable, starting empty", "key", s.key, "err", err)
		return []notes.Note{}
	}
	s.logger.Debug("notes loaded", "key", s.key, "count", len(list))
	return list
}

func (s *Store) decode(raw []byte) ([]notes.Note, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Decode(trimmed)
	}

	var env crypto.Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Ciphertext) == 0 {
		return nil, fmt.Errorf("decode notes: expected an array")
	}
	if s.passphrase == "" {
		s.sealed = true
		return nil, fmt.Errorf("notes are encrypted and no passphrase is set")
	}
	plain, err := crypto.Open(env, s.passphrase)
	if err != nil {
		s.sealed = true
		return nil, err
	}
	return Decode(plain)
}

// Save overwrites the stored snapshot with list.
func (s *Store) Save(list []notes.Note) error {
	if s.sealed {
		return ErrSealed
	}
	data, err := Encode(list)
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		env, err := crypto.Seal(data, s.passphrase)
		if err != nil {
			return fmt.Errorf("encrypt notes: %w", err)
		}
		if data, err = json.Marshal(env); err != nil {
			return fmt.Errorf("encode envelope: %w", err)
		}
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("write %q: %w", s.key, err)
	}
	s.logger.Debug("notes saved", "key", s.key, "count", len(list))
	return nil
}

// Sealed reports whether Load hit an encrypted snapshot it could not open.
func (s *Store) Sealed() bool { return s.sealed }
