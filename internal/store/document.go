package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/projectpulse/projectpulse/internal/models"
)

// Document is the entire persisted state: one JSON object holding every
// collection. It is read wholesale and rewritten wholesale on each mutation;
// there is no partial fetch, no indexing and no cross-process locking. Last
// write wins.
type Document struct {
	Users       []models.User       `json:"users"`
	Projects    []models.Project    `json:"projects"`
	Proposals   []models.Proposal   `json:"proposals"`
	Messages    []models.Message    `json:"messages"`
	Tasks       []models.Task       `json:"tasks"`
	ResetTokens []models.ResetToken `json:"resetTokens"`
}

// Store serializes access to the document file within this process. Multiple
// processes writing the same file still race (accepted limitation).
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by the given file path. The file is created
// lazily on first write; a missing file reads as an empty document.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Read loads the whole document. A missing file yields an empty document;
// a corrupt file is an error (the caller decides whether to reseed).
func (s *Store) Read() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// Write replaces the document file with the given state.
func (s *Store) Write(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

func (s *Store) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Update runs fn against the current document and persists the result,
// holding the store lock for the whole read-modify-write. If fn returns an
// error nothing is written.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}
