// Package store persists the best score and best line count between sessions.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var storeFile = "termtris-local/best.json"

// ScoreStore reads and writes the two persisted records.
type ScoreStore interface {
	BestScore() int
	SetBestScore(score int) error
	BestLines() int
	SetBestLines(lines int) error
}

type record struct {
	BestScore int `json:"best_score"`
	BestLines int `json:"best_lines"`
}

// FileStore keeps the records in a JSON file.
type FileStore struct {
	path string
	rec  record
}

// Open opens the store in the user's xdg data directory, creating parent
// directories as needed.
func Open() (*FileStore, error) {
	absPath, err := xdg.DataFile(storeFile)
	if err != nil {
		return nil, fmt.Errorf("locate score file: %w", err)
	}
	return OpenFile(absPath)
}

// OpenFile opens the store at path. A missing file reads as zero records.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}
	if err := json.Unmarshal(data, &s.rec); err != nil {
		return nil, fmt.Errorf("parse score file %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) BestScore() int { return s.rec.BestScore }
func (s *FileStore) BestLines() int { return s.rec.BestLines }

func (s *FileStore) SetBestScore(score int) error {
	s.rec.BestScore = score
	return s.save()
}

func (s *FileStore) SetBestLines(lines int) error {
	s.rec.BestLines = lines
	return s.save()
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0664); err != nil {
		return fmt.Errorf("write score file: %w", err)
	}
	return nil
}

// MemoryStore is a ScoreStore that forgets everything on exit.
type MemoryStore struct {
	Score int
	Lines int
}

func (m *MemoryStore) BestScore() int { return m.Score }
func (m *MemoryStore) BestLines() int { return m.Lines }

func (m *MemoryStore) SetBestScore(score int) error {
	m.Score = score
	return nil
}

func (m *MemoryStore) SetBestLines(lines int) error {
	m.Lines = lines
	return nil
}
