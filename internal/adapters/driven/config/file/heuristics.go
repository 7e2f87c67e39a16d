// Package file provides file-backed configuration adapters.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Finn-TH/scribe/internal/core/domain"
	"github.com/Finn-TH/scribe/internal/core/ports/driven"
)

// Ensure HeuristicsStore implements the interface.
var _ driven.HeuristicsStore = (*HeuristicsStore)(nil)

// HeuristicsStore is a TOML-backed implementation of
// driven.HeuristicsStore. A missing file yields the built-in defaults;
// fields absent from the file fall back to their defaults individually,
// so a deployment can override just the tables it cares about.
type HeuristicsStore struct {
	filePath string
}

// heuristicsFile is the on-disk TOML shape.
type heuristicsFile struct {
	RejectPrefixes  []string `toml:"reject_prefixes"`
	CompanySuffixes []string `toml:"company_suffixes"`
	MaxNameLength   int      `toml:"max_name_length"`
	DefaultPages    []int    `toml:"default_pages"`
}

// NewHeuristicsStore creates a store reading from path.
// If path is empty, it defaults to ~/.scribe/heuristics.toml.
func NewHeuristicsStore(path string) (*HeuristicsStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".scribe", "heuristics.toml")
	}
	return &HeuristicsStore{filePath: path}, nil
}

// Load returns the effective heuristics.
func (s *HeuristicsStore) Load() (domain.Heuristics, error) {
	defaults := domain.DefaultHeuristics()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return domain.Heuristics{}, fmt.Errorf("read heuristics: %w", err)
	}

	var parsed heuristicsFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return domain.Heuristics{}, fmt.Errorf("parse heuristics: %w", err)
	}

	h := defaults
	if len(parsed.RejectPrefixes) > 0 {
		h.RejectPrefixes = parsed.RejectPrefixes
	}
	if len(parsed.CompanySuffixes) > 0 {
		h.CompanySuffixes = parsed.CompanySuffixes
	}
	if parsed.MaxNameLength > 0 {
		h.MaxNameLength = parsed.MaxNameLength
	}
	if len(parsed.DefaultPages) > 0 {
		h.DefaultPages = parsed.DefaultPages
	}
	return h, nil
}

// Save persists the heuristics to the store's path, creating the parent
// directory when needed. Useful for writing out a template to edit.
func (s *HeuristicsStore) Save(h domain.Heuristics) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(heuristicsFile{
		RejectPrefixes:  h.RejectPrefixes,
		CompanySuffixes: h.CompanySuffixes,
		MaxNameLength:   h.MaxNameLength,
		DefaultPages:    h.DefaultPages,
	})
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}
