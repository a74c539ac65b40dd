// Package seed loads fixture documents from YAML into a document store.
package seed

import (
	"fmt"
	"os"

	"github.com/docstore/docstore/internal/document"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a seed file.
type File struct {
	Documents []document.Document `yaml:"documents"`
}

// Saver is the subset of the store that seeding needs.
type Saver interface {
	Save(d *document.Document) (*document.Document, error)
}

// Parse decodes seed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &f, nil
}

// Load reads and parses the seed file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", path, err)
	}
	return Parse(data)
}

// Apply saves every document in file order and returns how many were saved.
func Apply(s Saver, f *File) (int, error) {
	for i := range f.Documents {
		if _, err := s.Save(&f.Documents[i]); err != nil {
			return i, fmt.Errorf("seeding document %d: %w", i, err)
		}
	}
	return len(f.Documents), nil
}

// LoadInto is Load followed by Apply.
func LoadInto(s Saver, path string) (int, error) {
	f, err := Load(path)
	if err != nil {
		return 0, err
	}
	return Apply(s, f)
}
