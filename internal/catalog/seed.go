package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DemoBook is the record a fresh catalog starts with when demo seeding is on.
var DemoBook = Book{ID: 123, Title: "A Tale of Two Cities", Author: "Charles Dickens"}

type seedFile struct {
	Books []Book `yaml:"books"`
}

// LoadSeedFile reads a YAML document of the form
//
//	books:
//	  - {id: 1, title: Dune, author: Frank Herbert}
func LoadSeedFile(path string) ([]Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return f.Books, nil
}

// Seed inserts books through the service so they are validated like any
// other insert. A duplicate or invalid record aborts seeding.
func (s *Service) Seed(books []Book) error {
	for _, b := range books {
		b = normalizeBook(b)
		if err := validateBook(b); err != nil {
			return fmt.Errorf("seed book %d: %w", b.ID, err)
		}
		if err := s.Store.Insert(b); err != nil {
			return fmt.Errorf("seed book %d: %w", b.ID, err)
		}
	}
	return nil
}
