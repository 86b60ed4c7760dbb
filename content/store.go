package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultContent embed.FS

var (
	// ErrNotFound is returned when no category matches a slug.
	ErrNotFound = errors.New("content: category not found")
	// ErrInvalidContent is returned when a content file fails to parse or
	// violates the authoring constraints.
	ErrInvalidContent = errors.New("content: invalid content file")
)

// document is the YAML shape of a single content file. Files may carry any
// combination of sections; they are merged in file-name order.
type document struct {
	Categories   []Category     `yaml:"categories"`
	WarningSigns []WarningSign  `yaml:"warning_signs"`
	Help         []HelpResource `yaml:"help"`
}

// Store is an immutable snapshot of the site content. Construct with Load
// or Default; all accessors are safe for concurrent use.
type Store struct {
	categories   []Category
	bySlug       map[string]int
	warningSigns []WarningSign
	help         []HelpResource
}

// Default loads the content embedded into the binary.
func Default() (*Store, error) {
	return Load(defaultContent)
}

// Load reads every data/*.yaml file from fsys and merges the sections in
// file-name order. Categories must have a slug and a title; duplicate slugs
// are rejected.
func Load(fsys fs.FS) (*Store, error) {
	files, err := fs.Glob(fsys, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no data files found", ErrInvalidContent)
	}

	store := &Store{bySlug: make(map[string]int)}
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
		}

		var doc document
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
		}

		for _, cat := range doc.Categories {
			if cat.Slug == "" || cat.Title == "" {
				return nil, fmt.Errorf("%w: %s: category needs slug and title", ErrInvalidContent, name)
			}
			if _, dup := store.bySlug[cat.Slug]; dup {
				return nil, fmt.Errorf("%w: %s: duplicate slug %q", ErrInvalidContent, name, cat.Slug)
			}
			cat.UpdatedDisplay = FormatDate(cat.Updated)
			store.bySlug[cat.Slug] = len(store.categories)
			store.categories = append(store.categories, cat)
		}
		store.warningSigns = append(store.warningSigns, doc.WarningSigns...)
		store.help = append(store.help, doc.Help...)
	}

	return store, nil
}

// Categories returns every scam category in authored order.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Category returns the category for slug, or ErrNotFound.
func (s *Store) Category(slug string) (Category, error) {
	idx, ok := s.bySlug[slug]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return s.categories[idx], nil
}

// WarningSigns returns the general warning-sign list.
func (s *Store) WarningSigns() []WarningSign {
	out := make([]WarningSign, len(s.warningSigns))
	copy(out, s.warningSigns)
	return out
}

// HelpResources returns where residents can get help.
func (s *Store) HelpResources() []HelpResource {
	out := make([]HelpResource, len(s.help))
	copy(out, s.help)
	return out
}
