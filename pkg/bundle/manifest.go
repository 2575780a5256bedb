// Package bundle resolves a mython.yml manifest's script libraries (local
// paths or git repositories) into source text that can be prepended to a
// program's entry file, so a program can span more than one file even
// though the language itself has no import statement.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed form of mython.yml.
type Manifest struct {
	Name      string       `yaml:"name"`
	Entry     string       `yaml:"entry"`
	Libraries []LibrarySpec `yaml:"libraries"`
}

// LibrarySpec names a library either by local Path or by a git-cloned
// remote (Git + an optional Rev). Rev is a full commit hash or a local
// branch name of the cached clone; tags are not resolved. With Rev empty
// the clone stays on whatever its HEAD points at.
type LibrarySpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
	Git  string `yaml:"git,omitempty"`
	Rev  string `yaml:"rev,omitempty"`
}

// LoadManifest parses a mython.yml file at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mython: reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mython: parsing manifest %s: %w", path, err)
	}
	if m.Entry == "" {
		return nil, fmt.Errorf("mython: manifest %s has no entry", path)
	}
	return &m, nil
}

// EntryPath resolves the manifest's declared entry file relative to the
// manifest's own directory.
func (m *Manifest) EntryPath(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), m.Entry)
}
