// Package cache persists the two inventory documents to disk and decides
// when they are stale.
package cache

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// On-disk file names, kept compatible with existing deployments.
const (
	hostsFile = "ansible-hammer.cache" // host name -> attribute record
	indexFile = "ansible-hammer.index" // group name -> host names
)

// Store reads and writes the two cache files in a directory.
// Both files are always written in the same refresh, so on disk they are
// either both present or the cache counts as invalid.
type Store struct {
	fs     afero.Fs
	dir    string
	maxAge time.Duration
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets a custom filesystem, e.g. afero.NewMemMapFs() in tests.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// WithNow sets the clock used for staleness checks.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store for dir. Entries older than maxAge are stale.
func New(dir string, maxAge time.Duration, options ...Option) *Store {
	s := &Store{
		fs:     afero.NewOsFs(),
		dir:    dir,
		maxAge: maxAge,
		now:    time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Store) hostsPath() string { return filepath.Join(s.dir, hostsFile) }
func (s *Store) indexPath() string { return filepath.Join(s.dir, indexFile) }

// Valid reports whether both cache files exist and the index file is
// younger than maxAge. Any stat error counts as invalid.
func (s *Store) Valid() bool {
	info, err := s.fs.Stat(s.indexPath())
	if err != nil {
		return false
	}
	if !info.ModTime().Add(s.maxAge).After(s.now()) {
		return false
	}
	if _, err := s.fs.Stat(s.hostsPath()); err != nil {
		return false
	}
	return true
}

// Load reads and decodes both cache files.
func (s *Store) Load() (map[string][]string, map[string]map[string]any, error) {
	var groups map[string][]string
	if err := s.readJSON(s.indexPath(), &groups); err != nil {
		return nil, nil, err
	}
	var hostvars map[string]map[string]any
	if err := s.readJSON(s.hostsPath(), &hostvars); err != nil {
		return nil, nil, err
	}
	return groups, hostvars, nil
}

// Save writes both cache files. The index file is written last so its
// modification time, which drives Valid, reflects the completed refresh.
func (s *Store) Save(hostvars map[string]map[string]any, groups map[string][]string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", s.dir, err)
	}
	if err := s.writeJSON(s.hostsPath(), hostvars); err != nil {
		return err
	}
	return s.writeJSON(s.indexPath(), groups)
}

func (s *Store) readJSON(path string, v interface{}) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("reading cache file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing cache file %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON via a temp file in the same
// directory followed by a rename, so a concurrent reader never observes
// a partial document.
func (s *Store) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	tmp, err := afero.TempFile(s.fs, s.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp.Name(), path); err != nil {
		s.fs.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
