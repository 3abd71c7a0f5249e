package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mediacat/mtkit/util"
	"github.com/mediacat/mtkit/version"
	"github.com/taigrr/colorhash"
)

// ManifestName is the file inside the store root that records every Put.
const ManifestName = "manifest.json"

// Sentinel errors for package store.
var (
	ErrNotFound        = errors.New("object not found")
	ErrInvalidID       = errors.New("invalid object id")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Store is a flat-file, content-addressed object store. Objects live at
// <root>/<bucket>/<md5>, where bucket spreads objects over 1000
// directories.
type Store struct {
	root     string
	now      func() time.Time
	mu       sync.Mutex
	manifest Manifest
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp manifest entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens the store rooted at root, creating the directory and loading
// an existing manifest if there is one.
func Open(root string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root %s: %w", root, err)
	}
	if err := util.CheckPath(root, true); err != nil {
		return nil, err
	}

	s := &Store{root: root, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	manifestPath := s.manifestPath()
	if util.PathExists(manifestPath, false) {
		m, err := LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		s.manifest = m
	}
	return s, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

func (s *Store) manifestPath() string {
	return filepath.Join(s.root, ManifestName)
}

// ShardFromID returns the bucket directory name for an object id.
// The bucket is derived from a color hash mod 1000.
func ShardFromID(id string) string {
	bucket := colorhash.HashString(id) % 1000
	if bucket < 0 {
		bucket = -bucket
	}
	return fmt.Sprintf("%03d", bucket)
}

// ValidID reports whether id has the shape of an object id: 32 lowercase
// hex characters.
func ValidID(id string) bool {
	if len(id) != 32 {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// Path returns where the object with the given id is stored.
func (s *Store) Path(id string) string {
	return filepath.Join(s.root, ShardFromID(id), id)
}

// Has reports whether an object with id is present.
func (s *Store) Has(id string) bool {
	return ValidID(id) && util.PathExists(s.Path(id), false)
}

// Put stores data under its MD5 id and records name in the manifest.
// Identical contents are written only once. The in-memory manifest only
// changes once the updated manifest has been saved.
func (s *Store) Put(name string, data []byte) (Entry, error) {
	if err := util.RequireString(name); err != nil {
		return Entry{}, fmt.Errorf("put: %w", err)
	}
	id := util.MD5Hex(data)
	path := s.Path(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !util.PathExists(path, false) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Entry{}, fmt.Errorf("failed to create bucket for %s: %w", id, err)
		}
		if err := util.WriteWholeFile(path, data); err != nil {
			return Entry{}, err
		}
	}

	e := Entry{ID: id, Name: name, Size: int64(len(data)), Modified: s.now()}
	next := s.manifest.Clone()
	next.Add(e)
	if err := next.Save(s.manifestPath()); err != nil {
		return Entry{}, err
	}
	s.manifest = next
	return e, nil
}

// PutFile stores the contents of the file at path under its base name.
func (s *Store) PutFile(path string) (Entry, error) {
	if err := util.CheckPath(path, false); err != nil {
		return Entry{}, err
	}
	data, err := util.ReadWholeFile(path)
	if err != nil {
		return Entry{}, err
	}
	return s.Put(filepath.Base(path), data)
}

// Get returns the contents of the object with id.
func (s *Store) Get(id string) ([]byte, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	if !s.Has(id) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return util.ReadWholeFile(s.Path(id))
}

// GetByName returns the latest object stored under name.
func (s *Store) GetByName(name string) (Entry, []byte, error) {
	s.mu.Lock()
	e, ok := s.manifest.Latest(name)
	s.mu.Unlock()
	if !ok {
		return Entry{}, nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	data, err := s.Get(e.ID)
	return e, data, err
}

// Entries returns the latest entry for every name, ordered by name.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	m := s.manifest.Clone()
	s.mu.Unlock()

	m.Collapse()
	m.Sort(ByName)
	out := make([]Entry, 0, m.Len())
	for e := range m.Iterate {
		out = append(out, e)
	}
	return out
}

// Stats summarizes the store contents.
type Stats struct {
	Version      string    `json:"version"`
	EntryCount   int       `json:"entry_count"`
	NameCount    int       `json:"name_count"`
	ObjectCount  int       `json:"object_count"`
	RecordedSize int64     `json:"recorded_size"`
	OldestTS     time.Time `json:"oldest_ts"`
	NewestTS     time.Time `json:"newest_ts"`
}

// Stats generates summary counters from the manifest.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	m := s.manifest.Clone()
	s.mu.Unlock()

	st := Stats{
		Version:     version.GetVersion(),
		EntryCount:  m.Len(),
		NameCount:   m.NameCount(),
		ObjectCount: m.ObjectCount(),
		OldestTS:    m.OldestTS(),
		NewestTS:    m.NewestTS(),
	}
	for e := range m.Iterate {
		st.RecordedSize += e.Size
	}
	return st
}
