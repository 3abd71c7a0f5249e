package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mediacat/mtkit/util"
)

type (
	Entry struct {
		ID       string    `json:"id"`       // md5 of the contents
		Name     string    `json:"name"`     // name the object was stored under
		Size     int64     `json:"size"`     // size of the object in bytes
		Modified time.Time `json:"modified"` // time the entry was recorded
	}
	Manifest struct {
		entries []Entry
		sorted  bool
	}
)

// ByModified orders entries oldest first.
func ByModified(a, b Entry) int { return a.Modified.Compare(b.Modified) }

// ByName orders entries by name, then by ID.
func ByName(a, b Entry) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	var aux struct {
		Entries []Entry `json:"entries"`
		Sorted  bool    `json:"sorted"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.entries = aux.Entries
	m.sorted = aux.Sorted
	return nil
}

func (m Manifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entries []Entry `json:"entries"`
		Sorted  bool    `json:"sorted"`
	}{
		Entries: m.entries,
		Sorted:  m.sorted,
	})
}

func (m Manifest) Iterate(yield func(Entry) bool) {
	for _, entry := range m.entries {
		if !yield(entry) {
			return
		}
	}
}

func (m *Manifest) Add(e Entry) {
	m.sorted = false
	m.entries = append(m.entries, e)
}

func (m *Manifest) Remove(index int) error {
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("remove %d: %w", index, ErrIndexOutOfRange)
	}
	m.entries = slices.Delete(m.entries, index, index+1)
	return nil
}

func (m Manifest) Get(index int) Entry {
	if index < 0 || index >= len(m.entries) {
		return Entry{}
	}
	return m.entries[index]
}

func (m Manifest) Len() int {
	return len(m.entries)
}

// Sort orders the entries with cmp and clears the sorted flag, even for
// ByModified. Use SortByModified to mark the manifest as sorted oldest first.
func (m *Manifest) Sort(cmp func(a, b Entry) int) {
	util.Sort(m.entries, cmp)
	m.sorted = false
}

// SortByModified orders entries oldest first.
func (m *Manifest) SortByModified() {
	util.Sort(m.entries, ByModified)
	m.sorted = true
}

// Clone returns an independent copy of the manifest.
func (m Manifest) Clone() Manifest {
	return Manifest{entries: slices.Clone(m.entries), sorted: m.sorted}
}

// Latest returns the most recent entry recorded under name.
func (m Manifest) Latest(name string) (Entry, bool) {
	var (
		latest Entry
		found  bool
	)
	for e := range m.Iterate {
		if e.Name != name {
			continue
		}
		if !found || !e.Modified.Before(latest.Modified) {
			latest, found = e, true
		}
	}
	return latest, found
}

// Collapse keeps only the most recent entry for each name. Ties go to the
// entry added last.
func (m *Manifest) Collapse() {
	if len(m.entries) <= 1 {
		return
	}

	latestEntries := make(map[string]Entry)
	for _, entry := range m.entries {
		if prev, ok := latestEntries[entry.Name]; ok && entry.Modified.Before(prev.Modified) {
			continue
		}
		latestEntries[entry.Name] = entry
	}

	m.entries = make([]Entry, 0, len(latestEntries))
	for _, entry := range latestEntries {
		m.entries = append(m.entries, entry)
	}
	m.SortByModified()
}

// OldestTS returns the modification time of the oldest entry.
func (m *Manifest) OldestTS() time.Time {
	if m.Len() == 0 {
		return time.Time{}
	}
	if !m.sorted {
		m.SortByModified()
	}
	return m.Get(0).Modified
}

// Does the opposite of OldestTS
func (m *Manifest) NewestTS() time.Time {
	if m.Len() == 0 {
		return time.Time{}
	}
	if !m.sorted {
		m.SortByModified()
	}
	return m.Get(m.Len() - 1).Modified
}

// NameCount returns the number of distinct names in the manifest.
func (m Manifest) NameCount() int {
	names := make(map[string]bool)
	for e := range m.Iterate {
		names[e.Name] = true
	}
	return len(names)
}

// ObjectCount returns the number of distinct stored objects.
func (m Manifest) ObjectCount() int {
	ids := make(map[string]bool)
	for e := range m.Iterate {
		ids[e.ID] = true
	}
	return len(ids)
}

// Save writes the manifest as JSON to path.
func (m Manifest) Save(path string) error {
	return util.WriteJSONFile(path, m)
}

// LoadManifest reads a manifest previously written with Save.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := util.ReadWholeFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}
