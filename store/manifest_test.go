package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest() (Manifest, time.Time) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	var m Manifest
	m.Add(Entry{ID: "c", Name: "b.mp3", Size: 3, Modified: base.Add(3 * time.Minute)})
	m.Add(Entry{ID: "a", Name: "a.mp3", Size: 1, Modified: base.Add(1 * time.Minute)})
	m.Add(Entry{ID: "d", Name: "a.mp3", Size: 4, Modified: base.Add(4 * time.Minute)})
	m.Add(Entry{ID: "b", Name: "c.mp3", Size: 2, Modified: base.Add(2 * time.Minute)})
	return m, base
}

func TestManifestSortByModified(t *testing.T) {
	m, base := sampleManifest()
	m.SortByModified()

	require.Equal(t, 4, m.Len())
	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, base.Add(time.Duration(i+1)*time.Minute), m.Get(i).Modified)
	}
	assert.Equal(t, base.Add(time.Minute), m.OldestTS())
	assert.Equal(t, base.Add(4*time.Minute), m.NewestTS())
}

func TestManifestSortByName(t *testing.T) {
	m, _ := sampleManifest()
	m.Sort(ByName)

	var names []string
	for e := range m.Iterate {
		names = append(names, e.Name+"/"+e.ID)
	}
	assert.Equal(t, []string{"a.mp3/a", "a.mp3/d", "b.mp3/c", "c.mp3/b"}, names)
}

func TestManifestSortedFlag(t *testing.T) {
	m, _ := sampleManifest()
	m.Sort(ByModified)
	assert.False(t, m.sorted)

	m.SortByModified()
	assert.True(t, m.sorted)

	m.Sort(ByName)
	assert.False(t, m.sorted)
	// OldestTS re-sorts once the flag is cleared.
	assert.Equal(t, "a", m.Clone().Get(0).ID)
	assert.False(t, m.OldestTS().IsZero())
	assert.True(t, m.sorted)
}

func TestManifestCollapse(t *testing.T) {
	m, _ := sampleManifest()
	m.Collapse()

	require.Equal(t, 3, m.Len())
	latest, ok := m.Latest("a.mp3")
	require.True(t, ok)
	assert.Equal(t, "d", latest.ID)
	assert.Equal(t, 3, m.NameCount())
}

func TestManifestLatestTieGoesToLastAdded(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var m Manifest
	m.Add(Entry{ID: "first", Name: "x", Modified: ts})
	m.Add(Entry{ID: "second", Name: "x", Modified: ts})

	e, ok := m.Latest("x")
	require.True(t, ok)
	assert.Equal(t, "second", e.ID)

	m.Collapse()
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "second", m.Get(0).ID)
}

func TestManifestRemoveAndGet(t *testing.T) {
	m, _ := sampleManifest()

	require.NoError(t, m.Remove(0))
	assert.Equal(t, 3, m.Len())
	assert.ErrorIs(t, m.Remove(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Remove(-1), ErrIndexOutOfRange)
	assert.Equal(t, Entry{}, m.Get(99))
}

func TestManifestSaveLoad(t *testing.T) {
	m, _ := sampleManifest()
	path := filepath.Join(t.TempDir(), ManifestName)
	require.NoError(t, m.Save(path))

	loaded, err := LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, m.Len(), loaded.Len())
	for i := 0; i < m.Len(); i++ {
		assert.True(t, m.Get(i).Modified.Equal(loaded.Get(i).Modified))
		assert.Equal(t, m.Get(i).ID, loaded.Get(i).ID)
	}
	assert.Equal(t, 4, loaded.ObjectCount())
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestManifestCloneIsIndependent(t *testing.T) {
	m, _ := sampleManifest()
	c := m.Clone()
	c.Add(Entry{ID: "z", Name: "z"})
	c.SortByModified()

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, "c", m.Get(0).ID)
}
