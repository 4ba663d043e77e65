package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(t *testing.T) *Collection[note] {
	t.Helper()
	return NewCollection[note](filepath.Join(t.TempDir(), "notes.json"), "notes")
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	c := newTestCollection(t)

	items := c.Load()
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	c := newTestCollection(t)

	saved := []note{{ID: 1, Name: "첫번째"}, {ID: 2, Name: "second"}}
	require.NoError(t, c.Save(saved))

	loaded := c.Load()
	assert.Equal(t, saved, loaded)
}

func TestLoadIsIdempotent(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, c.Save([]note{{ID: 7, Name: "seven"}}))

	first := c.Load()
	second := c.Load()
	assert.Equal(t, first, second)
}

func TestSaveCreatesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "notes.json")
	c := NewCollection[note](path, "notes")

	require.NoError(t, c.Save([]note{{ID: 1, Name: "a"}}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMalformedDocumentTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := NewCollection[note](path, "notes")
	assert.Empty(t, c.Load())
}

func TestMalformedArrayTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notes": "oops"}`), 0o644))

	c := NewCollection[note](path, "notes")
	assert.Empty(t, c.Load())
}

func TestUpdateAppends(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Update(func(items []note) []note {
		return append(items, note{ID: 1, Name: "a"})
	}))
	require.NoError(t, c.Update(func(items []note) []note {
		return append(items, note{ID: 2, Name: "b"})
	}))

	loaded := c.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, 2, loaded[1].ID)
}
