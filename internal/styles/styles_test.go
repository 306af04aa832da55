package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_EmbeddedDefaults(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Sorted by name.
	assert.Equal(t, "Classic Serif", list[0].Name)
	assert.Equal(t, "Clean Blue", list[1].Name)
	assert.Equal(t, "Modern Grey", list[2].Name)
	for _, s := range list {
		assert.NotEmpty(t, s.AuthorLink)
		assert.NotEmpty(t, s.FileName)
	}
}

func TestNewManager_MissingDirectory(t *testing.T) {
	_, err := NewManager("/nonexistent/styles")
	require.Error(t, err)
}

func TestList_CustomDirectory(t *testing.T) {
	dir := t.TempDir()

	writeStyle := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	writeStyle("ok.css", "/* My Style $ https://example.com/me */\nbody {}")
	writeStyle("no_metadata.css", "body { color: red; }")
	writeStyle("no_author.css", "/* Orphan Style */\nbody {}")
	writeStyle("notes.txt", "/* Not CSS $ https://example.com */")

	m, err := NewManager(dir)
	require.NoError(t, err)

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "My Style", list[0].Name)
	assert.Equal(t, "ok.css", list[0].FileName)
	assert.Equal(t, "https://example.com/me", list[0].AuthorLink)
}

func TestResolve(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		s, err := m.Resolve("Clean Blue")
		require.NoError(t, err)
		assert.Equal(t, "clean_blue.css", s.FileName)
	})

	t.Run("case insensitive", func(t *testing.T) {
		s, err := m.Resolve("clean blue")
		require.NoError(t, err)
		assert.Equal(t, "Clean Blue", s.Name)
	})

	t.Run("empty name picks first", func(t *testing.T) {
		s, err := m.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, "Classic Serif", s.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := m.Resolve("Neon Pink")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCSS(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	css, err := m.CSS("Modern Grey")
	require.NoError(t, err)
	assert.Contains(t, css, "font-family")
}

func TestFormatChoices(t *testing.T) {
	choices := FormatChoices([]Style{
		{Name: "A", AuthorLink: "https://example.com/a"},
		{Name: "B", AuthorLink: "https://example.com/b"},
	})
	require.Len(t, choices, 2)
	assert.Equal(t, "A (style author -> https://example.com/a)", choices[0])
}
