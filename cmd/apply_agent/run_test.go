package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/apply-agent/internal/output"
)

func readerFor(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestResolveDocuments(t *testing.T) {
	t.Run("flag values", func(t *testing.T) {
		docs, err := resolveDocuments(readerFor(""), "resume")
		require.NoError(t, err)
		assert.Equal(t, []output.DocumentKind{output.KindResume}, docs)

		docs, err = resolveDocuments(readerFor(""), "cover-letter")
		require.NoError(t, err)
		assert.Equal(t, []output.DocumentKind{output.KindCoverLetter}, docs)

		docs, err = resolveDocuments(readerFor(""), "both")
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		_, err := resolveDocuments(readerFor(""), "everything")
		require.Error(t, err)
	})

	t.Run("prompted choice", func(t *testing.T) {
		docs, err := resolveDocuments(readerFor("1\n"), "")
		require.NoError(t, err)
		assert.Equal(t, []output.DocumentKind{output.KindResume}, docs)
	})

	t.Run("empty prompt answer defaults to both", func(t *testing.T) {
		docs, err := resolveDocuments(readerFor("\n"), "")
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("invalid prompt answer", func(t *testing.T) {
		_, err := resolveDocuments(readerFor("9\n"), "")
		require.Error(t, err)
	})
}

func TestPromptStyle(t *testing.T) {
	t.Run("numeric choice", func(t *testing.T) {
		// Built-in styles sorted by name; 2 is Clean Blue.
		name, err := promptStyle(readerFor("2\n"), "")
		require.NoError(t, err)
		assert.Equal(t, "Clean Blue", name)
	})

	t.Run("empty keeps first", func(t *testing.T) {
		name, err := promptStyle(readerFor("\n"), "")
		require.NoError(t, err)
		assert.Equal(t, "Classic Serif", name)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := promptStyle(readerFor("99\n"), "")
		require.Error(t, err)
	})
}

func TestPromptLine(t *testing.T) {
	line, err := promptLine(readerFor("  hello \n"), "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	// EOF without newline still returns the input.
	line, err = promptLine(readerFor("no-newline"), "> ")
	require.NoError(t, err)
	assert.Equal(t, "no-newline", line)
}
