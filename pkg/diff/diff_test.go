package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	doc := "shade -70 #000000\nshade 0 #808080\n"
	require.Empty(t, Unified(doc, doc, "a", "b"))

	added, removed := Changed(doc, doc)
	require.Zero(t, added)
	require.Zero(t, removed)
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	before := "hex #FF0000\ncomplement #00FFFF\nopacity 1\n"
	after := "hex #00FF00\ncomplement #FF00FF\nopacity 1\n"

	result := Unified(before, after, "#FF0000", "#00FF00")

	require.True(t, strings.HasPrefix(result, "--- #FF0000\n+++ #00FF00\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, result, "-hex #FF0000\n")
	require.Contains(t, result, "+hex #00FF00\n")
	require.Contains(t, result, "-complement #00FFFF\n")
	require.Contains(t, result, "+complement #FF00FF\n")
	require.Contains(t, result, " opacity 1\n")

	added, removed := Changed(before, after)
	require.Equal(t, 2, added)
	require.Equal(t, 2, removed)
}

func TestUnifiedWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	result := Unified("a\nb", "a\nc", "left", "right")
	require.Contains(t, result, " a\n")
	require.Contains(t, result, "-b\n")
	require.Contains(t, result, "+c\n")
}
