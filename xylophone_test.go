package xylophone_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/xylophone"
)

func TestNotes(t *testing.T) {
	assert.Equal(t, []xylophone.Note{"A", "B", "C", "D", "E", "F", "G"}, xylophone.Notes)
}

func TestColorIsDistinctForEveryNote(t *testing.T) {
	seen := make(map[color.NRGBA]xylophone.Note)
	for _, n := range xylophone.Notes {
		c := xylophone.Color(n)
		assert.NotEqual(t, xylophone.FallbackColor, c, "note %v got the fallback color", n)
		if other, ok := seen[c]; ok {
			t.Errorf("notes %v and %v share color %v", other, n, c)
		}
		seen[c] = n
	}
}

func TestColorFallback(t *testing.T) {
	for _, n := range []xylophone.Note{"", "H", "a", "AB", "Ж"} {
		assert.Equal(t, xylophone.FallbackColor, xylophone.Color(n), "note %q", n)
	}
}

func TestColorValues(t *testing.T) {
	// red, orange, yellow, green, indigo, blue, purple
	assert.Greater(t, xylophone.Color("A").R, xylophone.Color("A").G)
	assert.Equal(t, color.NRGBA{R: 0, G: 122, B: 255, A: 255}, xylophone.Color("F"))
	for _, n := range xylophone.Notes {
		assert.Equal(t, uint8(255), xylophone.Color(n).A)
	}
}

func TestNoteIndex(t *testing.T) {
	for i, n := range xylophone.Notes {
		assert.Equal(t, i, xylophone.NoteIndex(n))
	}
	assert.Equal(t, -1, xylophone.NoteIndex("H"))
}
