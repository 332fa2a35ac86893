package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/pix/internal/grid"
)

func at(x, y float64) grid.Position { return grid.Position{X: x, Y: y} }

func filled(t *testing.T, n int) *History {
	t.Helper()
	h := New()
	for i := 0; i < n; i++ {
		h.Draw(at(float64(i*32), 0), "#000000")
	}
	require.Equal(t, n, h.Len())
	return h
}

func TestDrawKeepsOrder(t *testing.T) {
	h := New()
	h.Draw(at(0, 0), "#ff0000")
	h.Draw(at(32, 0), "#00ff00")
	h.Draw(at(0, 0), "#0000ff")

	assert.Equal(t, []Entry{
		{Position: at(0, 0), Color: "#ff0000"},
		{Position: at(32, 0), Color: "#00ff00"},
		{Position: at(0, 0), Color: "#0000ff"},
	}, h.Entries())
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestUndoEmpty(t *testing.T) {
	h := New()
	_, err := h.Undo()
	assert.ErrorIs(t, err, ErrEmptyHistory)
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Undone())
}

func TestRedoEmpty(t *testing.T) {
	h := filled(t, 2)
	before := h.Entries()

	_, err := h.Redo()
	assert.ErrorIs(t, err, ErrEmptyRedo)
	assert.Equal(t, before, h.Entries())
}

func TestUndoRedoRestoresHistory(t *testing.T) {
	h := filled(t, 5)
	before := h.Entries()

	undone, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, before[4], undone)
	assert.Equal(t, before[:4], h.Entries())

	redone, err := h.Redo()
	require.NoError(t, err)
	assert.Equal(t, undone, redone)
	assert.Equal(t, before, h.Entries())
	assert.False(t, h.CanRedo())
}

func TestUndoAllReversesIntoRedo(t *testing.T) {
	h := filled(t, 4)
	before := h.Entries()

	for i := 0; i < len(before); i++ {
		_, err := h.Undo()
		require.NoError(t, err)
	}

	assert.Zero(t, h.Len())
	undone := h.Undone()
	require.Len(t, undone, len(before))
	for i, e := range undone {
		assert.Equal(t, before[len(before)-1-i], e)
	}

	_, err := h.Undo()
	assert.ErrorIs(t, err, ErrEmptyHistory)

	for range before {
		_, err := h.Redo()
		require.NoError(t, err)
	}
	assert.Equal(t, before, h.Entries())
}

func TestDrawDiscardsRedo(t *testing.T) {
	h := filled(t, 3)
	_, err := h.Undo()
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	h.Draw(at(96, 96), "#123456")

	assert.False(t, h.CanRedo())
	_, err = h.Redo()
	assert.ErrorIs(t, err, ErrEmptyRedo)
	assert.Equal(t, 3, h.Len())
}

func TestClear(t *testing.T) {
	h := filled(t, 3)
	_, err := h.Undo()
	require.NoError(t, err)

	h.Clear()
	assert.Zero(t, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Draw(at(64, 64), "#abcdef")
	assert.Equal(t, []Entry{{Position: at(64, 64), Color: "#abcdef"}}, h.Entries())
}

func TestErase(t *testing.T) {
	h := New()
	h.Draw(at(0, 0), "#ff0000")
	h.Draw(at(32, 0), "#00ff00")
	h.Draw(at(0, 0), "#0000ff")
	h.Draw(at(64, 0), "#ffffff")

	removed := h.Erase(at(0, 0))
	assert.Equal(t, 2, removed)
	assert.Equal(t, []Entry{
		{Position: at(32, 0), Color: "#00ff00"},
		{Position: at(64, 0), Color: "#ffffff"},
	}, h.Entries())

	assert.Zero(t, h.Erase(at(500, 500)))
	assert.Equal(t, 2, h.Len())
}

func TestEraseLeavesRedo(t *testing.T) {
	h := filled(t, 3)
	undone, err := h.Undo()
	require.NoError(t, err)

	h.Erase(at(0, 0))
	assert.Equal(t, []Entry{undone}, h.Undone())
}

func TestEntriesIsACopy(t *testing.T) {
	h := filled(t, 2)
	entries := h.Entries()
	entries[0].Color = "#ffffff"
	assert.Equal(t, "#000000", h.Entries()[0].Color)
}
