// Package history keeps the ordered record of painted cells and the
// entries that were undone, so they can be redone.
package history

import (
	"errors"

	"github.com/ha1tch/pix/internal/grid"
)

var (
	// ErrEmptyHistory is returned by Undo when nothing has been drawn.
	ErrEmptyHistory = errors.New("no pixels to undo")
	// ErrEmptyRedo is returned by Redo when nothing has been undone.
	ErrEmptyRedo = errors.New("no pixels to redo")
)

// Entry is a single painted cell.
type Entry struct {
	Position grid.Position
	Color    string
}

// History is the paint history of one canvas. The zero value is empty
// and ready to use. A History is not safe for concurrent use.
type History struct {
	pixels []Entry
	redo   []Entry
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Draw appends a painted cell. Starting a new stroke discards anything
// that was undone.
func (h *History) Draw(pos grid.Position, color string) {
	h.pixels = append(h.pixels, Entry{Position: pos, Color: color})
	h.redo = h.redo[:0]
}

// Undo moves the most recent entry onto the redo list and returns it.
func (h *History) Undo() (Entry, error) {
	if len(h.pixels) == 0 {
		return Entry{}, ErrEmptyHistory
	}
	last := h.pixels[len(h.pixels)-1]
	h.pixels = h.pixels[:len(h.pixels)-1]
	h.redo = append(h.redo, last)
	return last, nil
}

// Redo moves the most recently undone entry back onto the history and
// returns it.
func (h *History) Redo() (Entry, error) {
	if len(h.redo) == 0 {
		return Entry{}, ErrEmptyRedo
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.pixels = append(h.pixels, last)
	return last, nil
}

// Clear empties both the history and the redo list.
func (h *History) Clear() {
	h.pixels = nil
	h.redo = nil
}

// Erase removes every entry painted at pos, keeping the order of the
// rest, and returns how many were removed. The redo list is left alone.
func (h *History) Erase(pos grid.Position) int {
	kept := h.pixels[:0]
	for _, e := range h.pixels {
		if e.Position != pos {
			kept = append(kept, e)
		}
	}
	removed := len(h.pixels) - len(kept)
	// Zero the dropped tail.
	for i := len(kept); i < len(h.pixels); i++ {
		h.pixels[i] = Entry{}
	}
	h.pixels = kept
	return removed
}

// Entries returns a copy of the history in draw order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.pixels...)
}

// Undone returns a copy of the redo list; the last element is the next
// entry Redo restores.
func (h *History) Undone() []Entry {
	return append([]Entry(nil), h.redo...)
}

// Len returns the number of entries in the history.
func (h *History) Len() int { return len(h.pixels) }

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.pixels) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
