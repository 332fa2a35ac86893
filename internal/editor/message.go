package editor

import "github.com/ha1tch/pix/internal/grid"

// Message is an input event delivered to the editor by a frontend.
type Message interface {
	message()
}

// ChangeColor sets the active color from a color input's value.
type ChangeColor struct {
	Value string
}

// Clear erases the whole canvas.
type Clear struct{}

// Context erases the cell under the pointer (right click).
type Context struct{}

// Draw paints the cell under the pointer and starts a stroke.
type Draw struct{}

// Release ends the current stroke.
type Release struct{}

// Move reports the pointer position in client coordinates together with
// the canvas's client rectangle.
type Move struct {
	ClientX float64
	ClientY float64
	Rect    grid.Rect
}

// Redo restores the most recently undone cell.
type Redo struct{}

// Undo removes the most recently painted cell.
type Undo struct{}

func (ChangeColor) message() {}
func (Clear) message()       {}
func (Context) message()     {}
func (Draw) message()        {}
func (Release) message()     {}
func (Move) message()        {}
func (Redo) message()        {}
func (Undo) message()        {}
