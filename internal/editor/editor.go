// Package editor is the pixel editor component. It owns the settings,
// the pointer position and the paint history, and redraws a mounted
// surface as messages arrive from a frontend.
//
// An Editor is driven from a single event loop and is not safe for
// concurrent use.
package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ha1tch/pix/internal/canvas"
	"github.com/ha1tch/pix/internal/grid"
	"github.com/ha1tch/pix/internal/history"
	"github.com/ha1tch/pix/internal/settings"
)

// ErrNoCanvas is returned when an action needs the drawing surface before
// one has been mounted.
var ErrNoCanvas = errors.New("unable to fetch canvas")

// Editor is the pixel editor state.
type Editor struct {
	surface  canvas.Surface
	pixels   *history.History
	position grid.Position
	settings settings.Settings
	log      logrus.FieldLogger

	stroking bool
	painted  grid.Position
}

// New creates an editor with empty history. A nil logger uses the
// logrus standard logger.
func New(s settings.Settings, log logrus.FieldLogger) *Editor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Editor{
		pixels:   history.New(),
		settings: s,
		log:      log.WithField("component", "editor"),
	}
}

// Mount attaches the drawing surface and draws the empty grid, as on the
// first render of the component. Any existing history is repainted.
func (e *Editor) Mount(s canvas.Surface) {
	e.surface = s
	e.redraw()
}

// Unmount detaches the drawing surface.
func (e *Editor) Unmount() {
	e.surface = nil
	e.stroking = false
}

// Update applies msg and reports whether the action succeeded and the
// view should re-render. Failed actions are logged and leave the editor
// unchanged.
func (e *Editor) Update(msg Message) bool {
	if err := e.Apply(msg); err != nil {
		e.log.WithError(err).WithField("message", fmt.Sprintf("%T", msg)).Warn("Action aborted")
		return false
	}
	return true
}

// Apply applies msg and returns any error.
func (e *Editor) Apply(msg Message) error {
	switch m := msg.(type) {
	case ChangeColor:
		return e.ChangeColor(m.Value)
	case Clear:
		return e.Clear()
	case Context:
		return e.ClearPixel()
	case Draw:
		return e.DrawPixel()
	case Release:
		e.stroking = false
		return nil
	case Move:
		return e.UpdatePosition(m.ClientX, m.ClientY, m.Rect)
	case Redo:
		return e.Redo()
	case Undo:
		return e.Undo()
	}
	return fmt.Errorf("unknown message %T", msg)
}

// ChangeColor sets the active color.
func (e *Editor) ChangeColor(hex string) error {
	if err := e.settings.SetColor(hex); err != nil {
		return err
	}
	e.log.WithField("color", e.settings.Color).Debug("Color changed")
	return nil
}

// Clear empties the history and the redo list and redraws the grid.
func (e *Editor) Clear() error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	e.pixels.Clear()
	e.stroking = false
	e.redraw()
	e.log.Debug("Canvas cleared")
	return nil
}

// ClearPixel erases every entry at the current position.
func (e *Editor) ClearPixel() error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	n := e.pixels.Erase(e.position)
	e.redraw()
	e.log.WithFields(logrus.Fields{
		"x":       e.position.X,
		"y":       e.position.Y,
		"removed": n,
	}).Debug("Pixel erased")
	return nil
}

// DrawPixel paints the current position in the active color and starts a
// stroke. While the stroke lasts, moving onto another cell paints it too.
func (e *Editor) DrawPixel() error {
	if err := e.paint(); err != nil {
		return err
	}
	e.stroking = true
	return nil
}

// UpdatePosition snaps the pointer to a cell. During a stroke, entering a
// new cell on the canvas paints it; cells off the canvas are skipped.
func (e *Editor) UpdatePosition(clientX, clientY float64, rect grid.Rect) error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	e.position.Update(clientX, clientY, rect,
		float64(e.settings.CellWidth), float64(e.settings.CellHeight))

	if e.stroking && e.position != e.painted && e.onCanvas(e.position) {
		return e.paint()
	}
	return nil
}

// Undo moves the most recent entry to the redo list.
func (e *Editor) Undo() error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	entry, err := e.pixels.Undo()
	if err != nil {
		return err
	}
	e.redraw()
	e.log.WithFields(entryFields(entry, e.pixels.Len())).Debug("Undo")
	return nil
}

// Redo moves the most recently undone entry back onto the history.
func (e *Editor) Redo() error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	entry, err := e.pixels.Redo()
	if err != nil {
		return err
	}
	e.redraw()
	e.log.WithFields(entryFields(entry, e.pixels.Len())).Debug("Redo")
	return nil
}

// Position returns the current snapped pointer position.
func (e *Editor) Position() grid.Position { return e.position }

// Settings returns the current settings.
func (e *Editor) Settings() settings.Settings { return e.settings }

// History returns the paint history. Callers must not mutate it.
func (e *Editor) History() *history.History { return e.pixels }

// Stroking reports whether a pointer button is held down.
func (e *Editor) Stroking() bool { return e.stroking }

// CanUndo reports whether the undo control should be shown.
func (e *Editor) CanUndo() bool { return e.pixels.CanUndo() }

// CanRedo reports whether the redo control should be shown.
func (e *Editor) CanRedo() bool { return e.pixels.CanRedo() }

func (e *Editor) paint() error {
	if e.surface == nil {
		return ErrNoCanvas
	}
	e.pixels.Draw(e.position, e.settings.Color)
	e.painted = e.position
	e.redraw()
	e.log.WithFields(entryFields(history.Entry{Position: e.position, Color: e.settings.Color}, e.pixels.Len())).
		Debug("Pixel drawn")
	return nil
}

func (e *Editor) onCanvas(p grid.Position) bool {
	return grid.InBounds(p, float64(e.settings.CanvasWidth), float64(e.settings.CanvasHeight))
}

func (e *Editor) redraw() {
	if e.surface == nil {
		return
	}
	canvas.Redraw(e.surface, e.settings.Grid(), e.pixels.Entries())
}

func entryFields(entry history.Entry, n int) logrus.Fields {
	return logrus.Fields{
		"x":       entry.Position.X,
		"y":       entry.Position.Y,
		"color":   entry.Color,
		"entries": n,
	}
}
