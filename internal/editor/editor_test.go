package editor

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/pix/internal/canvas"
	"github.com/ha1tch/pix/internal/grid"
	"github.com/ha1tch/pix/internal/history"
	"github.com/ha1tch/pix/internal/settings"
)

var rect = grid.Rect{Left: 10, Top: 10, Width: 800, Height: 640}

func newMounted(t *testing.T) (*Editor, *canvas.Recorder, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	e := New(settings.Default(), log)
	rec := &canvas.Recorder{}
	e.Mount(rec)
	return e, rec, hook
}

// moveTo points at the cell whose top-left corner is (x, y).
func moveTo(x, y float64) Move {
	return Move{ClientX: x + rect.Left + 16, ClientY: y + rect.Top + 16, Rect: rect}
}

func TestMountDrawsGrid(t *testing.T) {
	_, rec, _ := newMounted(t)
	assert.Equal(t, 1, rec.Count("resize"))
	assert.Equal(t, 1, rec.Count("stroke"))
	assert.Zero(t, rec.Count("fillRect"))
}

func TestMoveSnapsPosition(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(Move{ClientX: 50, ClientY: 60, Rect: rect}))
	assert.Equal(t, grid.Position{X: 32, Y: 32}, e.Position())
}

func TestDrawUsesPositionAndColor(t *testing.T) {
	e, rec, _ := newMounted(t)
	require.True(t, e.Update(ChangeColor{Value: "#FF0000"}))
	require.True(t, e.Update(moveTo(64, 32)))
	rec.Reset()

	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Release{}))

	assert.Equal(t, []history.Entry{{Position: grid.Position{X: 64, Y: 32}, Color: "#ff0000"}}, e.History().Entries())
	assert.Equal(t, canvas.Op{Name: "fillRect", Args: []float64{64, 32, 32, 32}}, rec.Ops[len(rec.Ops)-1])
	assert.True(t, e.CanUndo())
	assert.False(t, e.CanRedo())
}

func TestStrokePaintsEachNewCellOnce(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))
	assert.True(t, e.Stroking())

	// jitter inside the same cell
	require.True(t, e.Update(Move{ClientX: 20, ClientY: 20, Rect: rect}))
	require.True(t, e.Update(moveTo(32, 0)))
	require.True(t, e.Update(moveTo(32, 0)))
	require.True(t, e.Update(moveTo(64, 0)))
	require.True(t, e.Update(Release{}))
	require.True(t, e.Update(moveTo(96, 0)))

	var xs []float64
	for _, entry := range e.History().Entries() {
		xs = append(xs, entry.Position.X)
	}
	assert.Equal(t, []float64{0, 32, 64}, xs)
	assert.False(t, e.Stroking())
}

func TestUndoRedo(t *testing.T) {
	e, _, _ := newMounted(t)
	for _, x := range []float64{0, 32, 64} {
		require.True(t, e.Update(moveTo(x, 0)))
		require.True(t, e.Update(Draw{}))
		require.True(t, e.Update(Release{}))
	}
	before := e.History().Entries()

	require.True(t, e.Update(Undo{}))
	assert.Equal(t, before[:2], e.History().Entries())
	assert.True(t, e.CanRedo())

	require.True(t, e.Update(Redo{}))
	assert.Equal(t, before, e.History().Entries())
	assert.False(t, e.CanRedo())
}

func TestEmptyUndoRedoAbort(t *testing.T) {
	e, rec, hook := newMounted(t)
	rec.Reset()

	assert.False(t, e.Update(Undo{}))
	assert.ErrorIs(t, e.Apply(Undo{}), history.ErrEmptyHistory)
	assert.False(t, e.Update(Redo{}))
	assert.ErrorIs(t, e.Apply(Redo{}), history.ErrEmptyRedo)

	assert.Empty(t, rec.Ops)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestClearEmptiesBoth(t *testing.T) {
	e, rec, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(moveTo(32, 0)))
	require.True(t, e.Update(Release{}))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Undo{}))
	rec.Reset()

	require.True(t, e.Update(Clear{}))
	assert.Zero(t, e.History().Len())
	assert.False(t, e.CanRedo())
	assert.False(t, e.Stroking())
	assert.Zero(t, rec.Count("fillRect"))
	assert.Equal(t, 1, rec.Count("stroke"))
}

func TestContextErasesCurrentCell(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Release{}))
	require.True(t, e.Update(moveTo(32, 0)))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Release{}))

	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Context{}))

	assert.Equal(t, []history.Entry{{Position: grid.Position{X: 32, Y: 0}, Color: "#000000"}}, e.History().Entries())
}

func TestChangeColorInvalid(t *testing.T) {
	e, _, _ := newMounted(t)
	assert.False(t, e.Update(ChangeColor{Value: "not-a-color"}))
	assert.ErrorIs(t, e.Apply(ChangeColor{Value: "#12"}), settings.ErrInvalid)
	assert.Equal(t, "#000000", e.Settings().Color)
}

func TestUnmountedAborts(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := New(settings.Default(), log)

	for _, msg := range []Message{Draw{}, Undo{}, Redo{}, Clear{}, Context{}, moveTo(0, 0)} {
		assert.ErrorIs(t, e.Apply(msg), ErrNoCanvas, "%T", msg)
		assert.False(t, e.Update(msg))
	}
	assert.Zero(t, e.History().Len())
	assert.False(t, e.Stroking())
	assert.Len(t, hook.AllEntries(), 6)

	// color changes do not need a canvas
	assert.True(t, e.Update(ChangeColor{Value: "#00ff00"}))
}

func TestRemountRepaintsHistory(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))
	e.Unmount()

	rec := &canvas.Recorder{}
	e.Mount(rec)
	assert.Equal(t, 1, rec.Count("fillRect"))
	assert.False(t, e.Stroking())
}

func TestRenderToImage(t *testing.T) {
	log, _ := test.NewNullLogger()
	s := settings.Default()
	s.CanvasWidth, s.CanvasHeight = 64, 64
	e := New(s, log)
	surface := canvas.NewImageSurface(1, 1)
	e.Mount(surface)

	require.True(t, e.Update(ChangeColor{Value: "#0000ff"}))
	require.True(t, e.Update(moveTo(32, 32)))
	require.True(t, e.Update(Draw{}))

	c := surface.Image().RGBAAt(48, 48)
	assert.Equal(t, uint8(0xff), c.B)
	assert.Equal(t, uint8(0xff), c.A)
	assert.Zero(t, surface.Image().RGBAAt(16, 16).A)
	require.NoError(t, surface.Err())
}

func TestStrokeSkipsCellsOffCanvas(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))

	for _, m := range []Move{
		{ClientX: -200, ClientY: -200, Rect: rect},
		{ClientX: -400, ClientY: -400, Rect: rect},
		{ClientX: 5000, ClientY: 5000, Rect: rect},
	} {
		require.True(t, e.Update(m))
	}
	assert.Equal(t, []history.Entry{{Position: grid.Position{X: 0, Y: 0}, Color: "#000000"}}, e.History().Entries())
	assert.True(t, e.Stroking())

	// coming back onto the canvas continues the stroke
	require.True(t, e.Update(moveTo(32, 0)))
	assert.Equal(t, 2, e.History().Len())
}

func TestStrokeOffCanvasKeepsRedo(t *testing.T) {
	e, _, _ := newMounted(t)
	require.True(t, e.Update(moveTo(0, 0)))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Release{}))
	require.True(t, e.Update(moveTo(32, 0)))
	require.True(t, e.Update(Draw{}))
	require.True(t, e.Update(Undo{}))
	require.True(t, e.CanRedo())

	require.True(t, e.Update(Move{ClientX: -100, ClientY: 20, Rect: rect}))
	assert.True(t, e.CanRedo())
	assert.Equal(t, 1, e.History().Len())
}
