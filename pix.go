package main

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/ha1tch/pix/internal/canvas"
	"github.com/ha1tch/pix/internal/editor"
	"github.com/ha1tch/pix/internal/grid"
	"github.com/ha1tch/pix/internal/rlcanvas"
	"github.com/ha1tch/pix/internal/settings"
)

const (
	fontSize   = 8
	leftPanel  = 100
	topBar     = 50
	margin     = 20
	maxHexLen  = 7
	targetFPS  = 60
	windowName = "pix - a pixel editor"
)

// GUI control types
type Button struct {
	rect   rl.Rectangle
	text   string
	hover  bool
	hidden bool
}

type TextBox struct {
	rect    rl.Rectangle
	text    string
	focused bool
}

// Swatch is a palette entry
type Swatch struct {
	rect rl.Rectangle
	hex  string
	rgba rl.Color
}

// Application state
type App struct {
	editor  *editor.Editor
	surface *rlcanvas.Surface

	screenWidth  int32
	screenHeight int32
	canvasRect   rl.Rectangle

	// UI
	clearButton Button
	undoButton  Button
	redoButton  Button
	palette     []Swatch
	hexBox      TextBox

	lastMousePos rl.Vector2
}

var paletteHex = []string{
	"#000000", "#ffffff", "#e62937", "#00e430", "#0079f1",
	"#fdf900", "#ffa100", "#c87aff", "#ff6dc2", "#7f6a4f",
	"#828282", "#505050", "#c8c8c8", "#66bfff", "#ff00ff",
	"#ff0080", "#80ff00", "#0080ff",
}

// Initialize application
func NewApp(s settings.Settings, log logrus.FieldLogger) *App {
	app := &App{
		editor:  editor.New(s, log),
		surface: rlcanvas.New(log),
	}

	app.screenWidth = int32(leftPanel + margin + s.CanvasWidth + margin)
	app.screenHeight = int32(topBar + s.CanvasHeight + margin)
	if app.screenHeight < 620 {
		app.screenHeight = 620
	}
	app.canvasRect = rl.Rectangle{
		X:      leftPanel + margin,
		Y:      topBar,
		Width:  float32(s.CanvasWidth),
		Height: float32(s.CanvasHeight),
	}

	app.clearButton = Button{rect: rl.Rectangle{X: 10, Y: 50, Width: 80, Height: 30}, text: "CLEAR"}
	app.undoButton = Button{rect: rl.Rectangle{X: 10, Y: 90, Width: 80, Height: 30}, text: "UNDO"}
	app.redoButton = Button{rect: rl.Rectangle{X: 10, Y: 130, Width: 80, Height: 30}, text: "REDO"}

	paletteY := float32(200)
	for i, hex := range paletteHex {
		c, err := canvas.ParseHex(hex)
		if err != nil {
			log.WithError(err).Warn("Skipping palette entry")
			continue
		}
		app.palette = append(app.palette, Swatch{
			rect: rl.Rectangle{X: float32(10 + (i%3)*25), Y: paletteY + float32(i/3)*25, Width: 20, Height: 20},
			hex:  hex,
			rgba: rlcanvas.Color(c),
		})
	}

	app.hexBox = TextBox{
		rect: rl.Rectangle{X: 10, Y: 380, Width: 80, Height: 20},
		text: s.Color,
	}

	return app
}

// Mount attaches the render texture once the window exists
func (app *App) Mount() {
	app.editor.Mount(app.surface)
}

// Canvas rectangle in the same terms the editor snaps against
func (app *App) clientRect() grid.Rect {
	return grid.Rect{
		Left:   float64(app.canvasRect.X),
		Top:    float64(app.canvasRect.Y),
		Width:  float64(app.canvasRect.Width),
		Height: float64(app.canvasRect.Height),
	}
}

// Update application
func (app *App) Update() {
	mousePos := rl.GetMousePosition()

	// Handle keyboard shortcuts
	if !app.hexBox.focused && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)) {
		if rl.IsKeyPressed(rl.KeyZ) {
			if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
				app.editor.Update(editor.Redo{})
			} else {
				app.editor.Update(editor.Undo{})
			}
		}
		if rl.IsKeyPressed(rl.KeyY) {
			app.editor.Update(editor.Redo{})
		}
	}

	// Handle buttons
	app.undoButton.hidden = !app.editor.CanUndo()
	app.redoButton.hidden = !app.editor.CanRedo()
	buttons := []struct {
		btn *Button
		msg editor.Message
	}{
		{&app.clearButton, editor.Clear{}},
		{&app.undoButton, editor.Undo{}},
		{&app.redoButton, editor.Redo{}},
	}
	for _, b := range buttons {
		b.btn.hover = !b.btn.hidden && rl.CheckCollisionPointRec(mousePos, b.btn.rect)
		if b.btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.editor.Update(b.msg)
		}
	}

	// Handle color palette
	for _, sw := range app.palette {
		if rl.CheckCollisionPointRec(mousePos, sw.rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if app.editor.Update(editor.ChangeColor{Value: sw.hex}) {
				app.hexBox.text = sw.hex
			}
		}
	}

	app.updateHexBox(mousePos)

	// Track the pointer over the canvas
	if mousePos != app.lastMousePos {
		app.editor.Update(editor.Move{
			ClientX: float64(mousePos.X),
			ClientY: float64(mousePos.Y),
			Rect:    app.clientRect(),
		})
		app.lastMousePos = mousePos
	}

	// Handle drawing on canvas
	if rl.CheckCollisionPointRec(mousePos, app.canvasRect) {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.editor.Update(editor.Draw{})
		}
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			app.editor.Update(editor.Context{})
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || !rl.CheckCollisionPointRec(mousePos, app.canvasRect) {
		if app.editor.Stroking() {
			app.editor.Update(editor.Release{})
		}
	}
}

// Hex color entry; Enter applies, Escape reverts
func (app *App) updateHexBox(mousePos rl.Vector2) {
	box := &app.hexBox
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		box.focused = rl.CheckCollisionPointRec(mousePos, box.rect)
	}
	if !box.focused {
		return
	}

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if len(box.text) < maxHexLen && strings.ContainsRune("#0123456789abcdefABCDEF", ch) {
			box.text += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(box.text) > 0 {
		box.text = box.text[:len(box.text)-1]
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if app.editor.Update(editor.ChangeColor{Value: box.text}) {
			box.text = app.editor.Settings().Color
		}
		box.focused = false
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		box.text = app.editor.Settings().Color
		box.focused = false
	}
}

func drawButton(btn Button) {
	if btn.hidden {
		return
	}
	color := rl.Color{70, 70, 70, 255}
	if btn.hover {
		color = rl.Color{80, 80, 80, 255}
	}

	rl.DrawRectangleRec(btn.rect, color)
	rl.DrawRectangleLinesEx(btn.rect, 1, rl.Color{90, 90, 90, 255})

	textW := rl.MeasureText(btn.text, fontSize)
	textX := int32(btn.rect.X + btn.rect.Width/2 - float32(textW)/2)
	textY := int32(btn.rect.Y + btn.rect.Height/2 - 4)
	rl.DrawText(btn.text, textX, textY, fontSize, rl.White)
}

// Draw application
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})

	s := app.editor.Settings()

	// Draw left toolbar
	rl.DrawRectangle(0, 0, leftPanel, app.screenHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("PIX", 10, 10, fontSize, rl.White)
	rl.DrawText("EDIT", 10, 35, fontSize, rl.LightGray)

	drawButton(app.clearButton)
	drawButton(app.undoButton)
	drawButton(app.redoButton)

	// Draw color palette
	rl.DrawText("COLORS", 10, 185, fontSize, rl.LightGray)
	for _, sw := range app.palette {
		rl.DrawRectangleRec(sw.rect, sw.rgba)
		if sw.hex == s.Color {
			rl.DrawRectangleLinesEx(sw.rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(sw.rect, 1, rl.Color{70, 70, 70, 255})
		}
	}

	// Draw hex entry
	rl.DrawText("HEX", 10, 367, fontSize, rl.LightGray)
	rl.DrawRectangleRec(app.hexBox.rect, rl.Color{60, 60, 60, 255})
	border := rl.Color{90, 90, 90, 255}
	if app.hexBox.focused {
		border = rl.White
	}
	rl.DrawRectangleLinesEx(app.hexBox.rect, 1, border)
	rl.DrawText(app.hexBox.text, int32(app.hexBox.rect.X+4), int32(app.hexBox.rect.Y+6), fontSize, rl.White)

	// Draw current color
	if c, err := canvas.ParseHex(s.Color); err == nil {
		rl.DrawRectangle(10, 410, 40, 30, rlcanvas.Color(c))
		rl.DrawRectangleLines(10, 410, 40, 30, rl.White)
	}

	// Draw top bar
	rl.DrawRectangle(leftPanel, 0, app.screenWidth-leftPanel, topBar, rl.Color{60, 60, 60, 255})
	pos := app.editor.Position()
	col, row := pos.Cell(float64(s.CellWidth), float64(s.CellHeight))
	info := fmt.Sprintf("SIZE: %dX%d | CELL: %dX%d | AT: %d,%d | PIXELS: %d | COLOR: %s",
		s.CanvasWidth, s.CanvasHeight, s.CellWidth, s.CellHeight, col, row, app.editor.History().Len(), s.Color)
	rl.DrawText(info, leftPanel+10, 20, fontSize, rl.White)

	// Draw canvas
	tex := app.surface.Texture()
	w, h := app.surface.Size()
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(w), Height: -float32(h)}
	rl.DrawTexturePro(tex.Texture, srcRect, app.canvasRect, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(app.canvasRect, 2, rl.Color{100, 100, 100, 255})

	// Draw cursor cell
	if grid.InBounds(pos, float64(s.CanvasWidth), float64(s.CanvasHeight)) &&
		rl.CheckCollisionPointRec(rl.GetMousePosition(), app.canvasRect) {
		rl.DrawRectangleLinesEx(rl.Rectangle{
			X:      app.canvasRect.X + float32(pos.X),
			Y:      app.canvasRect.Y + float32(pos.Y),
			Width:  float32(s.CellWidth),
			Height: float32(s.CellHeight),
		}, 1, rl.Yellow)
	}

	rl.EndDrawing()
}

func main() {
	s, err := settings.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load settings")
	}
	logrus.SetLevel(s.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rl.SetTraceLogLevel(rl.LogWarning)

	app := NewApp(s, logrus.StandardLogger())
	rl.InitWindow(app.screenWidth, app.screenHeight, windowName)
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)

	app.Mount()
	logrus.WithFields(logrus.Fields{
		"width":  s.CanvasWidth,
		"height": s.CanvasHeight,
		"cell":   fmt.Sprintf("%dx%d", s.CellWidth, s.CellHeight),
	}).Info("Editor ready")

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	// Clean up
	app.editor.Unmount()
	app.surface.Unload()
	rl.CloseWindow()
}
