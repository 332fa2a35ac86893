//go:build js && wasm

// Command pixweb runs the pixel editor in a browser. Build with
// GOOS=js GOARCH=wasm and load it from index.html next to wasm_exec.js.
package main

import (
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/ha1tch/pix/internal/editor"
	"github.com/ha1tch/pix/internal/grid"
	"github.com/ha1tch/pix/internal/settings"
)

// Surface wraps a CanvasRenderingContext2D.
type Surface struct {
	canvas js.Value
	ctx    js.Value
}

func (s *Surface) Resize(width, height int) {
	// Assigning the size resets the bitmap and the current path.
	s.canvas.Set("width", width)
	s.canvas.Set("height", height)
}

func (s *Surface) BeginPath()          { s.ctx.Call("beginPath") }
func (s *Surface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }
func (s *Surface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }
func (s *Surface) Stroke()             { s.ctx.Call("stroke") }

func (s *Surface) FillRect(x, y, width, height float64) {
	s.ctx.Call("fillRect", x, y, width, height)
}

func (s *Surface) SetStrokeStyle(style string) { s.ctx.Set("strokeStyle", style) }
func (s *Surface) SetFillStyle(style string)   { s.ctx.Set("fillStyle", style) }

type page struct {
	doc    js.Value
	canvas js.Value
	editor *editor.Editor
	log    logrus.FieldLogger
	funcs  []js.Func
}

func (p *page) on(target js.Value, event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	p.funcs = append(p.funcs, f)
	target.Call("addEventListener", event, f)
}

func (p *page) onID(id, event string, fn func(ev js.Value)) {
	if el := p.byID(id); !el.IsNull() {
		p.on(el, event, fn)
	}
}

func (p *page) byID(id string) js.Value {
	el := p.doc.Call("getElementById", id)
	if el.IsNull() {
		p.log.WithField("id", id).Warn("Element not found")
	}
	return el
}

// update dispatches msg and syncs the undo/redo buttons.
func (p *page) update(msg editor.Message) {
	if !p.editor.Update(msg) {
		return
	}
	p.syncButtons()
}

func (p *page) syncButtons() {
	for id, hidden := range map[string]bool{
		"undo": !p.editor.CanUndo(),
		"redo": !p.editor.CanRedo(),
	} {
		if el := p.byID(id); !el.IsNull() {
			el.Set("hidden", hidden)
		}
	}
}

func (p *page) bind() {
	p.on(p.canvas, "mousemove", func(ev js.Value) {
		r := p.canvas.Call("getBoundingClientRect")
		p.update(editor.Move{
			ClientX: ev.Get("clientX").Float(),
			ClientY: ev.Get("clientY").Float(),
			Rect: grid.Rect{
				Left:   r.Get("left").Float(),
				Top:    r.Get("top").Float(),
				Width:  r.Get("width").Float(),
				Height: r.Get("height").Float(),
			},
		})
	})
	p.on(p.canvas, "mousedown", func(ev js.Value) {
		if ev.Get("button").Int() == 0 {
			p.update(editor.Draw{})
		}
	})
	p.on(p.doc, "mouseup", func(js.Value) { p.update(editor.Release{}) })
	p.on(p.canvas, "mouseleave", func(js.Value) { p.update(editor.Release{}) })
	p.on(p.canvas, "contextmenu", func(ev js.Value) {
		ev.Call("preventDefault")
		p.update(editor.Context{})
	})
	p.onID("color", "change", func(ev js.Value) {
		p.update(editor.ChangeColor{Value: ev.Get("target").Get("value").String()})
	})
	p.onID("clear", "click", func(js.Value) { p.update(editor.Clear{}) })
	p.onID("undo", "click", func(js.Value) { p.update(editor.Undo{}) })
	p.onID("redo", "click", func(js.Value) { p.update(editor.Redo{}) })
}

// queryLookup reads settings from the page's query string, e.g.
// ?PIX_CELL_WIDTH=16&PIX_CELL_HEIGHT=16.
func queryLookup() func(string) (string, bool) {
	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	return func(key string) (string, bool) {
		v := params.Call("get", key)
		if v.IsNull() {
			return "", false
		}
		return v.String(), true
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	s, err := settings.FromLookup(queryLookup())
	if err != nil {
		logrus.WithError(err).Error("Bad settings in query string, using defaults")
		s = settings.Default()
	}
	logrus.SetLevel(s.LogLevel)

	doc := js.Global().Get("document")
	p := &page{
		doc:    doc,
		editor: editor.New(s, logrus.StandardLogger()),
		log:    logrus.WithField("component", "pixweb"),
	}
	p.canvas = p.byID("canvas")
	if p.canvas.IsNull() {
		p.log.Error(editor.ErrNoCanvas)
		return
	}

	p.bind()
	p.editor.Mount(&Surface{canvas: p.canvas, ctx: p.canvas.Call("getContext", "2d")})
	p.syncButtons()
	p.log.Info("Editor ready")

	select {}
}
