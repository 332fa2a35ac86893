package canvas

// Op is one recorded Surface call.
type Op struct {
	Name  string
	Args  []float64
	Style string
}

// Recorder is a Surface that records every call in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) record(name string, style string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args, Style: style})
}

func (r *Recorder) Resize(width, height int) {
	r.record("resize", "", float64(width), float64(height))
}

func (r *Recorder) BeginPath()                  { r.record("beginPath", "") }
func (r *Recorder) MoveTo(x, y float64)         { r.record("moveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64)         { r.record("lineTo", "", x, y) }
func (r *Recorder) Stroke()                     { r.record("stroke", "") }
func (r *Recorder) SetStrokeStyle(style string) { r.record("strokeStyle", style) }
func (r *Recorder) SetFillStyle(style string)   { r.record("fillStyle", style) }

func (r *Recorder) FillRect(x, y, width, height float64) {
	r.record("fillRect", "", x, y, width, height)
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() { r.Ops = nil }
