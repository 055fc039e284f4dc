package canvas

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpStrokeColor OpKind = iota
	OpFillColor
	OpBeginPath
	OpMoveTo
	OpArc
	OpClosePath
	OpFill
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpStrokeColor:
		return "strokeColor"
	case OpFillColor:
		return "fillColor"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpArc:
		return "arc"
	case OpClosePath:
		return "closePath"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind             OpKind
	Color            color.Color
	X, Y             float64
	Radius           float64
	Start, End       float64
	CounterClockwise bool
}

// Recorder is a surface that keeps every call instead of drawing.
type Recorder struct {
	Ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeColor, Color: c})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) BeginPath() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) Arc(cx, cy, radius, start, end float64, counterclockwise bool) {
	r.Ops = append(r.Ops, Op{
		Kind:             OpArc,
		X:                cx,
		Y:                cy,
		Radius:           radius,
		Start:            start,
		End:              end,
		CounterClockwise: counterclockwise,
	})
}

func (r *Recorder) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: OpClosePath})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Kind: OpFill})
}

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
}

// Arcs returns only the recorded arc calls, in order.
func (r *Recorder) Arcs() []Op {
	var arcs []Op
	for _, op := range r.Ops {
		if op.Kind == OpArc {
			arcs = append(arcs, op)
		}
	}
	return arcs
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
