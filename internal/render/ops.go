// Package render lays out report pages as lists of drawing primitives.
// Layout functions are pure; the PDF writer in pdf.go is the only piece
// that touches a real canvas, so chart geometry is assertable in tests
// without decoding PDF bytes.
package render

// Page dimensions: US letter in points, with a fixed margin. The origin
// is the top-left corner and Y grows downward.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 40.0
)

// Palette shared by panels and charts
const (
	ColorAxis      = "#6B7280"
	ColorGrid      = "#D1D5DB"
	ColorPanelFill = "#F9FAFB"
	ColorHeading   = "#111827"
	ColorTick      = "#374151"
	ColorIndigo    = "#4F46E5"
	ColorGreen     = "#22C55E"
	ColorAmber     = "#F59E0B"
	ColorRed       = "#EF4444"
	ColorCyan      = "#06B6D4"
)

// SeriesColors is the fixed cycle used by multi-series charts
var SeriesColors = []string{ColorIndigo, ColorGreen, ColorAmber, ColorRed, ColorCyan}

const noDataText = "No data available"

// Op is a single drawing primitive
type Op interface {
	isOp()
}

// LineOp draws a straight line segment
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Color          string
}

// RectOp draws a rectangle, optionally rounded, with optional fill and stroke
type RectOp struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
	Stroke     string
}

// TextOp draws a text run with its baseline at Y
type TextOp struct {
	X, Y  float64
	Text  string
	Size  float64
	Color string
	Bold  bool
	Align string // "left" (default), "center", "right"
}

// DotOp draws a filled circle marker
type DotOp struct {
	X, Y, R float64
	Color   string
}

func (LineOp) isOp() {}
func (RectOp) isOp() {}
func (TextOp) isOp() {}
func (DotOp) isOp()  {}

// Page is an ordered list of primitives for one output page
type Page struct {
	Ops []Op
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
