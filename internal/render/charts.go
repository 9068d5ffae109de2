package render

import "strconv"

// Series is one named value series for multi-line charts
type Series struct {
	Name   string
	Values []float64
}

// Panel draws a rounded panel background with a title at the top
func Panel(x, y, w, h float64, title string) []Op {
	return []Op{
		RectOp{X: x, Y: y, W: w, H: h, Radius: 8, Fill: ColorPanelFill, Stroke: ColorGrid},
		TextOp{X: x + 10, Y: y + 16, Text: title, Size: 10, Color: ColorHeading, Bold: true},
	}
}

// chartFrame is the inner plotting region of a panel-sized box
type chartFrame struct {
	x, w        float64
	top, bottom float64
}

func newChartFrame(x, y, w, h float64) chartFrame {
	return chartFrame{
		x:      x + 12,
		w:      w - 24,
		top:    y + 22,
		bottom: y + h - 24,
	}
}

func (f chartFrame) height() float64 {
	return f.bottom - f.top
}

// yFor maps a value in [low, high] to a canvas Y inside the frame
func (f chartFrame) yFor(value, low, high float64) float64 {
	return f.bottom - (value-low)/(high-low)*f.height()
}

func (f chartFrame) axes() []Op {
	return []Op{
		LineOp{X1: f.x, Y1: f.top, X2: f.x, Y2: f.bottom, Color: ColorAxis},
		LineOp{X1: f.x, Y1: f.bottom, X2: f.x + f.w, Y2: f.bottom, Color: ColorAxis},
	}
}

func (f chartFrame) placeholder() Op {
	return TextOp{X: f.x + 8, Y: f.bottom - f.height()/2, Text: noDataText, Size: 9, Color: ColorAxis}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// ticks emits min/mid/max labels and the mid gridline for a [low, high] scale
func (f chartFrame) ticks(low, high float64) []Op {
	mid := (low + high) / 2
	midY := f.yFor(mid, low, high)
	return []Op{
		TextOp{X: f.x - 4, Y: f.bottom + 10, Text: formatTick(low), Size: 7, Color: ColorTick},
		TextOp{X: f.x - 4, Y: f.top + 2, Text: formatTick(high), Size: 7, Color: ColorTick},
		LineOp{X1: f.x, Y1: midY, X2: f.x + f.w, Y2: midY, Color: ColorGrid},
		TextOp{X: f.x - 4, Y: midY + 3, Text: formatTick(mid), Size: 7, Color: ColorTick},
	}
}

// LineChart plots a single value series with straight segments and point
// markers. The Y axis auto-scales to the series range; a flat series is
// biased by one so the scale never collapses. Empty input renders the
// no-data placeholder inside bare axes.
func LineChart(x, y, w, h float64, values []float64, color string) []Op {
	f := newChartFrame(x, y, w, h)
	ops := f.axes()

	if len(values) == 0 {
		return append(ops, f.placeholder())
	}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	if high == low {
		high = low + 1
	}

	ops = append(ops, f.ticks(low, high)...)

	stepCount := len(values) - 1
	if stepCount < 1 {
		stepCount = 1
	}
	xStep := f.w / float64(stepCount)

	var prevX, prevY float64
	for i, v := range values {
		px := f.x + float64(i)*xStep
		py := f.yFor(v, low, high)
		if i > 0 {
			ops = append(ops, LineOp{X1: prevX, Y1: prevY, X2: px, Y2: py, Color: color})
		}
		ops = append(ops, DotOp{X: px, Y: py, R: 1.8, Color: color})
		prevX, prevY = px, py
	}
	return ops
}

// BarChart plots labeled bars scaled to [0, max(values) or 1], with a gap
// of 0.8x the bar width between bars and labels truncated past 9 runes.
func BarChart(x, y, w, h float64, labels []string, values []float64, color string) []Op {
	f := newChartFrame(x, y, w, h)
	ops := f.axes()

	if len(labels) == 0 || len(values) == 0 {
		return append(ops, f.placeholder())
	}

	maxValue := 0.0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	ops = append(ops, f.ticks(0, maxValue)...)

	barW := f.w / (float64(len(values)) * 1.8)
	gap := barW * 0.8

	for i, v := range values {
		left := f.x + float64(i)*(barW+gap)
		barH := v / maxValue * f.height()
		ops = append(ops, RectOp{X: left, Y: f.bottom - barH, W: barW, H: barH, Fill: color})
		ops = append(ops, TextOp{
			X:     left + barW/2,
			Y:     f.bottom + 10,
			Text:  truncate(labels[i], 10),
			Size:  7,
			Color: ColorHeading,
			Align: "center",
		})
	}
	return ops
}

// MultiLineChart plots several series on one shared Y scale, coloring each
// from the fixed cycle and drawing a swatch legend in the top-right.
func MultiLineChart(x, y, w, h float64, series []Series) []Op {
	f := newChartFrame(x, y, w, h)
	ops := f.axes()

	var low, high float64
	maxLen := 0
	seen := false
	for _, s := range series {
		for _, v := range s.Values {
			if !seen {
				low, high = v, v
				seen = true
				continue
			}
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
		if len(s.Values) > maxLen {
			maxLen = len(s.Values)
		}
	}
	if !seen || maxLen == 0 {
		return append(ops, f.placeholder())
	}
	if high == low {
		high = low + 1
	}

	ops = append(ops, f.ticks(low, high)...)

	stepCount := maxLen - 1
	if stepCount < 1 {
		stepCount = 1
	}
	xStep := f.w / float64(stepCount)

	for idx, s := range series {
		color := SeriesColors[idx%len(SeriesColors)]

		var prevX, prevY float64
		for i, v := range s.Values {
			px := f.x + float64(i)*xStep
			py := f.yFor(v, low, high)
			if i > 0 {
				ops = append(ops, LineOp{X1: prevX, Y1: prevY, X2: px, Y2: py, Color: color})
			}
			prevX, prevY = px, py
		}

		legendX := x + w - 150
		legendY := y + 16 + float64(idx)*12
		ops = append(ops, RectOp{X: legendX, Y: legendY, W: 8, H: 8, Fill: color})
		ops = append(ops, TextOp{
			X:     legendX + 12,
			Y:     legendY + 7,
			Text:  truncate(s.Name, 18),
			Size:  8,
			Color: ColorHeading,
		})
	}
	return ops
}
