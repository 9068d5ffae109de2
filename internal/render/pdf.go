package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// PDFEncoder turns laid-out pages into PDF bytes. Injected so the API
// layer can answer 503 when no encoder is wired.
type PDFEncoder interface {
	Encode(pages []Page) ([]byte, error)
}

// FPDF renders pages with the go-pdf/fpdf backend
type FPDF struct{}

func (FPDF) Encode(pages []Page) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	// core fonts are cp1252; translate the UTF-8 bullets and ellipses
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		doc.AddPage()
		for _, op := range page.Ops {
			applyOp(doc, tr, op)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func applyOp(doc *fpdf.Fpdf, tr func(string) string, op Op) {
	switch o := op.(type) {
	case LineOp:
		r, g, b := hexToRGB(o.Color)
		doc.SetDrawColor(r, g, b)
		doc.Line(o.X1, o.Y1, o.X2, o.Y2)

	case RectOp:
		style := ""
		if o.Fill != "" {
			r, g, b := hexToRGB(o.Fill)
			doc.SetFillColor(r, g, b)
			style += "F"
		}
		if o.Stroke != "" {
			r, g, b := hexToRGB(o.Stroke)
			doc.SetDrawColor(r, g, b)
			style += "D"
		}
		if style == "" {
			style = "D"
		}
		if o.Radius > 0 {
			doc.RoundedRect(o.X, o.Y, o.W, o.H, o.Radius, "1234", style)
		} else {
			doc.Rect(o.X, o.Y, o.W, o.H, style)
		}

	case TextOp:
		fontStyle := ""
		if o.Bold {
			fontStyle = "B"
		}
		doc.SetFont("Helvetica", fontStyle, o.Size)
		r, g, b := hexToRGB(o.Color)
		doc.SetTextColor(r, g, b)

		text := tr(o.Text)
		x := o.X
		switch o.Align {
		case "center":
			x -= doc.GetStringWidth(text) / 2
		case "right":
			x -= doc.GetStringWidth(text)
		}
		doc.Text(x, o.Y, text)

	case DotOp:
		r, g, b := hexToRGB(o.Color)
		doc.SetFillColor(r, g, b)
		doc.Circle(o.X, o.Y, o.R, "F")
	}
}

// hexToRGB parses "#RRGGBB"; unknown input falls back to black
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
