package canvas

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"
)

// SVG builds an SVG document of line elements. Consecutive lines of the
// same colour share a group.
type SVG struct {
	doc svgDocument
	cur *svgGroup
	col color.Color
}

type svgDocument struct {
	XMLName    xml.Name   `xml:"svg"`
	Xmlns      string     `xml:"xmlns,attr"`
	Width      int        `xml:"width,attr"`
	Height     int        `xml:"height,attr"`
	ViewBox    string     `xml:"viewBox,attr"`
	Background svgRect    `xml:"rect"`
	Groups     []svgGroup `xml:"g"`
}

type svgRect struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgGroup struct {
	Stroke        string    `xml:"stroke,attr"`
	StrokeOpacity string    `xml:"stroke-opacity,attr,omitempty"`
	StrokeWidth   float64   `xml:"stroke-width,attr"`
	Lines         []svgLine `xml:"line"`
}

type svgLine struct {
	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
	X2 float64 `xml:"x2,attr"`
	Y2 float64 `xml:"y2,attr"`
}

// NewSVG returns an empty size×size document on a white background.
func NewSVG(size int) *SVG {
	return &SVG{
		doc: svgDocument{
			Xmlns:      "http://www.w3.org/2000/svg",
			Width:      size,
			Height:     size,
			ViewBox:    fmt.Sprintf("0 0 %d %d", size, size),
			Background: svgRect{Width: "100%", Height: "100%", Fill: "#ffffff"},
		},
		col: FigureColor,
	}
}

// SetColor sets the stroke colour of the lines that follow.
func (s *SVG) SetColor(c color.Color) {
	s.col = c
	s.cur = nil
}

// Line appends a line element.
func (s *SVG) Line(x0, y0, x1, y1 float64) {
	if s.cur == nil {
		stroke, opacity := svgColor(s.col)
		s.doc.Groups = append(s.doc.Groups, svgGroup{
			Stroke:        stroke,
			StrokeOpacity: opacity,
			StrokeWidth:   1,
		})
		s.cur = &s.doc.Groups[len(s.doc.Groups)-1]
	}
	s.cur.Lines = append(s.cur.Lines, svgLine{X1: x0, Y1: y0, X2: x1, Y2: y1})
}

// WriteTo writes the document, with an XML header, to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	out, err := xml.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("error encoding SVG document: %w", err)
	}
	n, err := io.WriteString(w, xml.Header)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(append(out, '\n'))
	return int64(n + m), err
}

// Save writes the document to path.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// svgColor returns c as "#rrggbb" and, when it isn't opaque, its opacity.
func svgColor(c color.Color) (string, string) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	hex := fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	if n.A == 0xff {
		return hex, ""
	}
	return hex, fmt.Sprintf("%.3g", float64(n.A)/0xff)
}
