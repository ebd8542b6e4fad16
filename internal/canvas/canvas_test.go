package canvas

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"
)

func TestNew(t *testing.T) {
	is := is.New(t)

	c, err := New("out.PNG", 10)
	is.NoErr(err)
	_, ok := c.(*PNG)
	is.True(ok)

	c, err = New("dir/out.svg", 10)
	is.NoErr(err)
	_, ok = c.(*SVG)
	is.True(ok)

	_, err = New("out.gif", 10)
	is.Err(err)

	_, err = New("out.svg", 0)
	is.Err(err)
}

func TestSVGSetup(t *testing.T) {
	is := is.New(t)

	s := NewSVG(400)
	Setup(s, 400)
	s.Line(10, 20, 30, 40)
	s.Line(30, 40, 50, 60)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	is.NoErr(err)
	is.True(bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))

	var doc svgDocument
	is.NoErr(xml.Unmarshal(buf.Bytes(), &doc))
	is.Equal(doc.Width, 400)
	is.Equal(doc.ViewBox, "0 0 400 400")
	is.Equal(len(doc.Groups), 2)

	axes := doc.Groups[0]
	is.Equal(axes.Stroke, "#0000f0")
	is.Equal(axes.StrokeOpacity, "0.2")
	is.Equal(len(axes.Lines), 6)
	is.Equal(axes.Lines[2], svgLine{X1: 0, Y1: 399, X2: 400, Y2: 399})
	is.Equal(axes.Lines[4], svgLine{X1: 200, Y1: 0, X2: 200, Y2: 400})

	fig := doc.Groups[1]
	is.Equal(fig.Stroke, "#000000")
	is.Equal(fig.StrokeOpacity, "")
	is.Equal(len(fig.Lines), 2)
	is.Equal(fig.Lines[1], svgLine{X1: 30, Y1: 40, X2: 50, Y2: 60})
}

func TestSVGSave(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "figure.svg")
	s := NewSVG(50)
	s.SetColor(color.RGBA{R: 255, A: 255})
	s.Line(0, 0, 50, 50)
	is.NoErr(s.Save(path))

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(bytes.Contains(data, []byte(`stroke="#ff0000"`)))
	is.True(bytes.Contains(data, []byte(`x2="50"`)))
}

func TestPNGSave(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "figure.png")
	p := NewPNG(64)
	Setup(p, 64)
	for y := 10.5; y < 54; y += 4 {
		p.Line(8, y, 56, y)
	}
	is.NoErr(p.Save(path))

	f, err := os.Open(path)
	is.NoErr(err)
	defer f.Close()
	img, err := png.Decode(f)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 64)
	is.Equal(img.Bounds().Dy(), 64)

	dark := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && b < 0x8000 {
				dark++
			}
		}
	}
	is.True(dark > 0)
}
