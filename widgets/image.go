package widgets

import (
	"bytes"
	"fmt"
	goimage "image"
	"strings"

	// Register decoders for the supported formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"cellkit/cell"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeError reports image bytes that no registered decoder accepts.
type DecodeError struct {
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image: cannot decode %d bytes: %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Image shows a picture with half-block cells, two pixel rows per cell.
type Image struct {
	ui.Base
	image  goimage.Image
	format string
	scaled *goimage.RGBA
}

func NewImage(data []byte) (*Image, error) {
	img, format, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Size: len(data), Err: err}
	}
	bounds := img.Bounds()
	width := float64(bounds.Dx())
	height := float64((bounds.Dy() + 1) / 2)
	style := flex.DefaultStyle()
	style.Size = flex.Dimensions{Width: flex.Pt(width), Height: flex.Pt(height)}
	return &Image{Base: ui.NewBase(style), image: img, format: format}, nil
}

func (i *Image) Format() string {
	return i.format
}

// scale returns the picture resized to width × 2·height pixels.
func (i *Image) scale(width, height int) *goimage.RGBA {
	bounds := goimage.Rect(0, 0, width, height*2)
	if i.scaled != nil && i.scaled.Bounds() == bounds {
		return i.scaled
	}
	dst := goimage.NewRGBA(bounds)
	xdraw.CatmullRom.Scale(dst, bounds, i.image, i.image.Bounds(), xdraw.Over, nil)
	i.scaled = dst
	return dst
}

func (i *Image) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, height := node.Rect().Round()
	if width <= 0 || height <= 0 {
		return nil
	}
	scaled := i.scale(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			top := rgbAt(scaled, col, row*2)
			bottom := rgbAt(scaled, col, row*2+1)
			buf.SetCell(x+col, y+row, cell.Cell{
				Symbol: "▄",
				Style:  tcell.StyleDefault.Background(top).Foreground(bottom),
			})
		}
	}
	return nil
}

func rgbAt(img *goimage.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (i *Image) String() string { return toString(i) }

func (i *Image) ToString(buf *strings.Builder, offset string) {
	bounds := i.image.Bounds()
	fmt.Fprintf(buf, "%sImage(%s %d×%d, ID: %q)\n", offset, i.format, bounds.Dx(), bounds.Dy(), i.ID())
}
