package std

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/mrya-lang/mrya/values"
)

// canvas wraps an in-memory RGBA image as opaque native state, passed
// around as the `graphics` module's handle value (spec §7 Domain stack).
// No graphics library appears anywhere in the example pack, so this module
// is justified stdlib-only (image/image-color/image-png), mirroring the
// same exception already recorded for the html module.
type canvas struct {
	img *image.RGBA
}

func (*canvas) Type() values.Type { return values.Type("native:canvas") }
func (c *canvas) String() string  { return "<canvas>" }
func (c *canvas) Inspect() string { return c.String() }

// NewGraphicsModule builds the `graphics` native module.
func NewGraphicsModule() *values.Module {
	b := NewModule("graphics")
	b.Func("new_canvas", 2, gfxNewCanvas)
	b.Func("set_pixel", 4, gfxSetPixel)
	b.Func("fill_rect", 6, gfxFillRect)
	b.Func("save_png", 2, gfxSavePNG)
	return b.Build()
}

// Syntax: new_canvas(width, height)
func gfxNewCanvas(args []values.Value) (values.Value, error) {
	w, ok1 := AsInt(args[0])
	h, ok2 := AsInt(args[1])
	if !ok1 || !ok2 || w <= 0 || h <= 0 {
		return nil, ArgError("new_canvas", "new_canvas expects positive width and height")
	}
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, int(w), int(h)))}, nil
}

func asCanvas(fn string, v values.Value) (*canvas, error) {
	c, ok := v.(*canvas)
	if !ok {
		return nil, WrongType(fn, 0, "canvas", v)
	}
	return c, nil
}

func rgbaArg(v values.Value) (color.RGBA, bool) {
	l, ok := AsList(v)
	if !ok || len(l.Elements) < 3 {
		return color.RGBA{}, false
	}
	r, ok1 := AsInt(l.Elements[0])
	g, ok2 := AsInt(l.Elements[1])
	bl, ok3 := AsInt(l.Elements[2])
	a := int64(255)
	if len(l.Elements) >= 4 {
		if av, ok := AsInt(l.Elements[3]); ok {
			a = av
		}
	}
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(bl), A: uint8(a)}, true
}

// Syntax: set_pixel(canvas, x, y, [r, g, b, a?])
func gfxSetPixel(args []values.Value) (values.Value, error) {
	c, err := asCanvas("set_pixel", args[0])
	if err != nil {
		return nil, err
	}
	x, ok1 := AsInt(args[1])
	y, ok2 := AsInt(args[2])
	col, ok3 := rgbaArg(args[3])
	if !ok1 || !ok2 || !ok3 {
		return nil, ArgError("set_pixel", "set_pixel expects (canvas, x, y, [r,g,b,a?])")
	}
	c.img.SetRGBA(int(x), int(y), col)
	return values.NilValue, nil
}

// Syntax: fill_rect(canvas, x, y, w, h, [r, g, b, a?])
func gfxFillRect(args []values.Value) (values.Value, error) {
	c, err := asCanvas("fill_rect", args[0])
	if err != nil {
		return nil, err
	}
	x, ok1 := AsInt(args[1])
	y, ok2 := AsInt(args[2])
	w, ok3 := AsInt(args[3])
	h, ok4 := AsInt(args[4])
	col, ok5 := rgbaArg(args[5])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, ArgError("fill_rect", "fill_rect expects (canvas, x, y, w, h, [r,g,b,a?])")
	}
	for dy := int64(0); dy < h; dy++ {
		for dx := int64(0); dx < w; dx++ {
			c.img.SetRGBA(int(x+dx), int(y+dy), col)
		}
	}
	return values.NilValue, nil
}

// Syntax: save_png(canvas, path)
func gfxSavePNG(args []values.Value) (values.Value, error) {
	c, err := asCanvas("save_png", args[0])
	if err != nil {
		return nil, err
	}
	path, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("save_png", 1, "string", args[1])
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, ArgError("save_png", "could not create %q: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return nil, ArgError("save_png", "encode failed: %v", err)
	}
	return values.NilValue, nil
}
