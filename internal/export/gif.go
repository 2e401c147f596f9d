package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/threebody/internal/display"
)

var ErrNoFrames = errors.New("no frames recorded")

var palette = color.Palette{color.Black, color.White}

// GIFRecorder captures every flushed frame of a Framebuffer.
type GIFRecorder struct {
	frames []*image.Paletted
	scale  int
	delay  int
	limit  int
}

// NewGIFRecorder hooks into fb's flush. Each device pixel becomes a
// scale x scale block; delay is in hundredths of a second. With limit > 0
// only the first limit frames are kept.
func NewGIFRecorder(fb *display.Framebuffer, scale, delay, limit int) *GIFRecorder {
	if scale < 1 {
		scale = 1
	}
	r := &GIFRecorder{scale: scale, delay: delay, limit: limit}
	fb.OnFlush(r.capture)
	return r
}

func (r *GIFRecorder) capture(fb *display.Framebuffer) {
	if r.limit > 0 && len(r.frames) >= r.limit {
		return
	}

	img := image.NewPaletted(image.Rect(0, 0, fb.Width()*r.scale, fb.Height()*r.scale), palette)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if !fb.Pixel(x, y) {
				continue
			}
			for py := 0; py < r.scale; py++ {
				for px := 0; px < r.scale; px++ {
					img.SetColorIndex(x*r.scale+px, y*r.scale+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *GIFRecorder) Frames() int { return len(r.frames) }

// Save encodes the captured frames as a looping animation.
func (r *GIFRecorder) Save(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}
