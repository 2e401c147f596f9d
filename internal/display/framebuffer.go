package display

// Framebuffer is an in-memory Display. Pixels written outside the grid are
// silently dropped, the same way the SSD1306 buffer trims partial glyphs.
type Framebuffer struct {
	width, height int
	pix           []bool
	flushes       int
	onFlush       func(*Framebuffer)
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// OnFlush registers fn to run on every Flush, after the counter is bumped.
func (f *Framebuffer) OnFlush(fn func(*Framebuffer)) { f.onFlush = fn }

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

func (f *Framebuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = false
	}
}

func (f *Framebuffer) SetPixel(x, y int) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = true
}

func (f *Framebuffer) HLine(x, y, length int) {
	for i := 0; i < length; i++ {
		f.SetPixel(x+i, y)
	}
}

func (f *Framebuffer) Flush() {
	f.flushes++
	if f.onFlush != nil {
		f.onFlush(f)
	}
}

// Pixel reports whether (x, y) is lit. Out-of-range reads return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.pix[y*f.width+x]
}

// Count returns the number of lit pixels.
func (f *Framebuffer) Count() int {
	n := 0
	for _, on := range f.pix {
		if on {
			n++
		}
	}
	return n
}

func (f *Framebuffer) Flushes() int { return f.flushes }

// Pages packs the buffer in SSD1306 GDDRAM order: one byte per column per
// 8-row page, least significant bit at the top.
func (f *Framebuffer) Pages() []byte {
	pages := (f.height + 7) / 8
	out := make([]byte, pages*f.width)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.pix[y*f.width+x] {
				out[(y/8)*f.width+x] |= 1 << uint(y%8)
			}
		}
	}
	return out
}

// String renders the buffer as rows of '#' and '.'.
func (f *Framebuffer) String() string {
	buf := make([]byte, 0, (f.width+1)*f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.pix[y*f.width+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
