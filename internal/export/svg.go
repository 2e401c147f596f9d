package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
)

// FramebufferToSVG draws every lit pixel as a scale x scale square.
func FramebufferToSVG(fb *display.Framebuffer, scale float64) string {
	if fb == nil {
		return ""
	}

	width := float64(fb.Width()) * scale
	height := float64(fb.Height()) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if !fb.Pixel(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

var pathColors = [3]string{"#ff00ff", "#00ffff", "#ffff00"}

// OrbitsToSVG plots each body's path in its own colour, fitted to a
// width x height box with 10% padding. Non-finite points are skipped.
func OrbitsToSVG(paths [3][]dynamo.Vec2, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for _, path := range paths {
		for _, p := range path {
			if !p.IsValid() {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			n++
		}
	}
	if n < 2 {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, path := range paths {
		first := true
		for _, p := range path {
			if !p.IsValid() {
				continue
			}
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)

			if first {
				sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M%.1f,%.1f`, pathColors[i], x, y))
				first = false
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		if !first {
			sb.WriteString("\"/>\n")
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
