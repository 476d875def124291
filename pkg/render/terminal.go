package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer's color buffer to terminal cells and
// draws them on the screen.
// Each terminal row represents 2 framebuffer rows: we use ▀ (upper half
// block) with fg=top pixel and bg=bottom pixel, so the framebuffer
// height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.cellColor(col, topY),
					Bg: fb.cellColor(col, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor converts the pixel at (x, y) to Go's color.Color interface.
// Rows past the buffer and transparent pixels map to no color.
func (fb *Framebuffer) cellColor(x, y int) color.Color {
	if y >= fb.height {
		return nil
	}
	c := fb.color.Get(x, y)
	if c.A == 0 {
		return nil
	}
	return color.RGBA{c.R, c.G, c.B, c.A}
}
