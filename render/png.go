package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

const (
	tileSize     = 48
	islandMargin = 6
	bridgeWidth  = 4
)

var (
	colorBackground = color.White
	colorIsland     = color.White
	colorIslandEdge = color.Black
	colorBridge     = color.RGBA{R: 0x4f, G: 0x81, B: 0xbd, A: 0xff}
)

// WritePNG rasterizes cells onto a grid of fixed-size tiles: islands
// as a ringed circle of one fixed radius, bridges as one or
// two colored bars between tile centers. Island demand digits are not
// glyph-rendered; the circle alone distinguishes an island from open
// water.
func WritePNG(w io.Writer, cells [][]string) error {
	rows := len(cells)
	if rows == 0 {
		return png.Encode(w, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	}
	cols := len(cells[0])

	img := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx, cy := c*tileSize+tileSize/2, r*tileSize+tileSize/2
			switch cells[r][c] {
			case symbolBridgeHorizontal:
				drawHBar(img, cx, cy)
			case symbolBridgeHDouble:
				drawHBar(img, cx, cy-islandMargin/2)
				drawHBar(img, cx, cy+islandMargin/2)
			case symbolBridgeVertical:
				drawVBar(img, cx, cy)
			case symbolBridgeVDouble:
				drawVBar(img, cx-islandMargin/2, cy)
				drawVBar(img, cx+islandMargin/2, cy)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r][c] == symbolEmpty {
				continue
			}
			if isBridgeSymbol(cells[r][c]) {
				continue
			}
			cx, cy := c*tileSize+tileSize/2, r*tileSize+tileSize/2
			drawIsland(img, cx, cy)
		}
	}

	return png.Encode(w, img)
}

func isBridgeSymbol(s string) bool {
	switch s {
	case symbolBridgeHorizontal, symbolBridgeHDouble, symbolBridgeVertical, symbolBridgeVDouble:
		return true
	default:
		return false
	}
}

// drawHBar draws a horizontal colored bar spanning one tile width,
// centered at (cx, cy).
func drawHBar(img *image.RGBA, cx, cy int) {
	y0, y1 := cy-bridgeWidth/2, cy+bridgeWidth/2
	x0, x1 := cx-tileSize/2, cx+tileSize/2
	fillRect(img, x0, y0, x1, y1, colorBridge)
}

// drawVBar draws a vertical colored bar spanning one tile height,
// centered at (cx, cy).
func drawVBar(img *image.RGBA, cx, cy int) {
	x0, x1 := cx-bridgeWidth/2, cx+bridgeWidth/2
	y0, y1 := cy-tileSize/2, cy+tileSize/2
	fillRect(img, x0, y0, x1, y1, colorBridge)
}

// drawIsland draws a ringed circle representing an island, centered at
// (cx, cy) with radius tileSize/2 - islandMargin.
func drawIsland(img *image.RGBA, cx, cy int) {
	radius := tileSize/2 - islandMargin
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := dx*dx + dy*dy
			r2 := radius * radius
			switch {
			case d2 <= r2 && d2 >= (radius-2)*(radius-2):
				img.Set(cx+dx, cy+dy, colorIslandEdge)
			case d2 < (radius-2)*(radius-2):
				img.Set(cx+dx, cy+dy, colorIsland)
			}
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
}
