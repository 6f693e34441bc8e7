package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// fixed palette shared by all chart kinds; slices and bars cycle through it
var fillPalette = []drawing.Color{
	{R: 54, G: 162, B: 235, A: 204},  // blue
	{R: 255, G: 99, B: 132, A: 204},  // red
	{R: 75, G: 192, B: 192, A: 204},  // teal
	{R: 255, G: 206, B: 86, A: 204},  // yellow
	{R: 153, G: 102, B: 255, A: 204}, // purple
	{R: 255, G: 159, B: 64, A: 204},  // orange
	{R: 46, G: 204, B: 113, A: 204},  // green
	{R: 231, G: 76, B: 60, A: 204},   // dark red
	{R: 52, G: 152, B: 219, A: 204},  // medium blue
	{R: 241, G: 196, B: 15, A: 204},  // gold
	{R: 155, G: 89, B: 182, A: 204},  // violet
	{R: 26, G: 188, B: 156, A: 204},  // turquoise
}

// fillColor returns the palette entry for index i.
func fillColor(i int) drawing.Color {
	return fillPalette[i%len(fillPalette)]
}

// strokeColor is fillColor at full opacity.
func strokeColor(i int) drawing.Color {
	c := fillColor(i)
	c.A = 255
	return c
}
