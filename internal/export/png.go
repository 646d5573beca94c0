/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"bordercalc/internal/domain"
)

// pngPad is the margin around the easel, inches.
const pngPad = 0.5

// WritePNG renders the placement diagram as a PNG file at the configured
// DPI. Labels use the fixed 7x13 face for deterministic output.
func WritePNG(calc domain.Calculation, outPath string, opt Options) error {
	d := Build(calc, opt)
	if d.Easel.W <= 0 || d.Easel.H <= 0 {
		return fmt.Errorf("diagram has no easel area")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	dpi := float64(opt.dpi())
	px := func(in float64) int { return int(math.Round(in * dpi)) }

	docW := d.Easel.W + 2*pngPad
	docH := d.Easel.H + 2*pngPad + 0.6
	img := image.NewRGBA(image.Rect(0, 0, px(docW), px(docH)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ox, oy := pngPad, pngPad+0.4

	var (
		black = color.RGBA{A: 255}
		gray  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		fill  = color.RGBA{R: 225, G: 225, B: 225, A: 255}
		red   = color.RGBA{R: 180, G: 40, B: 40, A: 255}
	)

	rectPx := func(r Rect) image.Rectangle {
		return image.Rect(px(ox+r.X), px(oy+r.Y), px(ox+r.X+r.W), px(oy+r.Y+r.H))
	}

	printRect := rectPx(d.Print)
	draw.Draw(img, printRect, image.NewUniform(fill), image.Point{}, draw.Src)

	strokeRect(img, rectPx(d.Easel), black, 2)
	strokeRect(img, rectPx(d.Paper), gray, 1)
	strokeRect(img, printRect, black, 1)

	if d.ShowBlades {
		easelRect := rectPx(d.Easel)
		vline(img, printRect.Min.X, easelRect.Min.Y, easelRect.Max.Y, red)
		vline(img, printRect.Max.X, easelRect.Min.Y, easelRect.Max.Y, red)
		hline(img, printRect.Min.Y, easelRect.Min.X, easelRect.Max.X, red)
		hline(img, printRect.Max.Y, easelRect.Min.X, easelRect.Max.X, red)
	}

	labelAt(img, px(ox), px(pngPad)+13, d.Title, black)
	cx := (printRect.Min.X + printRect.Max.X) / 2
	cy := (printRect.Min.Y + printRect.Max.Y) / 2
	labelAt(img, printRect.Min.X+4, cy, d.LeftLabel, black)
	labelAt(img, printRect.Max.X-52, cy, d.RightLabel, black)
	labelAt(img, cx-22, printRect.Min.Y+15, d.TopLabel, black)
	labelAt(img, cx-22, printRect.Max.Y-5, d.BottomLabel, black)

	y := px(oy+d.Easel.H) + 24
	for _, w := range d.Warnings {
		labelAt(img, px(ox), y, w, red)
		y += 16
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color, width int) {
	for w := 0; w < width; w++ {
		hline(img, r.Min.Y+w, r.Min.X, r.Max.X, c)
		hline(img, r.Max.Y-1-w, r.Min.X, r.Max.X, c)
		vline(img, r.Min.X+w, r.Min.Y, r.Max.Y, c)
		vline(img, r.Max.X-1-w, r.Min.Y, r.Max.Y, c)
	}
}

func hline(img *image.RGBA, y, x0, x1 int, c color.Color) {
	for x := x0; x < x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y < y1; y++ {
		img.Set(x, y, c)
	}
}

func labelAt(img *image.RGBA, x, y int, s string, c color.Color) {
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	dr.DrawString(s)
}
