/*
Copyright © 2026 the Volcano authors.
This file is part of Volcano.

Volcano is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Volcano is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Volcano.  If not, see <http://www.gnu.org/licenses/>.
*/

package volcano

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// A Ramp is an ordered list of anchor colors defining a continuous
// piecewise-linear mapping from a normalized scalar in [0, 1] to a
// color. Ramps are immutable values; the built-in ones are table
// constants and external ones are resolved through a RampResolver.
type Ramp []color.NRGBA

// A RampResolver maps a colormap name to a Ramp. It should return an
// error for names it does not recognize rather than falling back to a
// default, so configuration mistakes surface instead of being masked.
type RampResolver func(name string) (Ramp, error)

// rampSamples is the number of anchors sampled from library palettes.
const rampSamples = 64

// The two ramps the hazard models default to: a cool-to-hot ramp for
// ground damage and a light-to-dark ramp for ash density.
var builtinRamps = map[string]Ramp{
	"violet_yellow": {
		{R: 0x80, G: 0x00, B: 0x80, A: 0xff},
		{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	},
	"white_gray_black": {
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	},
}

// DefaultRamps is the RampResolver used by Rasterize. It resolves the
// built-in ramps plus a set of palettes from gonum/plot; any other
// name is an error.
func DefaultRamps(name string) (Ramp, error) {
	if r, ok := builtinRamps[name]; ok {
		return r, nil
	}
	var p palette.Palette
	switch name {
	case "heat":
		p = palette.Heat(rampSamples, 1)
	case "smooth_blue_red":
		p = morelandPalette(moreland.SmoothBlueRed())
	case "kindlmann":
		p = morelandPalette(moreland.Kindlmann())
	case "extended_kindlmann":
		p = morelandPalette(moreland.ExtendedKindlmann())
	case "black_body":
		p = morelandPalette(moreland.BlackBody())
	case "extended_black_body":
		p = morelandPalette(moreland.ExtendedBlackBody())
	default:
		return nil, fmt.Errorf("volcano: unknown colormap %q", name)
	}
	colors := p.Colors()
	r := make(Ramp, len(colors))
	for i, c := range colors {
		r[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return r, nil
}

func morelandPalette(m palette.ColorMap) palette.Palette {
	m.SetMin(0)
	m.SetMax(1)
	return m.Palette(rampSamples)
}

// at interpolates the ramp at v∈[0,1].
func (r Ramp) at(v float64) color.NRGBA {
	if len(r) == 1 {
		return r[0]
	}
	pos := clamp(v, 0, 1) * float64(len(r)-1)
	i := int(pos)
	if i >= len(r)-1 {
		return r[len(r)-1]
	}
	t := pos - float64(i)
	c0, c1 := r[i], r[i+1]
	return color.NRGBA{
		R: lerp8(c0.R, c1.R, t),
		G: lerp8(c0.G, c1.G, t),
		B: lerp8(c0.B, c1.B, t),
		A: 0xff,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}

// Rasterize converts a scalar intensity field into an RGBA image
// using the named color ramp, resolved through DefaultRamps.
func Rasterize(field *sparse.DenseArray, rampName string) (*image.NRGBA, error) {
	return RasterizeWith(field, DefaultRamps, rampName)
}

// RasterizeWith converts a scalar intensity field into an RGBA image
// using a caller-supplied ramp resolver. The field is stretched to
// [0, 1] by its own minimum and maximum before colorization, so the
// output always spans the full ramp. The alpha channel is
// clamp(normalized×1.5, 0, 1), growing faster than color intensity,
// so low-intensity regions fade to transparent when the image is
// composited over a base map.
//
// Field rows are ordered south to north (the Grid convention); image
// rows run top to bottom, so the northernmost field row becomes image
// row zero and the image overlays a map without flipping.
func RasterizeWith(field *sparse.DenseArray, resolve RampResolver, rampName string) (*image.NRGBA, error) {
	ramp, err := resolve(rampName)
	if err != nil {
		return nil, err
	}
	if len(field.Shape) != 2 {
		return nil, fmt.Errorf("volcano: field must have 2 dimensions but has %d", len(field.Shape))
	}
	ny, nx := field.Shape[0], field.Shape[1]
	minV := floats.Min(field.Elements)
	// An epsilon in the denominator keeps an all-equal field (for
	// example the all-zero degenerate case) from dividing by zero.
	span := floats.Max(field.Elements) - minV + 1e-12

	img := image.NewNRGBA(image.Rect(0, 0, nx, ny))
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := (field.Get(j, i) - minV) / span
			c := ramp.at(v)
			c.A = uint8(clamp(v*1.5, 0, 1) * 255)
			img.SetNRGBA(i, ny-1-j, c)
		}
	}
	return img, nil
}
