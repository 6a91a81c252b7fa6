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
	"math"

	"github.com/ctessum/sparse"
)

// ashCutoffFactor extends the ash field's hard boundary beyond the
// damage cutoff: airborne ash travels farther than solid ejecta.
const ashCutoffFactor = 1.5

// Ash computes the airborne-ash plume intensity field for an eruption
// with the given nominal hazard radius (km), wind direction (degrees,
// meteorological convention: the direction the wind blows from), wind
// speed (km/h), and cutoff radius (km). The plume is an anisotropic
// Gaussian stretched downwind in proportion to wind speed, with the
// upwind half suppressed, attenuated radially, and normalized so the
// brightest point saturates. Every value in the returned field is in
// [0, 1], and the field is exactly zero everywhere the distance from
// the vent exceeds ashCutoffFactor×cutoffRadius.
//
// As with Damage, a non-positive radius or cutoffRadius yields an
// all-zero field rather than an error.
func (g *Grid) Ash(radius, windDirDeg, windSpeed, cutoffRadius float64) *sparse.DenseArray {
	ash := sparse.ZerosDense(g.res, g.res)
	if radius <= 0 || cutoffRadius <= 0 {
		return ash
	}

	// The plume travels downwind, opposite the meteorological
	// direction. Angles are measured clockwise from north, so the
	// unit vector is (sin, cos) rather than (cos, sin).
	ashRad := math.Mod(windDirDeg+180, 360) * math.Pi / 180
	ux, uy := math.Sin(ashRad), math.Cos(ashRad)

	windFactor := math.Max(0.1, windSpeed/10)
	parallelSigma := math.Max(1, (radius+1)*0.4*windFactor)
	perpSigma := math.Max(0.5, (radius+1)*0.25)
	attenKM := math.Max(1, cutoffRadius/3)

	for i, d := range g.Dist.Elements {
		rx, ry := g.offsetKM(i)
		// Rotate the offset into plume-aligned coordinates:
		// parallel runs downwind, perp across the wind.
		parallel := rx*ux + ry*uy
		perp := -rx*uy + ry*ux

		gauss := math.Exp(-0.5 * ((parallel/parallelSigma)*(parallel/parallelSigma) +
			(perp/perpSigma)*(perp/perpSigma)))
		// Logistic downwind bias: suppress the upwind half so the
		// plume is a lobe, not a symmetric ellipse.
		gauss *= 1 / (1 + math.Exp(-0.8*parallel/parallelSigma))

		ash.Elements[i] = gauss * math.Exp(-d/attenKM)
	}

	if maxAsh := ash.Max(); maxAsh > 0 {
		ash.Scale(1 / maxAsh)
	}
	// Smaller eruptions relative to their cutoff produce visibly
	// fainter plumes.
	amplitude := clamp(radius/math.Max(1, cutoffRadius)*1.2+0.05, 0, 1)
	for i, v := range ash.Elements {
		if g.Dist.Elements[i] > cutoffRadius*ashCutoffFactor {
			ash.Elements[i] = 0
			continue
		}
		ash.Elements[i] = clamp(v*amplitude*2, 0, 1)
	}
	return ash
}
