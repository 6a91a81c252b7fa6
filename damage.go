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

// Damage computes the ground-damage intensity field for an eruption
// with the given nominal hazard radius (km), alert scale (0–4, where
// 4 is maximum severity), estimated seismic magnitude (normalized
// against a reference magnitude of 7), and hard cutoff radius (km).
// Every value in the returned field is in [0, 1], and the field is
// exactly zero everywhere the distance from the vent exceeds
// cutoffRadius, so the visible edge of the raster matches a hazard
// boundary drawn at the same radius.
//
// A non-positive radius or cutoffRadius is not an error: it means a
// quiet volcano, and the result is an all-zero field.
func (g *Grid) Damage(radius, alertScale, magnitude, cutoffRadius float64) *sparse.DenseArray {
	damage := sparse.ZerosDense(g.res, g.res)
	if radius <= 0 || cutoffRadius <= 0 {
		return damage
	}
	scaleFactor := clamp(alertScale/4, 0, 1)
	quakeFactor := clamp(magnitude/7, 0, 1)
	falloffKM := math.Max(1, cutoffRadius/6)
	for i, d := range g.Dist.Elements {
		if d > cutoffRadius {
			continue // beyond the declared hazard boundary
		}
		base := clamp(1-d/radius, 0, 1)
		v := base * scaleFactor * quakeFactor * math.Exp(-d/falloffKM)
		damage.Elements[i] = clamp(v*2, 0, 1)
	}
	return damage
}
