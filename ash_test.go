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
	"reflect"
	"testing"
)

func TestAshRange(t *testing.T) {
	g := testGrid(t, 50, 40)
	ash := g.Ash(10, 90, 15, 20)
	for i, v := range ash.Elements {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			t.Fatalf("element %d: %g outside [0,1]", i, v)
		}
	}
	// The normalized, rescaled, contrast-boosted plume saturates at
	// its brightest point for this radius/cutoff combination.
	if ash.Max() != 1 {
		t.Errorf("peak ash intensity should be 1 but is %g", ash.Max())
	}
}

func TestAshExtendedCutoff(t *testing.T) {
	g := testGrid(t, 50, 40)
	const cutoff = 20.0
	ash := g.Ash(10, 0, 20, cutoff)
	for i, v := range ash.Elements {
		if g.Dist.Elements[i] > cutoff*ashCutoffFactor && v != 0 {
			t.Fatalf("element %d: %g nonzero at distance %g beyond %g",
				i, v, g.Dist.Elements[i], cutoff*ashCutoffFactor)
		}
	}
}

func TestAshDegenerate(t *testing.T) {
	g := testGrid(t, 30, 40)
	for _, c := range []struct {
		name           string
		radius, cutoff float64
	}{
		{"zero radius", 0, 20},
		{"zero cutoff", 10, 0},
		{"negative cutoff", 10, -3},
	} {
		ash := g.Ash(c.radius, 90, 10, c.cutoff)
		for i, v := range ash.Elements {
			if v != 0 {
				t.Errorf("%s: element %d is %g, want 0", c.name, i, v)
				break
			}
		}
	}
}

// Wind from the north must push the plume south of the vent: summed
// intensity over the southern half of the grid should dominate the
// northern half by a wide margin.
func TestAshDownwindBias(t *testing.T) {
	g := testGrid(t, 50, 40)
	ash := g.Ash(10, 0, 20, 20)
	var south, north float64
	for j := 0; j < 50; j++ {
		for i := 0; i < 50; i++ {
			if j < 25 { // rows are ordered south to north
				south += ash.Get(j, i)
			} else {
				north += ash.Get(j, i)
			}
		}
	}
	if south < 2*north {
		t.Errorf("southern intensity %g should exceed twice the northern %g", south, north)
	}
}

// Rotating the wind by 90° rotates the plume lobe with it.
func TestAshWindRotation(t *testing.T) {
	g := testGrid(t, 51, 40)
	// Wind from the east (90°): the plume travels west.
	ash := g.Ash(10, 90, 20, 20)
	var west, east float64
	for j := 0; j < 51; j++ {
		for i := 0; i < 51; i++ {
			if i < 25 {
				west += ash.Get(j, i)
			} else if i > 25 {
				east += ash.Get(j, i)
			}
		}
	}
	if west < 2*east {
		t.Errorf("western intensity %g should exceed twice the eastern %g", west, east)
	}
}

func TestAshCalmWind(t *testing.T) {
	g := testGrid(t, 40, 40)
	// Zero wind speed hits the 0.1 wind-factor floor rather than
	// collapsing the plume to a line.
	ash := g.Ash(10, 45, 0, 20)
	for i, v := range ash.Elements {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("element %d is not finite: %g", i, v)
		}
	}
	if ash.Max() == 0 {
		t.Error("calm-wind plume should still be visible")
	}
}

func TestAshIdempotent(t *testing.T) {
	g := testGrid(t, 40, 40)
	a := g.Ash(10, 220, 12, 20)
	b := g.Ash(10, 220, 12, 20)
	if !reflect.DeepEqual(a.Elements, b.Elements) {
		t.Error("identical inputs should give bit-identical fields")
	}
}
