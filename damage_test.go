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

func testGrid(t *testing.T, res int, extentKM float64) *Grid {
	t.Helper()
	g, err := NewGrid(120.997, 14.002, res, extentKM)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDamageRange(t *testing.T) {
	g := testGrid(t, 50, 40)
	damage := g.Damage(10, 3, 5, 20)
	for i, v := range damage.Elements {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			t.Fatalf("element %d: %g outside [0,1]", i, v)
		}
	}
	if damage.Max() == 0 {
		t.Error("field should not be all zero for a hazardous scenario")
	}
}

func TestDamageCutoff(t *testing.T) {
	g := testGrid(t, 50, 40)
	const cutoff = 15.0
	damage := g.Damage(10, 4, 6, cutoff)
	for i, v := range damage.Elements {
		if g.Dist.Elements[i] > cutoff && v != 0 {
			t.Fatalf("element %d: %g nonzero at distance %g beyond cutoff %g",
				i, v, g.Dist.Elements[i], cutoff)
		}
	}
}

func TestDamageDegenerate(t *testing.T) {
	g := testGrid(t, 30, 40)
	for _, c := range []struct {
		name           string
		radius, cutoff float64
	}{
		{"zero radius", 0, 20},
		{"zero cutoff", 10, 0},
		{"negative radius", -1, 20},
		{"negative cutoff", 10, -1},
	} {
		damage := g.Damage(c.radius, 3, 5, c.cutoff)
		if got := len(damage.Elements); got != 30*30 {
			t.Errorf("%s: field has %d elements, want %d", c.name, got, 30*30)
		}
		for i, v := range damage.Elements {
			if v != 0 {
				t.Errorf("%s: element %d is %g, want 0", c.name, i, v)
				break
			}
		}
	}
}

func TestDamageScaleFactors(t *testing.T) {
	// Odd resolution puts a grid point exactly on the vent.
	g := testGrid(t, 21, 40)
	// Peak damage at the center scales linearly with alert level
	// (alert/4) and magnitude (magnitude/7), up to the ×2 clamp.
	lo := g.Damage(10, 1, 3.5, 20)
	hi := g.Damage(10, 2, 3.5, 20)
	if different(hi.Max(), 2*lo.Max(), 1e-6) {
		t.Errorf("doubling the alert level should double peak damage: %g vs %g",
			lo.Max(), hi.Max())
	}
	capped := g.Damage(10, 4, 7, 20)
	if capped.Max() != 1 {
		t.Errorf("peak damage at maximum severity should saturate at 1 but is %g", capped.Max())
	}
}

func TestDamageIdempotent(t *testing.T) {
	g := testGrid(t, 40, 40)
	a := g.Damage(10, 3, 5, 20)
	b := g.Damage(10, 3, 5, 20)
	if !reflect.DeepEqual(a.Elements, b.Elements) {
		t.Error("identical inputs should give bit-identical fields")
	}
}
