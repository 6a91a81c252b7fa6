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

package volcanoutil

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testConfig(dir string) *ConfigData {
	return &ConfigData{
		VolcanoName:    "Taal Volcano",
		Lon:            120.997,
		Lat:            14.002,
		GridRes:        40,
		ExtentKM:       60,
		AlertLevel:     3,
		Magnitude:      3,
		WindDirDeg:     90,
		WindSpeedKMH:   10,
		AshScale:       1,
		DamageColormap: "violet_yellow",
		AshColormap:    "white_gray_black",
		OutputDir:      dir,
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	if err := Render(testConfig(dir)); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"damage.png", "ash.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b := img.Bounds()
		if b.Dx() != 40 || b.Dy() != 40 {
			t.Errorf("%s: image is %dx%d, want 40x40", name, b.Dx(), b.Dy())
		}
	}

	f, err := os.Open(filepath.Join(dir, "bounds.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var b Bounds
	if err := json.NewDecoder(f).Decode(&b); err != nil {
		t.Fatal(err)
	}
	if b.LonMin >= 120.997 || b.LonMax <= 120.997 ||
		b.LatMin >= 14.002 || b.LatMax <= 14.002 {
		t.Errorf("bounds %+v do not contain the vent", b)
	}
}

// At the "Normal" alert level both overlays must come out fully
// transparent.
func TestRenderNormalAlert(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.AlertLevel = 0
	if err := Render(cfg); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"damage.png", "ash.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		nrgba, ok := img.(*image.NRGBA)
		if !ok {
			t.Fatalf("%s decoded as %T", name, img)
		}
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				if a := nrgba.NRGBAAt(x, y).A; a != 0 {
					t.Fatalf("%s: pixel (%d,%d) has alpha %d, want 0", name, x, y, a)
				}
			}
		}
	}
}

func TestRenderBadGrid(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.GridRes = 1
	if err := Render(cfg); err == nil {
		t.Error("resolution 1 should fail")
	}
}
