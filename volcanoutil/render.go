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
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/NicoleBenlot/volcano"
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// Bounds is the sidecar record written next to the overlay images,
// giving the geographic box they cover so a map layer can place them.
type Bounds struct {
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
}

// Render builds the simulation grid for the configured scenario,
// computes the damage and ash hazard fields, and writes damage.png,
// ash.png, and bounds.json to the configured output directory.
func Render(cfg *ConfigData) error {
	level := volcano.AlertLevel(cfg.AlertLevel)
	logger.WithFields(logrus.Fields{
		"volcano": cfg.VolcanoName,
		"lon":     cfg.Lon,
		"lat":     cfg.Lat,
		"alert":   level.String(),
	}).Info("rendering hazard overlays")

	grid, err := volcano.NewGrid(cfg.Lon, cfg.Lat, cfg.GridRes, cfg.ExtentKM)
	if err != nil {
		return err
	}
	cutoff := level.CutoffRadius()
	radius := level.Radius()

	damage := grid.Damage(radius, float64(level), cfg.Magnitude, cutoff)
	ash := grid.Ash(radius*cfg.AshScale, cfg.WindDirDeg, cfg.WindSpeedKMH, cutoff)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("volcanoutil: creating output directory: %v", err)
	}
	if err := writeOverlay(filepath.Join(cfg.OutputDir, "damage.png"), damage, cfg.DamageColormap); err != nil {
		return err
	}
	if err := writeOverlay(filepath.Join(cfg.OutputDir, "ash.png"), ash, cfg.AshColormap); err != nil {
		return err
	}
	b := grid.Bounds()
	if err := writeBounds(filepath.Join(cfg.OutputDir, "bounds.json"), Bounds{
		LonMin: b.Min.X,
		LonMax: b.Max.X,
		LatMin: b.Min.Y,
		LatMax: b.Max.Y,
	}); err != nil {
		return err
	}
	logger.WithField("dir", cfg.OutputDir).Info("overlays written")
	return nil
}

// writeOverlay rasterizes a field through the named ramp and encodes
// it as a PNG, the lossless format map layers overlay directly.
func writeOverlay(path string, field *sparse.DenseArray, rampName string) error {
	img, err := volcano.Rasterize(field, rampName)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("volcanoutil: creating overlay file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("volcanoutil: encoding %s: %v", filepath.Base(path), err)
	}
	return f.Close()
}

func writeBounds(path string, b Bounds) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("volcanoutil: creating bounds file: %v", err)
	}
	defer f.Close()
	e := json.NewEncoder(f)
	e.SetIndent("", "  ")
	if err := e.Encode(b); err != nil {
		return fmt.Errorf("volcanoutil: encoding bounds: %v", err)
	}
	return f.Close()
}
