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
	"fmt"
	"os"

	"github.com/NicoleBenlot/volcano"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ConfigData holds the scenario configuration for one overlay render.
type ConfigData struct {
	// VolcanoName selects a volcano from the built-in catalog. If it
	// is empty, Lon and Lat give the vent location directly.
	VolcanoName string
	Lon, Lat    float64

	GridRes  int     // grid points per axis
	ExtentKM float64 // kilometers from the vent to each grid edge

	AlertLevel int     // alert scale, 0 (Normal) through 4 (Hazardous Eruption)
	Magnitude  float64 // estimated seismic magnitude

	WindDirDeg   float64 // meteorological wind direction, degrees
	WindSpeedKMH float64 // wind speed, km/h
	AshScale     float64 // multiplier on the ash source radius

	DamageColormap string
	AshColormap    string

	// OutputDir is the directory the overlay images and the bounds
	// sidecar are written to. It can include environment variables.
	OutputDir string
}

// ScenarioConfig reads the scenario configuration out of cfg,
// checking it for obvious mistakes.
func ScenarioConfig(cfg *viper.Viper) (*ConfigData, error) {
	c := &ConfigData{
		VolcanoName:    cfg.GetString("VolcanoName"),
		Lon:            cast.ToFloat64(cfg.Get("Lon")),
		Lat:            cast.ToFloat64(cfg.Get("Lat")),
		GridRes:        cast.ToInt(cfg.Get("GridRes")),
		ExtentKM:       cast.ToFloat64(cfg.Get("ExtentKM")),
		AlertLevel:     cast.ToInt(cfg.Get("AlertLevel")),
		Magnitude:      cast.ToFloat64(cfg.Get("Magnitude")),
		WindDirDeg:     cast.ToFloat64(cfg.Get("WindDirDeg")),
		WindSpeedKMH:   cast.ToFloat64(cfg.Get("WindSpeedKMH")),
		AshScale:       cast.ToFloat64(cfg.Get("AshScale")),
		DamageColormap: cfg.GetString("DamageColormap"),
		AshColormap:    cfg.GetString("AshColormap"),
		OutputDir:      os.ExpandEnv(cfg.GetString("OutputDir")),
	}
	if c.VolcanoName != "" {
		v, err := volcano.FindVolcano(c.VolcanoName)
		if err != nil {
			return nil, err
		}
		c.Lon, c.Lat = v.Lon, v.Lat
	}
	if c.AlertLevel < 0 || c.AlertLevel > 4 {
		return nil, fmt.Errorf("volcanoutil: AlertLevel must be between 0 and 4 but is %d", c.AlertLevel)
	}
	if c.AshScale <= 0 {
		return nil, fmt.Errorf("volcanoutil: AshScale must be positive but is %g", c.AshScale)
	}
	// Surface colormap mistakes before any rendering work happens.
	for _, name := range []string{c.DamageColormap, c.AshColormap} {
		if _, err := volcano.DefaultRamps(name); err != nil {
			return nil, err
		}
	}
	if c.OutputDir == "" {
		return nil, fmt.Errorf("volcanoutil: an OutputDir must be specified")
	}
	return c, nil
}
