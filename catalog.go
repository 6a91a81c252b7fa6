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

import "fmt"

// Volcano is an entry in the built-in volcano catalog.
type Volcano struct {
	Name     string
	Lat, Lon float64
	Status   string // "Active", "Potentially Active", or "Inactive"
}

// Volcanoes is the built-in catalog of Philippine volcanoes.
var Volcanoes = []Volcano{
	{Name: "Taal Volcano", Lat: 14.002, Lon: 120.997, Status: "Active"},
	{Name: "Mayon Volcano", Lat: 13.257, Lon: 123.685, Status: "Active"},
	{Name: "Pinatubo Volcano", Lat: 15.142, Lon: 120.349, Status: "Active"},
	{Name: "Kanlaon Volcano", Lat: 10.412, Lon: 123.132, Status: "Active"},
	{Name: "Bulusan Volcano", Lat: 12.770, Lon: 124.050, Status: "Active"},
	{Name: "Mount Apo", Lat: 6.987, Lon: 125.255, Status: "Potentially Active"},
	{Name: "Mount Pulag", Lat: 16.611, Lon: 120.889, Status: "Inactive"},
	{Name: "Mount Arayat", Lat: 15.200, Lon: 120.742, Status: "Potentially Active"},
	{Name: "Leonard Kniaseff", Lat: 7.100, Lon: 125.800, Status: "Potentially Active"},
	{Name: "Cabalian", Lat: 10.200, Lon: 125.200, Status: "Potentially Active"},
	{Name: "Isarog", Lat: 13.600, Lon: 123.400, Status: "Potentially Active"},
	{Name: "Babuyan Claro", Lat: 19.500, Lon: 121.900, Status: "Active"},
	{Name: "Biliran", Lat: 11.520, Lon: 124.530, Status: "Active"},
	{Name: "Cagua", Lat: 18.220, Lon: 122.120, Status: "Active"},
	{Name: "Didicas", Lat: 19.080, Lon: 122.200, Status: "Active"},
	{Name: "Iraya", Lat: 20.366, Lon: 122.000, Status: "Active"},
	{Name: "Matutum", Lat: 6.350, Lon: 125.070, Status: "Active"},
	{Name: "Makaturing", Lat: 7.650, Lon: 124.300, Status: "Active"},
	{Name: "Musuan", Lat: 7.600, Lon: 125.070, Status: "Active"},
	{Name: "Parker", Lat: 6.120, Lon: 124.890, Status: "Active"},
	{Name: "Ragang", Lat: 7.700, Lon: 124.500, Status: "Active"},
	{Name: "Smith Volcano", Lat: 19.525, Lon: 121.913, Status: "Active"},
	{Name: "Camiguin de Babuyanes", Lat: 19.300, Lon: 121.900, Status: "Active"},
}

// FindVolcano looks a volcano up in the catalog by name.
func FindVolcano(name string) (Volcano, error) {
	for _, v := range Volcanoes {
		if v.Name == name {
			return v, nil
		}
	}
	return Volcano{}, fmt.Errorf("volcano: %q is not in the volcano catalog", name)
}

// AlertLevel is an eruption severity level on the 0–4 alert scale.
// It drives both the damage model's amplitude and the hazard radius.
type AlertLevel int

const (
	AlertNormal AlertLevel = iota
	AlertAbnormal
	AlertIncreasingUnrest
	AlertMinorEruption
	AlertHazardousEruption
)

var alertNames = [...]string{
	"Normal",
	"Abnormal",
	"Increasing Unrest",
	"Minor Eruption",
	"Hazardous Eruption",
}

var alertCutoffKM = [...]float64{0, 5, 12, 25, 50}

func (l AlertLevel) String() string {
	if l < AlertNormal || int(l) >= len(alertNames) {
		return fmt.Sprintf("AlertLevel(%d)", int(l))
	}
	return alertNames[l]
}

// CutoffRadius returns the hard hazard boundary in kilometers for the
// alert level. Levels outside 0–4 are clamped to the nearest level.
func (l AlertLevel) CutoffRadius() float64 {
	if l < AlertNormal {
		l = AlertNormal
	} else if l > AlertHazardousEruption {
		l = AlertHazardousEruption
	}
	return alertCutoffKM[l]
}

// Radius returns the nominal hazard radius for the alert level: half
// the cutoff radius, with a 0.1 km floor at the "Normal" level so the
// models still receive a positive radius (the zero cutoff keeps the
// fields empty regardless).
func (l AlertLevel) Radius() float64 {
	if c := l.CutoffRadius(); c > 0 {
		return c / 2
	}
	return 0.1
}
