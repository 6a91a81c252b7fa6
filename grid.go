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

// Package volcano models two volcanic hazard fields, ground damage
// and airborne ash, on a regular grid surrounding a vent, and renders them
// as color-mapped RGBA overlays for display on a map.
//
// The model is a stylized decay/plume approximation intended for
// visualization, not a validated hazard model. Distances are computed
// with a local planar approximation (degrees scaled to kilometers at
// the grid center), which is adequate at the tens-of-kilometers scale
// the model operates on but is not geodesic distance.
package volcano

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Version gives the version number.
const Version = "0.3.1"

const (
	// kmPerDegLat is the approximate north-south distance
	// spanned by one degree of latitude.
	kmPerDegLat = 111.0

	// kmPerDegLonEq is the east-west distance spanned by one
	// degree of longitude at the equator. The distance at other
	// latitudes is this value scaled by cos(latitude).
	kmPerDegLonEq = 111.320
)

// Grid is a regular lattice of points surrounding a vent, in both
// geographic (degrees) and local planar (kilometer) coordinates.
// A Grid is immutable after construction; changing any parameter
// requires building a new one.
type Grid struct {
	centerLon, centerLat float64
	res                  int
	bounds               *geom.Bounds
	lonKMPerDeg          float64

	// Lon and Lat hold the geographic coordinates of each grid
	// point, and Dist the planar distance in kilometers from each
	// point to the center. All are res×res with rows ordered
	// south to north.
	Lon, Lat, Dist *sparse.DenseArray
}

// lonKMPerDegree returns the east-west kilometers spanned by one
// degree of longitude at the given latitude. Near the poles, where
// cos(latitude) vanishes, the equatorial value is used instead to
// avoid dividing by zero when converting an extent to degrees.
func lonKMPerDegree(lat float64) float64 {
	c := math.Cos(lat * math.Pi / 180)
	if math.Abs(c) < 1e-6 {
		return kmPerDegLonEq
	}
	return kmPerDegLonEq * c
}

// NewGrid creates a grid of resolution×resolution points centered on
// (centerLon, centerLat), spanning extentKM kilometers on either side
// of the center along each axis. The geographic bounding box is
// derived from the extent using latitude-dependent scaling, so grids
// at different latitudes cover the same physical area despite
// differing in degrees.
func NewGrid(centerLon, centerLat float64, resolution int, extentKM float64) (*Grid, error) {
	if extentKM <= 0 {
		return nil, fmt.Errorf("volcano: grid extent must be positive but is %g km", extentKM)
	}
	latSpan := extentKM / kmPerDegLat
	lonSpan := extentKM / lonKMPerDegree(centerLat)
	b := &geom.Bounds{
		Min: geom.Point{X: centerLon - lonSpan, Y: centerLat - latSpan},
		Max: geom.Point{X: centerLon + lonSpan, Y: centerLat + latSpan},
	}
	return NewGridFromBounds(b, centerLon, centerLat, resolution)
}

// NewGridFromBounds creates a grid of resolution×resolution points
// spanning the given geographic bounds, with distances measured from
// (centerLon, centerLat). It is the constructor to use when the
// caller already knows the box the overlay must cover; NewGrid is the
// one to use when only a physical extent is known.
func NewGridFromBounds(b *geom.Bounds, centerLon, centerLat float64, resolution int) (*Grid, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("volcano: grid resolution must be at least 2 but is %d", resolution)
	}
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
		return nil, fmt.Errorf("volcano: grid bounds %+v are empty", *b)
	}
	g := &Grid{
		centerLon:   centerLon,
		centerLat:   centerLat,
		res:         resolution,
		bounds:      &geom.Bounds{Min: b.Min, Max: b.Max},
		lonKMPerDeg: lonKMPerDegree(centerLat),
	}
	lons := floats.Span(make([]float64, resolution), b.Min.X, b.Max.X)
	lats := floats.Span(make([]float64, resolution), b.Min.Y, b.Max.Y)
	g.Lon = sparse.ZerosDense(resolution, resolution)
	g.Lat = sparse.ZerosDense(resolution, resolution)
	g.Dist = sparse.ZerosDense(resolution, resolution)
	for j, lat := range lats {
		dy := (lat - centerLat) * kmPerDegLat
		for i, lon := range lons {
			dx := (lon - centerLon) * g.lonKMPerDeg
			g.Lon.Set(lon, j, i)
			g.Lat.Set(lat, j, i)
			g.Dist.Set(math.Sqrt(dx*dx+dy*dy), j, i)
		}
	}
	return g, nil
}

// Bounds returns the geographic bounding box covered by the grid,
// for placing rasters produced from it.
func (g *Grid) Bounds() *geom.Bounds {
	return &geom.Bounds{Min: g.bounds.Min, Max: g.bounds.Max}
}

// Resolution returns the number of grid points along each axis.
func (g *Grid) Resolution() int { return g.res }

// Center returns the grid center (the vent location) in degrees.
func (g *Grid) Center() geom.Point {
	return geom.Point{X: g.centerLon, Y: g.centerLat}
}

// offsetKM returns the planar offset in kilometers of the grid point
// at flat index i from the center.
func (g *Grid) offsetKM(i int) (x, y float64) {
	x = (g.Lon.Elements[i] - g.centerLon) * g.lonKMPerDeg
	y = (g.Lat.Elements[i] - g.centerLat) * kmPerDegLat
	return
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
