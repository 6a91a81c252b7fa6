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

// Package volcanoutil wires the volcano hazard model into a
// configurable command-line tool.
package volcanoutil

import (
	"fmt"
	"time"

	"github.com/NicoleBenlot/volcano"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()
	Cfg.SetEnvPrefix("VOLCANO")
	Cfg.AutomaticEnv()

	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to the renderer.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "VolcanoName",
			usage: `
              VolcanoName selects a volcano from the built-in catalog by name.
              If it is left empty, the Lon and Lat options locate the vent directly.`,
			shorthand:  "v",
			defaultVal: "Taal Volcano",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Lon",
			usage: `
              Lon is the vent longitude in degrees. Only used when VolcanoName is empty.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Lat",
			usage: `
              Lat is the vent latitude in degrees. Only used when VolcanoName is empty.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "GridRes",
			usage: `
              GridRes is the number of grid points along each axis of the
              simulation grid.`,
			defaultVal: 240,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "ExtentKM",
			usage: `
              ExtentKM is the distance in kilometers from the vent to each edge
              of the simulation grid.`,
			defaultVal: 60.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "AlertLevel",
			usage: `
              AlertLevel is the eruption alert level, from 0 (Normal) through
              4 (Hazardous Eruption). It sets both the damage amplitude and the
              hazard cutoff radius.`,
			shorthand:  "a",
			defaultVal: 2,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "Magnitude",
			usage: `
              Magnitude is the estimated seismic magnitude accompanying the
              eruption, normalized against a reference magnitude of 7 by the
              damage model.`,
			defaultVal: 3.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "WindDirDeg",
			usage: `
              WindDirDeg is the meteorological wind direction in degrees: the
              direction the wind blows from. The ash plume travels the
              opposite way.`,
			defaultVal: 90.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "WindSpeedKMH",
			usage: `
              WindSpeedKMH is the wind speed in kilometers per hour. Faster
              wind stretches the ash plume farther downwind.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "AshScale",
			usage: `
              AshScale is a multiplier applied to the ash source radius,
              for exaggerating or muting the plume.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "DamageColormap",
			usage: `
              DamageColormap names the color ramp for the damage overlay.`,
			defaultVal: "violet_yellow",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "AshColormap",
			usage: `
              AshColormap names the color ramp for the ash overlay.`,
			defaultVal: "white_gray_black",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory the overlay images and the bounds
              sidecar are written to. It can include environment variables.`,
			shorthand:  "o",
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch def := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, def, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, def, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, def, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, def, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, def, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, def, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, def, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, def, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(renderCmd)
	Root.AddCommand(listCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("volcanoutil: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "volcano",
	Short: "A volcanic hazard overlay renderer.",
	Long: `Volcano renders stylized volcanic hazard fields (ground damage and
airborne ash) as georeferenced RGBA overlay images for display on a map.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'VOLCANO_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Volcano.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Volcano v%s\n", volcano.Version)
	},
	DisableAutoGenTag: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render hazard overlays for one scenario.",
	Long: `render builds the simulation grid for the configured volcano and
scenario, computes the damage and ash fields, and writes the two overlay
images along with a sidecar file holding the geographic bounding box
they cover.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ScenarioConfig(Cfg)
		if err != nil {
			return err
		}
		return Render(cfg)
	},
	DisableAutoGenTag: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the volcanoes in the built-in catalog.",
	Long:  "list prints the name, location, and activity status of every volcano in the built-in catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, v := range volcano.Volcanoes {
			cmd.Printf("%-24s %8.3f %8.3f  %s\n", v.Name, v.Lon, v.Lat, v.Status)
		}
	},
	DisableAutoGenTag: true,
}
