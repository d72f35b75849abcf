/*
 * config.go, part of csg.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package config loads the settings of the csg program from an optional YAML file
//and CSG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables read, e.g. CSG_LOG_LEVEL.
const envPrefix = "CSG"

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  //debug, info, warn or error
	Format string `mapstructure:"format"` //json or console
}

//PlotConfig holds the picture settings. Sizes are in inches, angles in degrees.
type PlotConfig struct {
	Theme     string  `mapstructure:"theme"`
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	Azimuth   float64 `mapstructure:"azimuth"`
	Elevation float64 `mapstructure:"elevation"`
}

type GeometryConfig struct {
	//Strict makes degenerate geometries (negative or fractional lone pairs) an error
	//instead of a warning.
	Strict bool `mapstructure:"strict"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

//Config is the complete configuration of the program.
type Config struct {
	History  HistoryConfig  `mapstructure:"history"`
	Log      LogConfig      `mapstructure:"log"`
	Plot     PlotConfig     `mapstructure:"plot"`
	Geometry GeometryConfig `mapstructure:"geometry"`
	Batch    BatchConfig    `mapstructure:"batch"`
}

var defaults = map[string]any{
	"history.enabled": true,
	"history.path":    ".db/csg_db.db",
	"log.level":       "info",
	"log.format":      "console",
	"plot.theme":      "light",
	"plot.width":      5.0,
	"plot.height":     5.0,
	"plot.azimuth":    30.0,
	"plot.elevation":  -60.0,
	"geometry.strict": false,
	"batch.workers":   4,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

//Load reads the YAML file at path, if path is not empty, applies CSG_* environment
//overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

//Default returns the configuration used when nothing is given.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic("config: invalid defaults: " + err.Error())
	}
	return cfg
}

//Validate checks that every setting has an acceptable value.
func (C *Config) Validate() error {
	var errs []error
	switch strings.ToLower(C.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", C.Log.Level))
	}
	switch C.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be json or console, not %q", C.Log.Format))
	}
	switch C.Plot.Theme {
	case "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("plot.theme: must be light or dark, not %q", C.Plot.Theme))
	}
	if C.Plot.Width <= 0 || C.Plot.Height <= 0 {
		errs = append(errs, errors.New("plot.width and plot.height must be positive"))
	}
	if C.History.Enabled && C.History.Path == "" {
		errs = append(errs, errors.New("history.path can't be empty when history is enabled"))
	}
	if C.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be at least 1, not %d", C.Batch.Workers))
	}
	return errors.Join(errs...)
}
