// Package config loads engine settings from SILLYAXIOMS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/GhostMeshIO/SillyAxioms/descent"
	"github.com/GhostMeshIO/SillyAxioms/geodesic"
	"github.com/caarlos0/env/v11"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of the engine.
type Config struct {
	CatalogPath string `env:"SILLYAXIOMS_CATALOG_PATH"`
	StorePath   string `env:"SILLYAXIOMS_STORE_PATH"`

	CurvatureScale float64 `env:"SILLYAXIOMS_CURVATURE_SCALE" envDefault:"1.0"`

	DescentSteps     int     `env:"SILLYAXIOMS_DESCENT_STEPS"     envDefault:"50"`
	DescentDt        float64 `env:"SILLYAXIOMS_DESCENT_DT"        envDefault:"0.001"`
	DescentMomentum  float64 `env:"SILLYAXIOMS_DESCENT_MOMENTUM"  envDefault:"0.9"`
	DescentTolerance float64 `env:"SILLYAXIOMS_DESCENT_TOLERANCE" envDefault:"1e-6"`

	GeodesicPoints       int     `env:"SILLYAXIOMS_GEODESIC_POINTS"        envDefault:"21"`
	GeodesicMaxSteps     int     `env:"SILLYAXIOMS_GEODESIC_MAX_STEPS"     envDefault:"10000"`
	GeodesicMaxParameter float64 `env:"SILLYAXIOMS_GEODESIC_MAX_PARAMETER" envDefault:"10"`

	SurveyWorkers int  `env:"SILLYAXIOMS_SURVEY_WORKERS" envDefault:"4"`
	Verbose       bool `env:"SILLYAXIOMS_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the configuration an empty environment produces.
func Default() Config {
	d, g := descent.DefaultOptions(), geodesic.DefaultOptions()

	return Config{
		CurvatureScale:       1.0,
		DescentSteps:         d.Steps,
		DescentDt:            d.Dt,
		DescentMomentum:      d.Momentum,
		DescentTolerance:     d.Tolerance,
		GeodesicPoints:       g.Points,
		GeodesicMaxSteps:     g.MaxSteps,
		GeodesicMaxParameter: g.MaxParameter,
		SurveyWorkers:        4,
	}
}

// Validate rejects values the engine would refuse or panic on.
func (c Config) Validate() error {
	if math.IsNaN(c.CurvatureScale) || math.IsInf(c.CurvatureScale, 0) || c.CurvatureScale <= 0 {
		return fmt.Errorf("%w: SILLYAXIOMS_CURVATURE_SCALE=%v must be finite and > 0", ErrInvalid, c.CurvatureScale)
	}
	if c.SurveyWorkers < 1 {
		return fmt.Errorf("%w: SILLYAXIOMS_SURVEY_WORKERS=%d must be ≥ 1", ErrInvalid, c.SurveyWorkers)
	}
	if err := c.DescentOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.GeodesicOptions(nil).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// DescentOptions maps the descent settings onto descent.Options.
func (c Config) DescentOptions() descent.Options {
	o := descent.DefaultOptions()
	o.Steps = c.DescentSteps
	o.Dt = c.DescentDt
	o.Momentum = c.DescentMomentum
	o.Tolerance = c.DescentTolerance

	return o
}

// GeodesicOptions maps the geodesic settings onto geodesic.Options.
func (c Config) GeodesicOptions(logger *log.Logger) geodesic.Options {
	o := geodesic.DefaultOptions()
	o.Points = c.GeodesicPoints
	o.MaxSteps = c.GeodesicMaxSteps
	o.MaxParameter = c.GeodesicMaxParameter
	o.Logger = logger

	return o
}

// Logger returns a stderr logger when Verbose is set, nil otherwise.
func (c Config) Logger() *log.Logger {
	if !c.Verbose {
		return nil
	}

	return log.New(os.Stderr, "sillyaxioms: ", log.LstdFlags)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
