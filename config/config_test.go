package config_test

import (
	"testing"

	"github.com/GhostMeshIO/SillyAxioms/config"
	"github.com/GhostMeshIO/SillyAxioms/descent"
	"github.com/GhostMeshIO/SillyAxioms/geodesic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, descent.DefaultOptions(), cfg.DescentOptions())
	assert.Equal(t, geodesic.DefaultOptions(), cfg.GeodesicOptions(nil))
	assert.Nil(t, cfg.Logger())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SILLYAXIOMS_CATALOG_PATH", "/tmp/frameworks.yaml")
	t.Setenv("SILLYAXIOMS_STORE_PATH", "/tmp/frameworks.db")
	t.Setenv("SILLYAXIOMS_CURVATURE_SCALE", "0.5")
	t.Setenv("SILLYAXIOMS_DESCENT_STEPS", "10")
	t.Setenv("SILLYAXIOMS_GEODESIC_POINTS", "40")
	t.Setenv("SILLYAXIOMS_SURVEY_WORKERS", "2")
	t.Setenv("SILLYAXIOMS_VERBOSE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/frameworks.yaml", cfg.CatalogPath)
	assert.Equal(t, "/tmp/frameworks.db", cfg.StorePath)
	assert.Equal(t, 0.5, cfg.CurvatureScale)
	assert.Equal(t, 10, cfg.DescentOptions().Steps)
	assert.Equal(t, 40, cfg.GeodesicOptions(nil).Points)
	assert.Equal(t, 2, cfg.SurveyWorkers)
	assert.NotNil(t, cfg.Logger())
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("SILLYAXIOMS_DESCENT_STEPS", "many")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*config.Config){
		"zero scale":     func(c *config.Config) { c.CurvatureScale = 0 },
		"no workers":     func(c *config.Config) { c.SurveyWorkers = 0 },
		"negative steps": func(c *config.Config) { c.DescentSteps = -3 },
		"momentum one":   func(c *config.Config) { c.DescentMomentum = 1 },
		"zero points":    func(c *config.Config) { c.GeodesicPoints = 0 },
		"zero parameter": func(c *config.Config) { c.GeodesicMaxParameter = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_WrapsPackageErrors(t *testing.T) {
	cfg := config.Default()
	cfg.DescentDt = -1
	assert.ErrorIs(t, cfg.Validate(), descent.ErrBadOptions)

	cfg = config.Default()
	cfg.GeodesicMaxSteps = 0
	assert.ErrorIs(t, cfg.Validate(), geodesic.ErrBadOptions)
}
