package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/config"
)

// Loaded configs are cached per type, so each test uses its own struct type.

type basicConfig struct {
	Name  string `env:"LOADER_TEST_NAME" envDefault:"fallback"`
	Count int    `env:"LOADER_TEST_COUNT" envDefault:"3"`
}

type envConfig struct {
	Locale string `env:"LOADER_TEST_LOCALE"`
}

type requiredConfig struct {
	Secret string `env:"LOADER_TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"LOADER_TEST_CACHED" envDefault:"first"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg basicConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOADER_TEST_LOCALE", "th")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "th", cfg.Locale)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[basicConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("LOADER_TEST_CACHED", "initial")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "initial", first.Value)

	// Later environment changes do not affect the cached type.
	t.Setenv("LOADER_TEST_CACHED", "changed")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "initial", second.Value)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
