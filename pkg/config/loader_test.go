package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/config"
)

type testConfig struct {
	Name    string   `env:"NAME" envDefault:"default_value"`
	Count   int      `env:"COUNT" envDefault:"42"`
	Enabled bool     `env:"ENABLED" envDefault:"true"`
	Words   []string `env:"WORDS" envSeparator:","`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_NAME", "custom")
	t.Setenv("CFGTEST_COUNT", "7")
	t.Setenv("CFGTEST_ENABLED", "false")
	t.Setenv("CFGTEST_WORDS", "bad,worse")

	cfg, err := config.Load[testConfig](config.WithPrefix("CFGTEST_"))
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, []string{"bad", "worse"}, cfg.Words)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Enabled)
	assert.Nil(t, cfg.Words)
}

func TestLoad_MapEnvironment(t *testing.T) {
	cfg, err := config.Load[testConfig](
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{"APP_NAME": "from-map"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-map", cfg.Name)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := config.Load[testConfig](config.WithEnvironment(map[string]string{"COUNT": "many"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_RequiredMissing(t *testing.T) {
	_, err := config.Load[requiredConfig](config.WithEnvironment(map[string]string{}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("ENVFILE_TEST_NAME=from-file\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("ENVFILE_TEST_NAME") })

		cfg, err := config.Load[testConfig](
			config.WithPrefix("ENVFILE_TEST_"),
			config.WithEnvFiles(path),
		)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("process environment wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("ENVFILE_PRIO_NAME=from-file\n"), 0o644))
		t.Setenv("ENVFILE_PRIO_NAME", "from-env")

		cfg, err := config.Load[testConfig](
			config.WithPrefix("ENVFILE_PRIO_"),
			config.WithEnvFiles(path),
		)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Name)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := config.Load[testConfig](config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns config", func(t *testing.T) {
		cfg := config.MustLoad[testConfig](config.WithEnvironment(map[string]string{"NAME": "x"}))
		assert.Equal(t, "x", cfg.Name)
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{}))
		})
	})
}
