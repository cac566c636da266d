package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/sculpt/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			Driver: "bolt",
		},
		Display: config.DisplayConfig{
			Unit:      "lb",
			DarkTheme: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var written map[string]map[string]any

	require.NoError(t, yaml.Unmarshal(b, &written))

	assert.Equal(t, "bolt", written["storage"]["driver"])
	assert.Equal(t, "lb", written["display"]["unit"])
	assert.Equal(t, true, written["notifications"]["enabled"])
	assert.Equal(t, false, written["notifications"]["sound"])
	assert.Equal(t, "info", written["log"]["level"])
}

func TestViperReadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	libraryPath := filepath.Join(dir, "library.yml")

	require.NoError(t, os.WriteFile(libraryPath, []byte("exercises: [Squat (Legs)]\n"), 0o600))

	contents := `storage:
  driver: SQLite
  path: /tmp/sculpt.sqlite
library:
  path: ` + libraryPath + `
display:
  unit: kg
  dark_theme: false
  twenty_four_hour: true
notifications:
  enabled: false
  sound: true
settings:
  cmd: notify-send done
log:
  level: DEBUG
`

	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	want := &config.Config{
		Storage: config.StorageConfig{
			Driver: "sqlite",
			Path:   "/tmp/sculpt.sqlite",
		},
		Library: config.LibraryConfig{
			Path: libraryPath,
		},
		Display: config.DisplayConfig{
			Unit:           "kg",
			TwentyFourHour: true,
		},
		Notifications: config.NotificationConfig{
			Sound: true,
		},
		Settings: config.SettingsConfig{
			Cmd: "notify-send done",
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, "/tmp/sculpt.sqlite", cfg.DBPath())
	assert.Equal(t, "Jan 02, 2006 15:04", cfg.DateFormat())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name    string
		Modify  func(c *config.Config)
		WantErr string
	}{
		{
			Name:    "unknown driver",
			Modify:  func(c *config.Config) { c.Storage.Driver = "postgres" },
			WantErr: `storage driver must be one of bolt, sqlite, got "postgres"`,
		},
		{
			Name:    "unknown unit",
			Modify:  func(c *config.Config) { c.Display.Unit = "stone" },
			WantErr: `display unit must be one of lb, kg, got "stone"`,
		},
		{
			Name:    "unknown log level",
			Modify:  func(c *config.Config) { c.Log.Level = "trace" },
			WantErr: `log level must be one of debug, info, warn, error, got "trace"`,
		},
		{
			Name:    "missing catalog",
			Modify:  func(c *config.Config) { c.Library.Path = "/does/not/exist.yml" },
			WantErr: "exercise catalog /does/not/exist.yml does not exist",
		},
		{
			Name:   "empty values fall back to defaults",
			Modify: func(c *config.Config) { *c = config.Config{} },
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			c := defaultConfig()
			tc.Modify(c)

			err := c.Validate()
			if tc.WantErr == "" {
				require.NoError(t, err)

				assert.Equal(t, "bolt", c.Storage.Driver)
				assert.Equal(t, "lb", c.Display.Unit)
				assert.Equal(t, "info", c.Log.Level)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.WantErr, err.Error())
		})
	}
}

func newContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("sculpt", flag.ContinueOnError)

	for _, name := range []string{"template", "driver", "db", "library", "session-cmd", "period", "start", "end"} {
		_ = f.String(name, "", "")
	}

	for _, name := range []string{"disable-notification", "sound", "no-color"} {
		_ = f.Bool(name, false, "")
	}

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIOverrides(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("SCULPT_NO_COLOR", "")

	configPath := filepath.Join(t.TempDir(), "config.yml")

	ctx := newContext(t, map[string]string{
		"template":             " Upper Body ",
		"driver":               "sqlite",
		"db":                   "/tmp/history.sqlite",
		"session-cmd":          "echo done",
		"disable-notification": "true",
		"sound":                "true",
		"no-color":             "true",
	})

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, "Upper Body", cfg.CLI.Template)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/history.sqlite", cfg.Storage.Path)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
	assert.False(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Notifications.Sound)
	assert.True(t, cfg.Display.NoColor)
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("SCULPT_NO_COLOR", "1")

	cfg, err := config.New(config.WithCLIConfig(newContext(t, nil)))
	require.NoError(t, err)

	assert.True(t, cfg.Display.NoColor)
}
