package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config keys as they appear in the config file.
const (
	keyStorageDriver        = "storage.driver"
	keyStoragePath          = "storage.path"
	keyLibraryPath          = "library.path"
	keyDisplayUnit          = "display.unit"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.twenty_four_hour"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath. A file with the default settings is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults. Values already present on c, such as
// those gathered by the first-run prompt, take precedence over them.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStorageDriver, "bolt")
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyLibraryPath, "")
	v.SetDefault(keyDisplayUnit, "lb")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")

	if c.Storage.Driver != "" {
		v.SetDefault(keyStorageDriver, c.Storage.Driver)
	}

	if c.Display.Unit != "" {
		v.SetDefault(keyDisplayUnit, c.Display.Unit)
	}

	if c.prompted {
		v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
		v.SetDefault(keyNotificationsSound, c.Notifications.Sound)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
