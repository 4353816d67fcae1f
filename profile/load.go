package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
)

var globalProfile *Profile
var viperInstance *viper.Viper

// Load reads the build profile using Viper. The result is cached for
// the life of the process; use Reset in tests.
func Load() (*Profile, error) {
	if globalProfile != nil {
		return globalProfile, nil
	}

	v := initViper()

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, errors.Wrap(err, "unmarshaling build profile")
	}

	globalProfile = &p
	return globalProfile, nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads a profile from a provided Viper instance. Tests
// use this with an isolated instance to avoid the process-wide cache.
func LoadWithViper(v *viper.Viper) (*Profile, error) {
	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, errors.Wrap(err, "unmarshaling build profile")
	}
	return &p, nil
}

// LoadFromFile loads a profile from a specific file path, without
// environment bindings or the process-wide cache.
func LoadFromFile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading build profile %s", path)
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling build profile %s", path)
	}
	return &p, nil
}

// Reset clears the cached profile (useful for testing).
func Reset() {
	globalProfile = nil
	viperInstance = nil
}

// initViper initializes Viper with environment bindings, host defaults
// and the nearest profile file.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("VISGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindProfileEnvVars(v)

	SetDefaults(v)

	if path := findProfile(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			logger.Warnw("failed to read build profile", "path", path, "error", err)
		} else {
			logger.Debugw("loaded build profile", "path", path)
		}
	}

	viperInstance = v
	return v
}

// findProfile searches for visgen.build.toml by walking up the directory
// tree from the working directory. Returns "" when none is found; the
// host defaults then stand alone.
func findProfile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProfileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
