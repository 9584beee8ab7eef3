// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/zonechange/internal/logger"
)

const (
	// EnvConfigJSON names the environment variable holding a JSON config override.
	EnvConfigJSON = "ZONECHANGE_CONFIG_JSON"

	defaultTTL = 3600
)

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Log: logger.Log{
			LogLevel:    "info",
			AppName:     "zonechange",
			ServiceName: "zonechange",
			Console: logger.Console{
				Enabled:          true,
				UseConsoleWriter: true,
			},
		},
		DB: DB{
			GormEngine: GormEngineSQLite,
			Name:       "zonechange.db",
		},
		Zone: Zone{
			TTL: defaultTTL,
		},
	}
}

// ReadConfig from config file. Keys missing from the file keep their Default value.
func ReadConfig(path string) (Config, error) {
	var (
		c             = Default()
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the change set store settings and fill zone defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	switch c.DB.GormEngine {
	case GormEngineSQLite, GormEngineMySQL, GormEnginePostgres:
	default:
		return errors.Wrap(ErrUnsupportedGormEngine, invalidErrMessage)
	}

	if c.DB.Name == "" {
		return errors.Wrap(ErrEmptyDBName, invalidErrMessage)
	}

	if c.Zone.TTL == 0 {
		c.Zone.TTL = defaultTTL
	}

	return nil
}
