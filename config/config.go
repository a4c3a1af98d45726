// Package config loads the host settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap/gpu"
)

const (
	EnvValidation = "BOOTSTRAP_VALIDATION"
	EnvAppName    = "BOOTSTRAP_APP_NAME"
	EnvWidth      = "BOOTSTRAP_WIDTH"
	EnvHeight     = "BOOTSTRAP_HEIGHT"
	EnvShaderDir  = "BOOTSTRAP_SHADER_DIR"
	EnvLogLevel   = "BOOTSTRAP_LOG_LEVEL"
)

// Config is read once at startup and never changes afterward.
type Config struct {
	AppName          string
	Width            int
	Height           int
	EnableValidation bool
	// ShaderDir overrides the bundled shader box when set
	ShaderDir string
	LogLevel  logrus.Level
}

func Default() Config {
	return Config{
		AppName:          "Hello Triangle",
		Width:            800,
		Height:           600,
		EnableValidation: true,
		LogLevel:         logrus.InfoLevel,
	}
}

// Load applies envFile, if it exists, over the process environment and
// reads the settings on top of Default. Values from the file replace
// variables already set in the process, the same way envy treats ./.env
// when the program starts.
func Load(envFile string) (Config, error) {
	envy.Reload()
	if envFile != "" {
		if err := envy.Load(envFile); err != nil && !os.IsNotExist(errors.UnwrapAll(err)) {
			return Config{}, errors.Wrapf(err, "load %s", envFile)
		}
	}

	cfg := Default()
	var err error

	cfg.AppName = envy.Get(EnvAppName, cfg.AppName)
	cfg.ShaderDir = envy.Get(EnvShaderDir, cfg.ShaderDir)

	if cfg.EnableValidation, err = boolVar(EnvValidation, cfg.EnableValidation); err != nil {
		return Config{}, err
	}

	if cfg.Width, err = sizeVar(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}

	if cfg.Height, err = sizeVar(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}

	if level := envy.Get(EnvLogLevel, ""); level != "" {
		cfg.LogLevel, err = logrus.ParseLevel(level)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s", EnvLogLevel)
		}
	}

	return cfg, nil
}

func boolVar(key string, fallback bool) (bool, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, errors.Wrapf(err, "%s", key)
	}
	return val, nil
}

func sizeVar(key string, fallback int) (int, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, errors.Wrapf(err, "%s", key)
	}
	if val <= 0 {
		return fallback, errors.Newf("%s must be positive, got %d", key, val)
	}
	return val, nil
}

// GPU derives the renderer configuration. Debug logging also turns on the
// info and verbose validation messages.
func (c Config) GPU() gpu.Config {
	gpuConfig := gpu.DefaultConfig()
	gpuConfig.ApplicationName = c.AppName
	gpuConfig.EnableValidation = c.EnableValidation

	if c.LogLevel >= logrus.DebugLevel {
		gpuConfig.DebugSeverities |= gpu.SeverityInfo
	}
	if c.LogLevel >= logrus.TraceLevel {
		gpuConfig.DebugSeverities |= gpu.SeverityVerbose
	}

	return gpuConfig
}
