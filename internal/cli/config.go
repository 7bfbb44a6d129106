package cli

import (
	"fmt"
	"os"

	"github.com/bitfield/filelist"
	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const envPrefix = "FILELIST"

// config holds the command's settings. Only the output filename is
// configurable.
type config struct {
	v *viper.Viper
}

// loadConfig reads settings from the environment and, if path is not empty,
// from the config file at path.
func loadConfig(path string) (*config, error) {
	v := viper.New()
	v.SetDefault("output", filelist.DefaultFilename)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return &config{v: v}, nil
}

// outputFile resolves the output filename and reports where it came from. A
// non-empty arg wins and is used as given; settings from the environment or a
// config file are expanded like a single shell word, so ~ and $VAR work and
// names with spaces must be quoted.
func (c *config) outputFile(arg string) (name, source string, err error) {
	if arg != "" {
		return arg, "argument", nil
	}
	raw := c.v.GetString("output")
	switch {
	case envSet("OUTPUT"):
		source = "environment"
	case c.v.InConfig("output"):
		source = "config"
	default:
		return raw, "default", nil
	}
	fields, err := shell.Fields(raw, os.Getenv)
	if err != nil {
		return "", source, fmt.Errorf("expanding output %q: %w", raw, err)
	}
	if len(fields) != 1 {
		return "", source, fmt.Errorf("output %q must expand to exactly one filename, got %d (quote names containing spaces)", raw, len(fields))
	}
	return fields[0], source, nil
}

// envSet matches viper, which ignores empty environment variables.
func envSet(key string) bool {
	return os.Getenv(envPrefix+"_"+key) != ""
}
