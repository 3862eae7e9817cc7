package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Encode   EncodeConfig `mapstructure:"encode"`
	Decode   DecodeConfig `mapstructure:"decode"`
}

type EncodeConfig struct {
	Format string `mapstructure:"format"`
}

type DecodeConfig struct {
	Strict        bool `mapstructure:"strict"`
	MaxInputBytes int  `mapstructure:"max_input_bytes"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
