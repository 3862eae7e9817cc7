package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"eser/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Encode: EncodeConfig{
		Format: "hex",
	},
	Decode: DecodeConfig{
		Strict:        false,
		MaxInputBytes: 256 * 1024,
	},
}

const defaultConfigTemplateText = `# eser Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
log_level = "{{.LogLevel}}"

# Configures the encode command.
[encode]
  # Sets the default output format. Can be "hex" or "raw".
  format = "{{.Encode.Format}}"

# Configures the decode command.
[decode]
  # Sets the maximum number of input bytes the decode command
  # will read before stopping early.
  max_input_bytes = {{.Decode.MaxInputBytes}}
  # When true, truncated input is reported as an error instead
  # of decoding to zero values.
  strict = {{.Decode.Strict}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
