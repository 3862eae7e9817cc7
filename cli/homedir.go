package cli

import (
	"eser/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	return config.ExpandHomePath(homeDirUnexp)
}

func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("home directory is already initialized")
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}

// GetConfig loads the home directory's config file, falling back to the
// defaults when the home directory has not been initialized.
func GetConfig(cmd *cobra.Command) *config.Config {
	homeDir := GetHomeDir(cmd)
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		defaults := config.DefaultConfig
		return &defaults
	}
	return cfg
}
