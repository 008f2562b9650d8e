package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .studyon config file in the
// working directory or STUDYON_* environment variables, defaulting to
// ~/.studyon.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studyon.db")
	viper.SetConfigName(".studyon") // .yaml is implicit
	viper.SetEnvPrefix("STUDYON")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYON_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
