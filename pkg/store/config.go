package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the storage base path.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage location from (in order) an explicit
// config file, STUDYHALL_* environment variables, and the built-in default
// of ~/.studyhall.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studyhall.db")
	viper.SetConfigName(".studyhall") // .yaml is implicit
	viper.SetEnvPrefix("STUDYHALL")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYHALL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

// PathConfig wraps an explicit base path, used by tests and the --path flag.
type PathConfig string

func (p PathConfig) BasePath() string { return string(p) }

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
