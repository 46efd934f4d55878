package store

import (
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the template database and the blank report form.
type Config interface {
	BasePath() string
	FormPath() string
}

// LoadConfig reads an optional .rapport config file plus RAPPORT_*
// environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.rapport.db")
	viper.SetDefault("form", "")
	viper.SetConfigName(".rapport") // .yaml is implicit
	viper.SetEnvPrefix("RAPPORT")
	viper.AutomaticEnv()

	if override := os.Getenv("RAPPORT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path: viper.GetString("path"),
		Form: viper.GetString("form"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Form string `json:"form"`
}

func (f *fileConfig) BasePath() string {
	if expanded, err := homedir.Expand(f.Path); err == nil {
		return expanded
	}
	return f.Path
}

// FormPath is where the blank report form is fetched from at export
// time: a local file or an http(s) URL. Defaults to a
// stundenrapport.pdf next to the template database.
func (f *fileConfig) FormPath() string {
	if f.Form != "" {
		if expanded, err := homedir.Expand(f.Form); err == nil {
			return expanded
		}
		return f.Form
	}
	return filepath.Join(f.BasePath(), "stundenrapport.pdf")
}
