package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	APIKey() string
	APIEndpoint() string
	Model() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.noesis.db")
	viper.SetDefault("api_endpoint", "https://generativelanguage.googleapis.com/v1beta/openai/")
	viper.SetDefault("model", "gemini-2.5-flash")
	viper.SetConfigName(".noesis") // .yaml is implicit
	viper.SetEnvPrefix("NOESIS")
	viper.AutomaticEnv()

	if override := os.Getenv("NOESIS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:     path,
		Key:      viper.GetString("api_key"),
		Endpoint: viper.GetString("api_endpoint"),
		ModelID:  viper.GetString("model"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Key      string `json:"api_key"`
	Endpoint string `json:"api_endpoint"`
	ModelID  string `json:"model"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) APIKey() string      { return f.Key }
func (f *fileConfig) APIEndpoint() string { return f.Endpoint }
func (f *fileConfig) Model() string       { return f.ModelID }
