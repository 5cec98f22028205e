// file: internal/config/config.go
// version: 1.2.0
// guid: 235a08c5-85fd-4dc3-a665-8aee5709ab73

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	RootDir             string
	SuggestionsFile     string
	OutputFormat        string // "json" (default) or "yaml"
	DefaultGenre        string
	SupportedExtensions []string
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("suggestions_file", "_tags_suggestions.json")
	viper.SetDefault("output_format", "json")

	AppConfig = Config{
		RootDir:         viper.GetString("root_dir"),
		SuggestionsFile: viper.GetString("suggestions_file"),
		OutputFormat:    viper.GetString("output_format"),
		DefaultGenre:    viper.GetString("default_genre"),
		SupportedExtensions: []string{
			".m4b", ".mp3", ".m4a", ".aac", ".ogg", ".opus", ".flac", ".wav",
		},
	}

	// Normalize output format
	if AppConfig.OutputFormat == "yml" {
		AppConfig.OutputFormat = "yaml"
	}
	if AppConfig.OutputFormat == "" {
		AppConfig.OutputFormat = "json"
	}
}
