package config

import (
	"os"
)

type GttsConfig struct {
	ApiUrl   string
	Language string
}

func GetGttsConfig() (*GttsConfig, error) {
	apiUrl := os.Getenv("GTTS_API_URL")
	if apiUrl == "" {
		apiUrl = "https://translate.google.com/translate_tts"
	}

	language := os.Getenv("GTTS_LANGUAGE")
	if language == "" {
		language = "en"
	}

	return &GttsConfig{
		ApiUrl:   apiUrl,
		Language: language,
	}, nil
}
