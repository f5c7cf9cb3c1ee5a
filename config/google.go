package config

import (
	"os"
)

type GoogleConfig struct {
	LanguageCode string
	VoiceName    string
}

func GetGoogleConfig() (*GoogleConfig, error) {
	languageCode := os.Getenv("GOOGLE_TTS_LANGUAGE_CODE")
	if languageCode == "" {
		languageCode = "en-US"
	}

	return &GoogleConfig{
		LanguageCode: languageCode,
		VoiceName:    os.Getenv("GOOGLE_TTS_VOICE_NAME"),
	}, nil
}
