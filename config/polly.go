package config

import (
	"os"
)

type PollyConfig struct {
	VoiceID string
	Engine  string
}

func GetPollyConfig() (*PollyConfig, error) {
	voiceID := os.Getenv("POLLY_VOICE_ID")
	if voiceID == "" {
		voiceID = "Joanna"
	}

	engine := os.Getenv("POLLY_ENGINE")
	if engine == "" {
		engine = "neural"
	}

	return &PollyConfig{
		VoiceID: voiceID,
		Engine:  engine,
	}, nil
}
