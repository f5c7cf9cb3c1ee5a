package config

import (
	"os"
)

type EdgeConfig struct {
	Voice string
}

func GetEdgeConfig() (*EdgeConfig, error) {
	voice := os.Getenv("EDGE_TTS_VOICE")
	if voice == "" {
		voice = "en-US-AriaNeural"
	}

	return &EdgeConfig{
		Voice: voice,
	}, nil
}
