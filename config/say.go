package config

import (
	"os"
)

type SayConfig struct {
	Voice string
}

func GetSayConfig() (*SayConfig, error) {
	return &SayConfig{
		Voice: os.Getenv("SAY_VOICE"),
	}, nil
}
