package config

import (
	"os"
	"strings"
)

const defaultText = "Hello! This is a sample text to speech conversion."

type ServerConfig struct {
	Port               string
	DefaultText        string
	ProviderOrder      []string
	JwksUrl            string
	CallbackUrl        string
	EnableMockProvider bool
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	text := os.Getenv("DEFAULT_TEXT")
	if text == "" {
		text = defaultText
	}

	order := os.Getenv("PROVIDER_ORDER")
	if order == "" {
		order = "polly,google,gtts,edge"
	}
	providers := make([]string, 0)
	for _, name := range strings.Split(order, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			providers = append(providers, name)
		}
	}

	return &ServerConfig{
		Port:               port,
		DefaultText:        text,
		ProviderOrder:      providers,
		JwksUrl:            os.Getenv("JWKS_URL"),
		CallbackUrl:        os.Getenv("CALLBACK_URL"),
		EnableMockProvider: os.Getenv("ENABLE_MOCK_PROVIDER") == "true",
	}, nil
}
