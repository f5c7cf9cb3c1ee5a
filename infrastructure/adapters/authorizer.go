package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
)

type Authorizer interface {
	Authorize(ctx context.Context) (string, error)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type clientCredentialsAuthorizer struct {
	logger outbound.LoggerPort
	conf   *config.AuthorizerConfig
}

func NewClientCredentialsAuthorizer(logger outbound.LoggerPort, conf *config.AuthorizerConfig) Authorizer {
	return &clientCredentialsAuthorizer{
		logger: logger,
		conf:   conf,
	}
}

func (a *clientCredentialsAuthorizer) Authorize(ctx context.Context) (string, error) {
	clientCredentials := base64.StdEncoding.EncodeToString([]byte(a.conf.ClientID + ":" + a.conf.ClientSecret))

	requestBody := strings.NewReader("grant_type=client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.conf.TokenEndpoint, requestBody)
	if err != nil {
		a.logger.Error(err, "Failed to create the token request")
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+clientCredentials)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		a.logger.Error(err, "Failed to send the token request")
		return "", err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			a.logger.Error(err, "Failed to close the token response body")
		}
	}(res.Body)

	var tokenResponse TokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tokenResponse); err != nil {
		a.logger.Error(err, "Failed to decode the token response")
		return "", err
	}

	return tokenResponse.AccessToken, nil
}
