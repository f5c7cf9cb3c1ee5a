package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

// webhookPublisher POSTs completed speech events to an external callback,
// authorized with client credentials.
type webhookPublisher struct {
	callbackUrl string
	authorizer  Authorizer
}

func NewWebhookPublisher(callbackUrl string, authorizer Authorizer) outbound.SpeechPublisherPort {
	return &webhookPublisher{
		callbackUrl: callbackUrl,
		authorizer:  authorizer,
	}
}

func (w *webhookPublisher) Publish(ctx context.Context, event domain.SpeechEvent) error {
	token, err := w.authorizer.Authorize(ctx)
	if err != nil {
		log.Err(err).Msg("Failed to authorize")
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Err(err).Msg("Failed to marshal speech event")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.callbackUrl, bytes.NewReader(payload))
	if err != nil {
		log.Err(err).Msg("Failed to create request")
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Err(err).Msg("Failed to send request")
		return err
	}

	defer func(closer io.ReadCloser) {
		if err := closer.Close(); err != nil {
			log.Err(err).Msg("Failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Msgf("Received unexpected status code %d", resp.StatusCode)
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}

	return nil
}
