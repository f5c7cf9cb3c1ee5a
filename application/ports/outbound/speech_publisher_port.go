package outbound

import (
	"context"

	"tts-gateway/domain"
)

type SpeechPublisherPort interface {
	Publish(ctx context.Context, event domain.SpeechEvent) error
}
