package outbound

import (
	"context"

	"tts-gateway/domain"
)

type SpeechStorePort interface {
	Save(ctx context.Context, segment domain.SegmentWithAudio, userID string) (string, error)
}
