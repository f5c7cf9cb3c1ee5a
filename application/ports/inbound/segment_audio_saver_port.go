package inbound

import (
	"context"

	"tts-gateway/domain"
)

type SegmentAudioSaverPort interface {
	Save(ctx context.Context, segmentCh <-chan domain.SegmentWithAudio, userID string) (<-chan domain.SegmentWithAudioUrl, <-chan error)
}
