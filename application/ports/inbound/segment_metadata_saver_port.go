package inbound

import (
	"context"

	"tts-gateway/domain"
)

type SegmentMetadataSaverPort interface {
	Save(ctx context.Context, segments <-chan domain.SegmentWithAudioUrl) (<-chan domain.SpeechEvent, <-chan error)
}
