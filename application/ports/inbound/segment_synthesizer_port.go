package inbound

import (
	"context"

	"tts-gateway/domain"
)

type SegmentSynthesizerPort interface {
	Synthesize(ctx context.Context, segmentCh <-chan domain.SpeechSegment) (<-chan domain.SegmentWithAudio, <-chan error)
}
