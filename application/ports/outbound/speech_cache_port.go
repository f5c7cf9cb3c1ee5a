package outbound

import (
	"context"

	"tts-gateway/domain"
)

type SpeechCachePort interface {
	Lookup(ctx context.Context, segment domain.SpeechSegment) (domain.SegmentWithAudioUrl, bool, error)
	Save(ctx context.Context, segment domain.SegmentWithAudioUrl) error
}
