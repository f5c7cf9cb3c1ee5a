package inbound

import (
	"context"

	"tts-gateway/domain"
)

type SplitSegmentsParams struct {
	Input    string
	SpeechID string
	Voice    string
	Format   domain.SpeechFormat
}

type SegmentSplitterPort interface {
	Split(ctx context.Context, params SplitSegmentsParams) (<-chan domain.SpeechSegment, <-chan error)
}
