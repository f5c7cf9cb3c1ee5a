package inbound

import (
	"context"

	"tts-gateway/domain"
)

type SynthesizeParams struct {
	Text   string
	Voice  string
	Format domain.SpeechFormat
	UserID string
}

type SpeechSynthesizerPort interface {
	// Synthesize converts text to audio and returns the raw bytes.
	Synthesize(ctx context.Context, params SynthesizeParams) (domain.SegmentWithAudio, error)
	// SynthesizeToStore converts text to audio, uploads it and returns the object URL.
	SynthesizeToStore(ctx context.Context, params SynthesizeParams) (domain.SegmentWithAudioUrl, error)
}
