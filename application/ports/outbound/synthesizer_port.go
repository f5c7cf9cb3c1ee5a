package outbound

import (
	"context"
	"errors"

	"tts-gateway/domain"
)

// ErrUnsupportedFormat is returned by a synthesizer that cannot produce
// the requested audio format, so a fallback chain can try the next one.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

type SynthesizeSpeechRequest struct {
	Text   string
	Voice  string
	Format domain.SpeechFormat
}

type SynthesizerPort interface {
	Name() string
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
