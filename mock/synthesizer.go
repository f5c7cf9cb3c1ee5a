package mock_provider

import (
	"context"
	"math"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
	"tts-gateway/infrastructure/adapters"
)

const (
	toneSampleRate = 22050
	toneFrequency  = 440.0
	// 60ms of audio per input character, capped at three seconds.
	msPerRune   = 60
	maxDuration = 3000
)

// ToneSynthesizer produces a deterministic sine tone instead of speech,
// for development and tests without vendor credentials.
type ToneSynthesizer struct{}

func NewToneSynthesizer() *ToneSynthesizer {
	return &ToneSynthesizer{}
}

func (t *ToneSynthesizer) Name() string {
	return "mock"
}

func (t *ToneSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if req.Format != domain.FormatPCM {
		return nil, outbound.ErrUnsupportedFormat
	}

	durationMs := len([]rune(req.Text)) * msPerRune
	if durationMs > maxDuration {
		durationMs = maxDuration
	}
	if durationMs == 0 {
		durationMs = msPerRune
	}

	numSamples := toneSampleRate * durationMs / 1000
	pcm := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		sample := int16(math.Sin(2*math.Pi*toneFrequency*float64(i)/toneSampleRate) * 16384)
		pcm[2*i] = byte(sample)
		pcm[2*i+1] = byte(sample >> 8)
	}

	return adapters.WrapPCM(pcm, toneSampleRate), nil
}
