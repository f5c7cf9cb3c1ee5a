package adapters

import (
	"context"
	"errors"
	"fmt"

	"tts-gateway/application/ports/outbound"
)

// fallbackSynthesizer tries each provider in order until one produces audio.
type fallbackSynthesizer struct {
	logger outbound.LoggerPort
	chain  []outbound.SynthesizerPort
}

func NewFallbackSynthesizer(logger outbound.LoggerPort, chain ...outbound.SynthesizerPort) outbound.SynthesizerPort {
	return &fallbackSynthesizer{
		logger: logger,
		chain:  chain,
	}
}

func (f *fallbackSynthesizer) Name() string {
	return "auto"
}

func (f *fallbackSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if len(f.chain) == 0 {
		return nil, fmt.Errorf("no synthesizers configured")
	}

	var lastErr error
	for _, synthesizer := range f.chain {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		audio, err := synthesizer.Synthesize(ctx, req)
		if err == nil {
			return audio, nil
		}

		lastErr = err
		if errors.Is(err, outbound.ErrUnsupportedFormat) {
			f.logger.DebugWithFields("provider does not support format, trying next", map[string]interface{}{
				"provider": synthesizer.Name(),
				"format":   string(req.Format),
			})
			continue
		}
		f.logger.WarnWithFields("provider failed, trying next", map[string]interface{}{
			"provider": synthesizer.Name(),
			"error":    err.Error(),
		})
	}

	return nil, fmt.Errorf("all synthesizers failed: %w", lastErr)
}
