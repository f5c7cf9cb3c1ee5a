package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pp-group/edge-tts-go/biz/service/tts/edge"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

type edgeSynthesizer struct {
	edgeConfig *config.EdgeConfig
}

func NewEdgeSynthesizer(edgeConfig *config.EdgeConfig) outbound.SynthesizerPort {
	return &edgeSynthesizer{
		edgeConfig: edgeConfig,
	}
}

func (e *edgeSynthesizer) Name() string {
	return "edge"
}

func (e *edgeSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if req.Format != domain.FormatMP3 {
		return nil, outbound.ErrUnsupportedFormat
	}

	voice := req.Voice
	if voice == "" {
		voice = e.edgeConfig.Voice
	}

	comm, err := edge.NewCommunicate(req.Text, edge.WithVoice(voice))
	if err != nil {
		log.Error().Err(err).Str("voice", voice).Msg("Failed to create edge-tts communicate")
		return nil, err
	}

	ch, err := comm.Stream()
	if err != nil {
		log.Error().Err(err).Str("voice", voice).Msg("Failed to start edge-tts stream")
		return nil, err
	}

	var buf bytes.Buffer
	for msg := range ch {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if msgType, ok := msg["type"].(string); ok && msgType == "audio" {
			if data, ok := msg["data"].([]byte); ok {
				buf.Write(data)
			}
		}
	}

	if buf.Len() == 0 {
		return nil, fmt.Errorf("edge-tts returned no audio data")
	}

	return buf.Bytes(), nil
}
