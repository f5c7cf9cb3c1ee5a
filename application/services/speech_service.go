package services

import (
	"context"

	"github.com/google/uuid"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

type speechService struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SynthesizerPort
	speechStore outbound.SpeechStorePort
	speechCache outbound.SpeechCachePort
	publisher   outbound.SpeechPublisherPort
	defaultText string
}

// NewSpeechService handles the single-request synthesis paths. publisher
// may be nil when no callback is configured.
func NewSpeechService(logger outbound.LoggerPort, synthesizer outbound.SynthesizerPort,
	speechStore outbound.SpeechStorePort, speechCache outbound.SpeechCachePort,
	publisher outbound.SpeechPublisherPort, defaultText string) inbound.SpeechSynthesizerPort {
	return &speechService{
		logger:      logger,
		synthesizer: synthesizer,
		speechStore: speechStore,
		speechCache: speechCache,
		publisher:   publisher,
		defaultText: defaultText,
	}
}

func (s *speechService) Synthesize(ctx context.Context, params inbound.SynthesizeParams) (domain.SegmentWithAudio, error) {
	segment := s.newSegment(params)

	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:   segment.Text,
		Voice:  segment.Voice,
		Format: segment.Format,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
			"speechId": segment.SpeechID,
			"format":   string(segment.Format),
		})
		return domain.SegmentWithAudio{}, err
	}

	return domain.SegmentWithAudio{
		AudioContent:  audio,
		ContentType:   segment.Format.ContentType(),
		SpeechSegment: segment,
	}, nil
}

func (s *speechService) SynthesizeToStore(ctx context.Context, params inbound.SynthesizeParams) (domain.SegmentWithAudioUrl, error) {
	segment := s.newSegment(params)

	cached, hit, err := s.speechCache.Lookup(ctx, segment)
	if err != nil {
		s.logger.Warn("Speech cache lookup failed, synthesizing")
	} else if hit {
		s.logger.DebugWithFields("Speech cache hit", map[string]interface{}{
			"segmentId": cached.ID,
			"url":       cached.AudioURL,
		})
		return cached, nil
	}

	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:   segment.Text,
		Voice:  segment.Voice,
		Format: segment.Format,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
			"speechId": segment.SpeechID,
			"format":   string(segment.Format),
		})
		return domain.SegmentWithAudioUrl{}, err
	}

	withAudio := domain.SegmentWithAudio{
		AudioContent:  audio,
		ContentType:   segment.Format.ContentType(),
		SpeechSegment: segment,
	}

	url, err := s.speechStore.Save(ctx, withAudio, params.UserID)
	if err != nil {
		return domain.SegmentWithAudioUrl{}, err
	}

	withUrl := domain.SegmentWithAudioUrl{
		AudioURL:      url,
		SpeechSegment: withAudio.SpeechSegment,
	}

	if err := s.speechCache.Save(ctx, withUrl); err != nil {
		s.logger.Error(err, "Failed to cache synthesized speech")
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, withUrl.ToEvent()); err != nil {
			s.logger.Error(err, "Failed to publish speech event")
		}
	}

	return withUrl, nil
}

func (s *speechService) newSegment(params inbound.SynthesizeParams) domain.SpeechSegment {
	text := params.Text
	if text == "" {
		text = s.defaultText
	}

	id := uuid.NewString()

	return domain.NewSegment(text, id, id, params.Voice, params.Format, 0)
}
