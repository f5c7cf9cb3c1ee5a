package services

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

type segmentSynthesizer struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SynthesizerPort
	workerPool  *ants.Pool
}

func NewSegmentSynthesizer(logger outbound.LoggerPort, synthesizer outbound.SynthesizerPort,
	workerPool *ants.Pool) inbound.SegmentSynthesizerPort {
	return &segmentSynthesizer{
		logger:      logger,
		synthesizer: synthesizer,
		workerPool:  workerPool,
	}
}

func (s *segmentSynthesizer) Synthesize(ctx context.Context, segmentCh <-chan domain.SpeechSegment) (<-chan domain.SegmentWithAudio, <-chan error) {
	out := make(chan domain.SegmentWithAudio)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

		for segment := range segmentCh {
			select {
			case <-newCtx.Done():
				return
			default:
				segment := segment
				wg.Add(1)
				err := s.workerPool.Submit(func() {
					defer wg.Done()
					result, err := s.synthesizeSegment(newCtx, segment)
					if err != nil {
						select {
						case errCh <- err:
						case <-newCtx.Done():
						}
						cancel()
						return
					}
					// The consumer may be gone already, never block past
					// cancellation or the worker leaks.
					select {
					case out <- result:
					case <-newCtx.Done():
					}
				})
				if err != nil {
					wg.Done()
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					cancel()
				}
			}
		}

		wg.Wait()
	})
	if err != nil {
		errCh <- err
	}

	return out, errCh
}

func (s *segmentSynthesizer) synthesizeSegment(ctx context.Context, segment domain.SpeechSegment) (domain.SegmentWithAudio, error) {
	audio, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:   segment.Text,
		Voice:  segment.Voice,
		Format: segment.Format,
	})
	if err != nil {
		return domain.SegmentWithAudio{}, err
	}

	s.logger.DebugWithFields("Synthesized segment", map[string]interface{}{
		"id":    segment.ID,
		"ord":   segment.Ordinal,
		"bytes": len(audio),
	})

	return domain.SegmentWithAudio{
		AudioContent:  audio,
		ContentType:   segment.Format.ContentType(),
		SpeechSegment: segment,
	}, nil
}
