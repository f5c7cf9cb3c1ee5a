package services

import (
	"context"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

type segmentMetadataSaver struct {
	logger      outbound.LoggerPort
	workerPool  outbound.TaskDispatcher
	speechCache outbound.SpeechCachePort
}

func NewSegmentMetadataSaver(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	speechCache outbound.SpeechCachePort) inbound.SegmentMetadataSaverPort {
	return &segmentMetadataSaver{
		logger:      logger,
		workerPool:  workerPool,
		speechCache: speechCache,
	}
}

func (s *segmentMetadataSaver) Save(ctx context.Context, segments <-chan domain.SegmentWithAudioUrl) (<-chan domain.SpeechEvent, <-chan error) {
	out := make(chan domain.SpeechEvent)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()
		for segment := range segments {
			select {
			case <-newCtx.Done():
				return
			default:
				err := s.speechCache.Save(newCtx, segment)
				if err != nil {
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					return
				}
				s.logger.DebugWithFields("segment saved", map[string]interface{}{
					"id":  segment.ID,
					"url": segment.AudioURL,
				})
				select {
				case out <- segment.ToEvent():
				case <-newCtx.Done():
					return
				}
			}
		}
		s.logger.Debug("segment metadata saving complete")
	})

	if err != nil {
		errCh <- err
		cancel()
	}

	return out, errCh
}
