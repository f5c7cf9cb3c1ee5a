package services

import (
	"context"

	"github.com/panjf2000/ants/v2"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

type segmentAudioSaver struct {
	speechStore outbound.SpeechStorePort
	workerPool  *ants.Pool
}

func NewSegmentAudioSaver(speechStore outbound.SpeechStorePort, workerPool *ants.Pool) inbound.SegmentAudioSaverPort {
	return &segmentAudioSaver{
		speechStore: speechStore,
		workerPool:  workerPool,
	}
}

func (s *segmentAudioSaver) Save(ctx context.Context, segmentCh <-chan domain.SegmentWithAudio, userID string) (<-chan domain.SegmentWithAudioUrl, <-chan error) {
	out := make(chan domain.SegmentWithAudioUrl)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		for segment := range segmentCh {
			select {
			case <-newCtx.Done():
				return
			default:
				url, err := s.speechStore.Save(newCtx, segment, userID)
				if err != nil {
					select {
					case errCh <- err:
					case <-newCtx.Done():
					}
					return
				}

				select {
				case out <- domain.SegmentWithAudioUrl{
					SpeechSegment: segment.SpeechSegment,
					AudioURL:      url,
				}:
				case <-newCtx.Done():
					return
				}
			}
		}
	})

	if err != nil {
		errCh <- err
	}

	return out, errCh
}
