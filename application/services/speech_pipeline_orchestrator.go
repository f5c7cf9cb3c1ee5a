package services

import (
	"context"

	"github.com/panjf2000/ants/v2"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/channel_utils"
	"tts-gateway/domain"
)

type speechPipelineOrchestrator struct {
	workerPool        *ants.Pool
	segmentSplitter   inbound.SegmentSplitterPort
	segmentSynthesize inbound.SegmentSynthesizerPort
	audioSaver        inbound.SegmentAudioSaverPort
	metadataSaver     inbound.SegmentMetadataSaverPort
}

func NewSpeechPipelineOrchestrator(workerPool *ants.Pool, segmentSplitter inbound.SegmentSplitterPort,
	segmentSynthesizer inbound.SegmentSynthesizerPort, audioSaver inbound.SegmentAudioSaverPort,
	metadataSaver inbound.SegmentMetadataSaverPort) inbound.SpeechPipelineOrchestrator {
	return &speechPipelineOrchestrator{
		workerPool:        workerPool,
		segmentSplitter:   segmentSplitter,
		segmentSynthesize: segmentSynthesizer,
		audioSaver:        audioSaver,
		metadataSaver:     metadataSaver,
	}
}

func (s *speechPipelineOrchestrator) StartPipeline(ctx context.Context, request inbound.StartPipelineParams) (<-chan domain.SpeechEvent, <-chan error) {
	segmentCh, splitterErrCh := s.segmentSplitter.Split(ctx, inbound.SplitSegmentsParams{
		Input:    request.Input,
		SpeechID: request.SpeechID,
		Voice:    request.Voice,
		Format:   request.Format,
	})

	segmentWithAudioCh, synthesizerErrCh := s.segmentSynthesize.Synthesize(ctx, segmentCh)

	segmentWithUrlCh, saverErrCh := s.audioSaver.Save(ctx, segmentWithAudioCh, request.UserID)

	speechEventsCh, metadataSaverErrCh := s.metadataSaver.Save(ctx, segmentWithUrlCh)

	mergedErrCh, err := channel_utils.MergeChannels(s.workerPool, splitterErrCh, synthesizerErrCh, saverErrCh, metadataSaverErrCh)
	if err != nil {
		errCh := make(chan error, 1)
		errCh <- err
		close(errCh)
		return speechEventsCh, errCh
	}

	return speechEventsCh, mergedErrCh
}
