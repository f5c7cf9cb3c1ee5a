package inbound

import (
	"context"

	"tts-gateway/domain"
)

type StartPipelineParams struct {
	SpeechID string
	Input    string
	Voice    string
	Format   domain.SpeechFormat
	UserID   string
}

type SpeechPipelineOrchestrator interface {
	StartPipeline(ctx context.Context, request StartPipelineParams) (<-chan domain.SpeechEvent, <-chan error)
}
