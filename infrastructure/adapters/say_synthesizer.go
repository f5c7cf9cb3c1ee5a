package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

// saySynthesizer shells out to the macOS say binary. Offline fallback,
// only registered when the binary is on PATH.
type saySynthesizer struct {
	sayConfig *config.SayConfig
}

func NewSaySynthesizer(sayConfig *config.SayConfig) (outbound.SynthesizerPort, error) {
	if _, err := exec.LookPath("say"); err != nil {
		return nil, fmt.Errorf("say binary not available: %w", err)
	}
	return &saySynthesizer{sayConfig: sayConfig}, nil
}

func (s *saySynthesizer) Name() string {
	return "say"
}

func (s *saySynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if req.Format != domain.FormatPCM {
		return nil, outbound.ErrUnsupportedFormat
	}

	tmpFile, err := os.CreateTemp("", "tts-gateway-say-*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	wavPath := tmpFile.Name()
	if err := tmpFile.Close(); err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	voice := req.Voice
	if voice == "" {
		voice = s.sayConfig.Voice
	}

	args := []string{"-o", wavPath, "--data-format=LEI16@22050"}
	if voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, req.Text)

	cmd := exec.CommandContext(ctx, "say", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("say failed: %w, stderr: %s", err, stderr.String())
	}

	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read say output: %w", err)
	}

	if len(audio) <= wavHeaderSize {
		return nil, fmt.Errorf("say produced no audio data")
	}

	return audio, nil
}
