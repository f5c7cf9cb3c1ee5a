package mock_provider

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

func TestToneSynthesizer_Synthesize(t *testing.T) {
	synthesizer := NewToneSynthesizer()

	audio, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello",
		Format: domain.FormatPCM,
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}

	if !bytes.HasPrefix(audio, []byte("RIFF")) {
		t.Error("expected a RIFF header")
	}

	// 5 runes * 60ms at 22050Hz, 2 bytes per sample, plus the header.
	expected := 44 + 2*toneSampleRate*5*msPerRune/1000
	if len(audio) != expected {
		t.Errorf("expected %d bytes, got %d", expected, len(audio))
	}

	again, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello",
		Format: domain.FormatPCM,
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}
	if !bytes.Equal(audio, again) {
		t.Error("expected deterministic output")
	}
}

func TestToneSynthesizer_UnsupportedFormat(t *testing.T) {
	synthesizer := NewToneSynthesizer()

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello",
		Format: domain.FormatMP3,
	})
	if !errors.Is(err, outbound.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
