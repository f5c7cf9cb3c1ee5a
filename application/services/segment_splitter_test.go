package services

import (
	"context"
	"strings"
	"testing"

	"github.com/panjf2000/ants/v2"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/domain"
	"tts-gateway/infrastructure/adapters"
)

func TestSegmentSplitter_Split(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	splitter := NewSegmentSplitter(adapters.NewZerologWrapper(), workerPool)

	segmentCh, errCh := splitter.Split(context.Background(), inbound.SplitSegmentsParams{
		Input:    "Hello world. How are you today?\nI am fine!",
		SpeechID: "speech-1",
		Voice:    "Joanna",
		Format:   domain.FormatMP3,
	})

	segments := drainSegments(t, segmentCh, errCh)

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	expected := []string{"Hello world.", "How are you today?", "I am fine!"}
	for i, segment := range segments {
		if segment.Text != expected[i] {
			t.Errorf("segment %d: expected %q, got %q", i, expected[i], segment.Text)
		}
		if segment.Ordinal != i {
			t.Errorf("segment %d: expected ordinal %d, got %d", i, i, segment.Ordinal)
		}
		if segment.SpeechID != "speech-1" {
			t.Errorf("segment %d: unexpected speech id %q", i, segment.SpeechID)
		}
		if segment.Voice != "Joanna" || segment.Format != domain.FormatMP3 {
			t.Errorf("segment %d: voice/format not propagated", i)
		}
	}
}

func TestSegmentSplitter_LongSentence(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	splitter := NewSegmentSplitter(adapters.NewZerologWrapper(), workerPool)

	input := strings.TrimSpace(strings.Repeat("word ", 100))

	segmentCh, errCh := splitter.Split(context.Background(), inbound.SplitSegmentsParams{
		Input:    input,
		SpeechID: "speech-2",
		Format:   domain.FormatMP3,
	})

	segments := drainSegments(t, segmentCh, errCh)

	if len(segments) < 2 {
		t.Fatalf("expected long input to be split, got %d segments", len(segments))
	}

	var joined []string
	for _, segment := range segments {
		if len([]rune(segment.Text)) > maxSegmentRunes {
			t.Errorf("segment exceeds %d runes: %d", maxSegmentRunes, len([]rune(segment.Text)))
		}
		joined = append(joined, segment.Text)
	}

	if strings.Join(joined, " ") != input {
		t.Error("joined segments do not reproduce the input")
	}
}

func TestSegmentSplitter_EmptyInput(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	splitter := NewSegmentSplitter(adapters.NewZerologWrapper(), workerPool)

	segmentCh, errCh := splitter.Split(context.Background(), inbound.SplitSegmentsParams{
		Input: "   \n\t ",
	})

	segments := drainSegments(t, segmentCh, errCh)
	if len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}

func drainSegments(t *testing.T, segmentCh <-chan domain.SpeechSegment, errCh <-chan error) []domain.SpeechSegment {
	t.Helper()

	var segments []domain.SpeechSegment
	for {
		select {
		case err, ok := <-errCh:
			if ok {
				t.Fatal("Received an error:", err)
			}
			errCh = nil
		case segment, ok := <-segmentCh:
			if !ok {
				return segments
			}
			segments = append(segments, segment)
		}
	}
}
