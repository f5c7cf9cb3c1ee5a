package services

import (
	"context"
	"strings"
	"testing"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/domain"
	"tts-gateway/infrastructure/adapters"
)

const testDefaultText = "This is the default text."

func newTestSpeechService(synthesizer *fakeSynthesizer, store *fakeSpeechStore, cache *fakeSpeechCache,
	publisher *fakePublisher) inbound.SpeechSynthesizerPort {
	logger := adapters.NewZerologWrapper()
	if publisher == nil {
		return NewSpeechService(logger, synthesizer, store, cache, nil, testDefaultText)
	}
	return NewSpeechService(logger, synthesizer, store, cache, publisher, testDefaultText)
}

func TestSpeechService_Synthesize(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	service := newTestSpeechService(synthesizer, &fakeSpeechStore{}, newFakeSpeechCache(), nil)

	result, err := service.Synthesize(context.Background(), inbound.SynthesizeParams{
		Text:   "Hello world",
		Voice:  "Joanna",
		Format: domain.FormatMP3,
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}

	if string(result.AudioContent) != "audio:Hello world" {
		t.Errorf("unexpected audio content %q", result.AudioContent)
	}
	if result.ContentType != "audio/mpeg" {
		t.Errorf("unexpected content type %q", result.ContentType)
	}
	if result.ID == "" || result.SpeechID == "" {
		t.Error("expected ids to be assigned")
	}
}

func TestSpeechService_DefaultText(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	service := newTestSpeechService(synthesizer, &fakeSpeechStore{}, newFakeSpeechCache(), nil)

	result, err := service.Synthesize(context.Background(), inbound.SynthesizeParams{
		Format: domain.FormatMP3,
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}

	if result.Text != testDefaultText {
		t.Errorf("expected default text, got %q", result.Text)
	}
	if synthesizer.calls[0].Text != testDefaultText {
		t.Errorf("synthesizer called with %q", synthesizer.calls[0].Text)
	}
}

func TestSpeechService_SynthesizeToStore(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	store := &fakeSpeechStore{}
	cache := newFakeSpeechCache()
	publisher := &fakePublisher{}
	service := newTestSpeechService(synthesizer, store, cache, publisher)

	result, err := service.SynthesizeToStore(context.Background(), inbound.SynthesizeParams{
		Text:   "Store me",
		Format: domain.FormatMP3,
		UserID: "user-1",
	})
	if err != nil {
		t.Fatal("Failed to synthesize to store:", err)
	}

	if !strings.Contains(result.AudioURL, "user/user-1/speech/") {
		t.Errorf("unexpected url %q", result.AudioURL)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected 1 stored segment, got %d", len(store.saved))
	}
	if cache.size() != 1 {
		t.Fatalf("expected 1 cached entry, got %d", cache.size())
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	if publisher.events[0].Url != result.AudioURL {
		t.Error("published event carries the wrong url")
	}
}

func TestSpeechService_CacheHit(t *testing.T) {
	synthesizer := &fakeSynthesizer{}
	store := &fakeSpeechStore{}
	cache := newFakeSpeechCache()
	service := newTestSpeechService(synthesizer, store, cache, nil)

	params := inbound.SynthesizeParams{
		Text:   "Cache me",
		Format: domain.FormatMP3,
		UserID: "user-1",
	}

	first, err := service.SynthesizeToStore(context.Background(), params)
	if err != nil {
		t.Fatal("Failed to synthesize to store:", err)
	}

	second, err := service.SynthesizeToStore(context.Background(), params)
	if err != nil {
		t.Fatal("Failed on cached request:", err)
	}

	if synthesizer.callCount() != 1 {
		t.Fatalf("expected a single synthesis, got %d", synthesizer.callCount())
	}
	if second.AudioURL != first.AudioURL {
		t.Errorf("cache returned a different url: %q vs %q", second.AudioURL, first.AudioURL)
	}
}

func TestSpeechService_SynthesizerFailure(t *testing.T) {
	synthesizer := &fakeSynthesizer{fail: true}
	service := newTestSpeechService(synthesizer, &fakeSpeechStore{}, newFakeSpeechCache(), nil)

	if _, err := service.Synthesize(context.Background(), inbound.SynthesizeParams{
		Text:   "boom",
		Format: domain.FormatMP3,
	}); err == nil {
		t.Fatal("expected an error")
	}
}
