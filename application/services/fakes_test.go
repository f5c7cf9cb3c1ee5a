package services

import (
	"context"
	"fmt"
	"sync"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

type fakeSynthesizer struct {
	mu    sync.Mutex
	calls []outbound.SynthesizeSpeechRequest
	fail  bool
}

func (f *fakeSynthesizer) Name() string {
	return "fake"
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.fail {
		return nil, fmt.Errorf("synthesis failed")
	}
	return []byte("audio:" + req.Text), nil
}

func (f *fakeSynthesizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSpeechStore struct {
	mu    sync.Mutex
	saved []domain.SegmentWithAudio
	fail  bool
}

func (f *fakeSpeechStore) Save(_ context.Context, segment domain.SegmentWithAudio, userID string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("store failed")
	}
	f.mu.Lock()
	f.saved = append(f.saved, segment)
	f.mu.Unlock()
	return fmt.Sprintf("https://bucket.s3.amazonaws.com/user/%s/speech/%s/%s.%s",
		userID, segment.SpeechID, segment.ID, segment.Format.Extension()), nil
}

type fakeSpeechCache struct {
	mu      sync.Mutex
	entries map[string]domain.SegmentWithAudioUrl
}

func newFakeSpeechCache() *fakeSpeechCache {
	return &fakeSpeechCache{entries: make(map[string]domain.SegmentWithAudioUrl)}
}

func (f *fakeSpeechCache) key(segment domain.SpeechSegment) string {
	return segment.Voice + "|" + string(segment.Format) + "|" + segment.Text
}

func (f *fakeSpeechCache) Lookup(_ context.Context, segment domain.SpeechSegment) (domain.SegmentWithAudioUrl, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[f.key(segment)]
	return entry, ok, nil
}

func (f *fakeSpeechCache) Save(_ context.Context, segment domain.SegmentWithAudioUrl) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[f.key(segment.SpeechSegment)] = segment
	return nil
}

func (f *fakeSpeechCache) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.SpeechEvent
}

func (f *fakePublisher) Publish(_ context.Context, event domain.SpeechEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}
