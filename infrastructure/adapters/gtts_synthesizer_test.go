package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

func TestGttsSynthesizer_Synthesize(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	synthesizer := NewGttsSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.GttsConfig{
		ApiUrl:   server.URL,
		Language: "en",
	})

	audio, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello world",
		Format: domain.FormatMP3,
	})
	if err != nil {
		t.Fatal("Failed to synthesize:", err)
	}

	if string(audio) != "mp3-bytes" {
		t.Errorf("unexpected audio %q", audio)
	}
	if gotQuery["q"][0] != "Hello world" {
		t.Errorf("unexpected q parameter %q", gotQuery["q"])
	}
	if gotQuery["tl"][0] != "en" {
		t.Errorf("unexpected tl parameter %q", gotQuery["tl"])
	}
	if gotQuery["client"][0] != "tw-ob" {
		t.Errorf("unexpected client parameter %q", gotQuery["client"])
	}
}

func TestGttsSynthesizer_VoiceOverridesLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tl") != "fr" {
			t.Errorf("expected tl=fr, got %q", r.URL.Query().Get("tl"))
		}
		_, _ = w.Write([]byte("audio"))
	}))
	defer server.Close()

	synthesizer := NewGttsSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.GttsConfig{
		ApiUrl:   server.URL,
		Language: "en",
	})

	if _, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Bonjour",
		Voice:  "fr",
		Format: domain.FormatMP3,
	}); err != nil {
		t.Fatal("Failed to synthesize:", err)
	}
}

func TestGttsSynthesizer_UnsupportedFormat(t *testing.T) {
	synthesizer := NewGttsSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.GttsConfig{
		ApiUrl:   "http://localhost",
		Language: "en",
	})

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello",
		Format: domain.FormatOGG,
	})
	if !errors.Is(err, outbound.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestGttsSynthesizer_TextTooLong(t *testing.T) {
	synthesizer := NewGttsSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.GttsConfig{
		ApiUrl:   "http://localhost",
		Language: "en",
	})

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   strings.Repeat("a", 201),
		Format: domain.FormatMP3,
	})
	if err == nil {
		t.Fatal("expected an error for oversized text")
	}
}

func TestGttsSynthesizer_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	synthesizer := NewGttsSynthesizer(NewContentFetcher(NewZerologWrapper()), &config.GttsConfig{
		ApiUrl:   server.URL,
		Language: "en",
	})

	if _, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "Hello",
		Format: domain.FormatMP3,
	}); err == nil {
		t.Fatal("expected an error for non-OK upstream status")
	}
}
