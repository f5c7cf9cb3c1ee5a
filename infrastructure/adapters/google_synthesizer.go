package adapters

import (
	"context"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

var googleEncodings = map[domain.SpeechFormat]texttospeechpb.AudioEncoding{
	domain.FormatMP3: texttospeechpb.AudioEncoding_MP3,
	domain.FormatOGG: texttospeechpb.AudioEncoding_OGG_OPUS,
	// LINEAR16 responses already carry a WAV header.
	domain.FormatPCM: texttospeechpb.AudioEncoding_LINEAR16,
}

type googleSynthesizer struct {
	client       *texttospeech.Client
	googleConfig *config.GoogleConfig
}

func NewGoogleSynthesizer(client *texttospeech.Client, googleConfig *config.GoogleConfig) outbound.SynthesizerPort {
	return &googleSynthesizer{
		client:       client,
		googleConfig: googleConfig,
	}
}

func (g *googleSynthesizer) Name() string {
	return "google"
}

func (g *googleSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	encoding, ok := googleEncodings[req.Format]
	if !ok {
		return nil, outbound.ErrUnsupportedFormat
	}

	voiceName := req.Voice
	if voiceName == "" {
		voiceName = g.googleConfig.VoiceName
	}

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.googleConfig.LanguageCode,
			Name:         voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("voice", voiceName).Str("language", g.googleConfig.LanguageCode).Msg("Google TTS synthesis failed")
		return nil, err
	}

	return resp.AudioContent, nil
}
