package adapters

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

// Polly returns headerless samples for pcm output, always at this rate
// unless SampleRate is set explicitly.
const pollyPCMSampleRate = 16000

var pollyFormats = map[domain.SpeechFormat]string{
	domain.FormatMP3: polly.OutputFormatMp3,
	domain.FormatOGG: polly.OutputFormatOggVorbis,
	domain.FormatPCM: polly.OutputFormatPcm,
}

type pollySynthesizer struct {
	pollySvc    *polly.Polly
	pollyConfig *config.PollyConfig
}

func NewPollySynthesizer(pollySvc *polly.Polly, pollyConfig *config.PollyConfig) outbound.SynthesizerPort {
	return &pollySynthesizer{
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
	}
}

func (p *pollySynthesizer) Name() string {
	return "polly"
}

func (p *pollySynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	outputFormat, ok := pollyFormats[req.Format]
	if !ok {
		return nil, outbound.ErrUnsupportedFormat
	}

	voice := req.Voice
	if voice == "" {
		voice = p.pollyConfig.VoiceID
	}

	input := &polly.SynthesizeSpeechInput{
		Engine:       aws.String(p.pollyConfig.Engine),
		OutputFormat: aws.String(outputFormat),
		Text:         aws.String(req.Text),
		VoiceId:      aws.String(voice),
	}

	output, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("voice", voice).Str("format", outputFormat).Msg("Polly synthesis failed")
		return nil, err
	}

	defer func(stream io.ReadCloser) {
		if err := stream.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Polly audio stream")
		}
	}(output.AudioStream)

	audio, err := io.ReadAll(output.AudioStream)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read Polly audio stream")
		return nil, err
	}

	if req.Format == domain.FormatPCM {
		audio = WrapPCM(audio, pollyPCMSampleRate)
	}

	return audio, nil
}
