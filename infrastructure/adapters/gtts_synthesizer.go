package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

// The translate_tts endpoint rejects longer inputs.
const gttsMaxRunes = 200

type gttsSynthesizer struct {
	ContentFetcher
	gttsConfig *config.GttsConfig
}

func NewGttsSynthesizer(contentFetcher ContentFetcher, gttsConfig *config.GttsConfig) outbound.SynthesizerPort {
	return &gttsSynthesizer{
		ContentFetcher: contentFetcher,
		gttsConfig:     gttsConfig,
	}
}

func (g *gttsSynthesizer) Name() string {
	return "gtts"
}

func (g *gttsSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if req.Format != domain.FormatMP3 {
		return nil, outbound.ErrUnsupportedFormat
	}

	if len([]rune(req.Text)) > gttsMaxRunes {
		return nil, fmt.Errorf("text exceeds the %d character gtts limit", gttsMaxRunes)
	}

	httpReq, err := g.getRequest(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("text", req.Text).Msg("Failed to construct the gtts HTTP request")
		return nil, err
	}

	return g.FetchContent(httpReq)
}

func (g *gttsSynthesizer) getRequest(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	language := g.gttsConfig.Language
	if req.Voice != "" {
		language = req.Voice
	}

	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", language)
	query.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.gttsConfig.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "audio/mpeg")

	return httpReq, nil
}
