package main

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/application/services"
	"tts-gateway/config"
	"tts-gateway/infrastructure/adapters"
	"tts-gateway/infrastructure/gin_interface/controllers"
	"tts-gateway/infrastructure/gin_interface/dto"
	"tts-gateway/middleware"
	mockprovider "tts-gateway/mock"
)

func main() {
	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	chain, voices := buildSynthesizers(serverConfig.ProviderOrder, sess, contentFetcher, zeroLogger)
	if len(chain) == 0 {
		log.Fatal().Msg("No synthesizers configured")
	}

	synthesizer := adapters.NewFallbackSynthesizer(zeroLogger, chain...)

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	speechStore := adapters.NewS3SpeechStore(s3Client, s3Config)
	speechCache := adapters.NewDynamoSpeechCache(dynamoClient, dynamoConfig)

	var publisher outbound.SpeechPublisherPort
	if serverConfig.CallbackUrl != "" {
		authConfig, err := config.NewAuthorizerConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get authorizer config")
		}
		authorizer := adapters.NewClientCredentialsAuthorizer(zeroLogger, authConfig)
		publisher = adapters.NewWebhookPublisher(serverConfig.CallbackUrl, authorizer)
	}

	speechService := services.NewSpeechService(zeroLogger, synthesizer, speechStore, speechCache, publisher, serverConfig.DefaultText)

	segmentSplitter := services.NewSegmentSplitter(zeroLogger, workerPool)
	segmentSynthesizer := services.NewSegmentSynthesizer(zeroLogger, synthesizer, workerPool)
	audioSaver := services.NewSegmentAudioSaver(speechStore, workerPool)
	metadataSaver := services.NewSegmentMetadataSaver(zeroLogger, workerPool, speechCache)

	pipeline := services.NewSpeechPipelineOrchestrator(workerPool, segmentSplitter, segmentSynthesizer, audioSaver, metadataSaver)

	speechController := controllers.NewSpeechController(zeroLogger, speechService, pipeline, voices)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if serverConfig.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(serverConfig.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	if serverConfig.EnableMockProvider {
		mockprovider.Init(router, zeroLogger)
	}

	speechController.RegisterRoutes(router, middleware.SSEMiddleware(workerPool))

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

func buildSynthesizers(order []string, sess *session.Session, fetcher adapters.ContentFetcher,
	logger outbound.LoggerPort) ([]outbound.SynthesizerPort, []dto.Voice) {
	chain := make([]outbound.SynthesizerPort, 0, len(order))
	voices := make([]dto.Voice, 0, len(order))

	for _, name := range order {
		switch name {
		case "polly":
			pollyConfig, err := config.GetPollyConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get polly config")
			}
			chain = append(chain, adapters.NewPollySynthesizer(polly.New(sess), pollyConfig))
			voices = append(voices, dto.Voice{Provider: "polly", Voice: pollyConfig.VoiceID, Language: "en-US"})
		case "google":
			googleConfig, err := config.GetGoogleConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get google config")
			}
			client, err := texttospeech.NewClient(context.Background())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create google tts client")
			}
			chain = append(chain, adapters.NewGoogleSynthesizer(client, googleConfig))
			voices = append(voices, dto.Voice{Provider: "google", Voice: googleConfig.VoiceName, Language: googleConfig.LanguageCode})
		case "gtts":
			gttsConfig, err := config.GetGttsConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get gtts config")
			}
			chain = append(chain, adapters.NewGttsSynthesizer(fetcher, gttsConfig))
			voices = append(voices, dto.Voice{Provider: "gtts", Language: gttsConfig.Language})
		case "edge":
			edgeConfig, err := config.GetEdgeConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get edge config")
			}
			chain = append(chain, adapters.NewEdgeSynthesizer(edgeConfig))
			voices = append(voices, dto.Voice{Provider: "edge", Voice: edgeConfig.Voice, Language: "en-US"})
		case "say":
			sayConfig, err := config.GetSayConfig()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to get say config")
			}
			saySynthesizer, err := adapters.NewSaySynthesizer(sayConfig)
			if err != nil {
				logger.Warn("say provider unavailable, skipping")
				continue
			}
			chain = append(chain, saySynthesizer)
			voices = append(voices, dto.Voice{Provider: "say", Voice: sayConfig.Voice})
		case "mock":
			chain = append(chain, mockprovider.NewToneSynthesizer())
			voices = append(voices, dto.Voice{Provider: "mock"})
		default:
			log.Fatal().Str("provider", name).Msg("Unknown provider in PROVIDER_ORDER")
		}
	}

	return chain, voices
}
