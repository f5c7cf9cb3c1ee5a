package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
	"tts-gateway/infrastructure/gin_interface/dto"
	"tts-gateway/middleware"
)

type SpeechController interface {
	CreateSpeech(c *gin.Context)
	CreateSpeechUrl(c *gin.Context)
	StreamSpeech(c *gin.Context)
	ListVoices(c *gin.Context)
	RegisterRoutes(g *gin.Engine, sseMiddleware gin.HandlerFunc)
}

type speechController struct {
	logger        outbound.LoggerPort
	speechService inbound.SpeechSynthesizerPort
	pipeline      inbound.SpeechPipelineOrchestrator
	voices        []dto.Voice
}

func NewSpeechController(logger outbound.LoggerPort, speechService inbound.SpeechSynthesizerPort,
	pipeline inbound.SpeechPipelineOrchestrator, voices []dto.Voice) SpeechController {
	return &speechController{
		logger:        logger,
		speechService: speechService,
		pipeline:      pipeline,
		voices:        voices,
	}
}

// CreateSpeech returns the synthesized audio directly as a download.
func (s *speechController) CreateSpeech(c *gin.Context) {
	params, ok := s.bindParams(c)
	if !ok {
		return
	}

	result, err := s.speechService.Synthesize(c.Request.Context(), params)
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=speech.%s", result.Format.Extension()))
	c.Data(http.StatusOK, result.ContentType, result.AudioContent)
}

// CreateSpeechUrl synthesizes, uploads to S3 and returns the object URL.
func (s *speechController) CreateSpeechUrl(c *gin.Context) {
	params, ok := s.bindParams(c)
	if !ok {
		return
	}

	result, err := s.speechService.SynthesizeToStore(c.Request.Context(), params)
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.SynthesizeResponse{
		Message: "Speech generated successfully",
		Url:     result.AudioURL,
	})
}

// StreamSpeech runs the long-text pipeline and streams per-segment events.
func (s *speechController) StreamSpeech(c *gin.Context) {
	var request dto.SynthesizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.abortWithError(c, http.StatusBadRequest, err)
		return
	}

	if request.Text == "" {
		s.abortWithError(c, http.StatusBadRequest, fmt.Errorf("text is required"))
		return
	}

	format, err := domain.ParseFormat(request.Format)
	if err != nil {
		s.abortWithError(c, http.StatusBadRequest, err)
		return
	}

	speechID := uuid.NewString()

	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, errCh := s.pipeline.StartPipeline(newCtx, inbound.StartPipelineParams{
		SpeechID: speechID,
		Input:    request.Text,
		Voice:    request.Voice,
		Format:   format,
		UserID:   s.userID(c),
	})

	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				s.writeEvent(c, domain.ErrorEvent{MessageEvent: domain.MessageEvent{
					SpeechID: speechID,
					Message:  err.Error(),
				}})
				return
			}
		case event, ok := <-events:
			if !ok {
				s.writeEvent(c, domain.EndSynthesisEvent{MessageEvent: domain.MessageEvent{
					SpeechID: speechID,
					Message:  "synthesis complete",
				}})
				return
			}
			s.writeEvent(c, event)
		case <-newCtx.Done():
			return
		}
	}
}

func (s *speechController) ListVoices(c *gin.Context) {
	c.JSON(http.StatusOK, s.voices)
}

func (s *speechController) RegisterRoutes(g *gin.Engine, sseMiddleware gin.HandlerFunc) {
	g.POST("/tts", s.CreateSpeech)
	g.POST("/api/tts", s.CreateSpeechUrl)
	g.POST("/api/tts/stream", sseMiddleware, s.StreamSpeech)
	g.GET("/api/voices", s.ListVoices)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *speechController) bindParams(c *gin.Context) (inbound.SynthesizeParams, bool) {
	var request dto.SynthesizeRequest
	// An absent body falls through to the default text, matching the
	// empty-text behavior.
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		s.abortWithError(c, http.StatusBadRequest, err)
		return inbound.SynthesizeParams{}, false
	}

	format, err := domain.ParseFormat(request.Format)
	if err != nil {
		s.abortWithError(c, http.StatusBadRequest, err)
		return inbound.SynthesizeParams{}, false
	}

	return inbound.SynthesizeParams{
		Text:   request.Text,
		Voice:  request.Voice,
		Format: format,
		UserID: s.userID(c),
	}, true
}

func (s *speechController) userID(c *gin.Context) string {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		return "anonymous"
	}
	return userID
}

func (s *speechController) abortWithError(c *gin.Context, status int, err error) {
	s.logger.ErrorWithFields(err, "request failed", map[string]interface{}{
		"path":   c.Request.URL.Path,
		"status": status,
	})
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *speechController) writeEvent(c *gin.Context, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error(err, "failed to marshal event")
		return
	}
	if _, err := c.Writer.WriteString("data: " + string(payload) + "\n\n"); err != nil {
		s.logger.Error(err, "failed to write event")
		return
	}
	c.Writer.Flush()
}
