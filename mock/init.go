package mock_provider

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
	"tts-gateway/infrastructure/gin_interface/dto"
)

// Init mounts a credential-free synthesis route backed by the tone
// synthesizer, for exercising clients without vendor access.
func Init(g *gin.Engine, logger outbound.LoggerPort) {
	synthesizer := NewToneSynthesizer()

	g.POST("/mock/tts", func(c *gin.Context) {
		var request dto.SynthesizeRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		audio, err := synthesizer.Synthesize(c.Request.Context(), outbound.SynthesizeSpeechRequest{
			Text:   request.Text,
			Format: domain.FormatPCM,
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		logger.DebugWithFields("served mock speech", map[string]interface{}{
			"bytes": len(audio),
		})

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=speech.%s", domain.FormatPCM.Extension()))
		c.Data(http.StatusOK, domain.FormatPCM.ContentType(), audio)
	})
}
