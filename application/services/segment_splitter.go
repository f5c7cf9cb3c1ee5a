package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"tts-gateway/application/ports/inbound"
	"tts-gateway/application/ports/outbound"
	"tts-gateway/domain"
)

// maxSegmentRunes keeps segments below the shortest vendor limit (gtts).
const maxSegmentRunes = 200

var sentenceTerminators = map[rune]bool{
	'.': true, '!': true, '?': true, ';': true,
	'。': true, '！': true, '？': true, '…': true,
}

type segmentSplitter struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
}

func NewSegmentSplitter(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher) inbound.SegmentSplitterPort {
	return &segmentSplitter{
		logger:     logger,
		workerPool: workerPool,
	}
}

func (s *segmentSplitter) Split(ctx context.Context, params inbound.SplitSegmentsParams) (<-chan domain.SpeechSegment, <-chan error) {
	out := make(chan domain.SpeechSegment)
	errCh := make(chan error, 1)

	newCtx, cancel := context.WithCancel(ctx)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		ordinal := 0
		for _, text := range splitSentences(params.Input) {
			segment := domain.NewSegment(text, uuid.NewString(), params.SpeechID, params.Voice, params.Format, ordinal)
			ordinal++

			s.logger.DebugWithFields("Split segment", map[string]interface{}{
				"id":  segment.ID,
				"ord": segment.Ordinal,
				"txt": segment.Text,
			})

			select {
			case <-newCtx.Done():
				return
			case out <- segment:
			}
		}
	})
	if err != nil {
		errCh <- err
	}

	return out, errCh
}

// splitSentences cuts the input on sentence boundaries, then hard-splits
// any sentence still longer than maxSegmentRunes on whitespace.
func splitSentences(input string) []string {
	sentences := make([]string, 0)

	var builder strings.Builder
	for _, r := range input {
		builder.WriteRune(r)
		if sentenceTerminators[r] {
			if sentence := normalizeSegment(builder.String()); sentence != "" {
				sentences = append(sentences, sentence)
			}
			builder.Reset()
		}
	}
	if sentence := normalizeSegment(builder.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	segments := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		segments = append(segments, hardSplit(sentence, maxSegmentRunes)...)
	}

	return segments
}

func hardSplit(sentence string, limit int) []string {
	runes := []rune(sentence)
	if len(runes) <= limit {
		return []string{sentence}
	}

	parts := make([]string, 0)
	var builder strings.Builder
	length := 0
	for _, word := range strings.Fields(sentence) {
		wordLen := len([]rune(word))
		if length > 0 && length+wordLen+1 > limit {
			parts = append(parts, builder.String())
			builder.Reset()
			length = 0
		}
		if length > 0 {
			builder.WriteRune(' ')
			length++
		}
		builder.WriteString(word)
		length += wordLen
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}

	return parts
}

func normalizeSegment(input string) string {
	result := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, input)
	result = strings.Join(strings.Fields(result), " ")

	return strings.TrimFunc(result, unicode.IsSpace)
}
