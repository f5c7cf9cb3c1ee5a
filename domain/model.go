package domain

import "fmt"

type SpeechFormat string

const (
	FormatMP3 SpeechFormat = "mp3"
	FormatOGG SpeechFormat = "ogg"
	FormatPCM SpeechFormat = "pcm"
)

// ParseFormat maps the request format field to a SpeechFormat.
// An empty value defaults to mp3.
func ParseFormat(value string) (SpeechFormat, error) {
	switch value {
	case "", "mp3":
		return FormatMP3, nil
	case "ogg":
		return FormatOGG, nil
	case "pcm", "wav":
		return FormatPCM, nil
	default:
		return "", fmt.Errorf("unknown audio format %q", value)
	}
}

func (f SpeechFormat) ContentType() string {
	switch f {
	case FormatOGG:
		return "audio/ogg"
	case FormatPCM:
		return "audio/wave"
	default:
		return "audio/mpeg"
	}
}

func (f SpeechFormat) Extension() string {
	if f == FormatPCM {
		return "wav"
	}
	return string(f)
}

func NewSegment(text string, id string, speechID string, voice string, format SpeechFormat, ordinal int) SpeechSegment {
	return SpeechSegment{
		Text:     text,
		ID:       id,
		SpeechID: speechID,
		Voice:    voice,
		Format:   format,
		Ordinal:  ordinal,
	}
}

type SpeechSegment struct {
	Text     string
	ID       string
	SpeechID string
	Voice    string
	Format   SpeechFormat
	Ordinal  int
}

type SegmentWithAudio struct {
	AudioContent []byte
	ContentType  string
	SpeechSegment
}

type SegmentWithAudioUrl struct {
	AudioURL string
	SpeechSegment
}

func (s SegmentWithAudioUrl) ToEvent() SpeechEvent {
	return SpeechEvent{
		SpeechId:  s.SpeechID,
		SegmentId: s.ID,
		Text:      s.Text,
		Ordinal:   s.Ordinal,
		Url:       s.AudioURL,
	}
}

type SpeechEvent struct {
	SpeechId  string `json:"speech_id"`
	SegmentId string `json:"segment_id"`
	Text      string `json:"text"`
	Ordinal   int    `json:"ordinal"`
	Url       string `json:"url"`
}

type EndSynthesisEvent struct {
	MessageEvent
}

type ErrorEvent struct {
	MessageEvent
}

type MessageEvent struct {
	SpeechID string `json:"speech_id"`
	Message  string `json:"message"`
}
