package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

type s3SpeechStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3SpeechStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.SpeechStorePort {
	return &s3SpeechStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3SpeechStore) Save(ctx context.Context, segment domain.SegmentWithAudio, userID string) (string, error) {
	itemPath := s.getS3ItemPath(segment, userID)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(itemPath),
		Body:          bytes.NewReader(segment.AudioContent),
		ContentType:   aws.String(segment.ContentType),
		ContentLength: aws.Int64(int64(len(segment.AudioContent))),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", itemPath).
			Msg("Failed to upload audio to S3")
		return "", err
	}

	s3Url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, itemPath)
	log.Debug().
		Str("s3Url", s3Url).
		Msg("Successfully uploaded audio to S3")

	return s3Url, nil
}

func (s *s3SpeechStore) getS3ItemPath(segment domain.SegmentWithAudio, userID string) string {
	return fmt.Sprintf("user/%s/speech/%s/%s.%s", userID, segment.SpeechID, segment.ID, segment.Format.Extension())
}
