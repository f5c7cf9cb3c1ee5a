package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/rs/zerolog/log"

	"tts-gateway/application/ports/outbound"
	"tts-gateway/config"
	"tts-gateway/domain"
)

type dynamoSpeechItem struct {
	CacheKey  string `dynamodbav:"cache_key"`
	SpeechId  string `dynamodbav:"speech_id"`
	SegmentId string `dynamodbav:"segment_id"`
	Text      string `dynamodbav:"text"`
	Voice     string `dynamodbav:"voice"`
	Format    string `dynamodbav:"format"`
	Url       string `dynamodbav:"url"`
	TTL       int64  `dynamodbav:"ttl"`
}

type dynamoSpeechCache struct {
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
}

func NewDynamoSpeechCache(dynamoSvc dynamodbiface.DynamoDBAPI, dynamoConfig *config.DynamoConfig) outbound.SpeechCachePort {
	return &dynamoSpeechCache{
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

// cacheKey identifies synthesized audio by what produced it, so the same
// text, voice and format resolve to the same object URL.
func cacheKey(segment domain.SpeechSegment) string {
	hash := sha256.New()
	hash.Write([]byte(segment.Voice))
	hash.Write([]byte{0x1f})
	hash.Write([]byte(segment.Format))
	hash.Write([]byte{0x1f})
	hash.Write([]byte(segment.Text))
	return hex.EncodeToString(hash.Sum(nil))
}

func (c *dynamoSpeechCache) Lookup(ctx context.Context, segment domain.SpeechSegment) (domain.SegmentWithAudioUrl, bool, error) {
	key := cacheKey(segment)

	result, err := c.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"cache_key": {S: aws.String(key)},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("Failed to look up cached speech")
		return domain.SegmentWithAudioUrl{}, false, err
	}

	if result.Item == nil {
		return domain.SegmentWithAudioUrl{}, false, nil
	}

	var item dynamoSpeechItem
	if err := dynamodbattribute.UnmarshalMap(result.Item, &item); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("Failed to unmarshal cached speech item")
		return domain.SegmentWithAudioUrl{}, false, err
	}

	// Dynamo TTL deletion is lazy, skip expired items.
	if item.TTL < time.Now().Unix() {
		return domain.SegmentWithAudioUrl{}, false, nil
	}

	return domain.SegmentWithAudioUrl{
		AudioURL: item.Url,
		SpeechSegment: domain.SpeechSegment{
			Text:     item.Text,
			ID:       item.SegmentId,
			SpeechID: item.SpeechId,
			Voice:    item.Voice,
			Format:   domain.SpeechFormat(item.Format),
			Ordinal:  segment.Ordinal,
		},
	}, true, nil
}

func (c *dynamoSpeechCache) Save(ctx context.Context, segment domain.SegmentWithAudioUrl) error {
	item := dynamoSpeechItem{
		CacheKey:  cacheKey(segment.SpeechSegment),
		SpeechId:  segment.SpeechID,
		SegmentId: segment.ID,
		Text:      segment.Text,
		Voice:     segment.Voice,
		Format:    string(segment.Format),
		Url:       segment.AudioURL,
		TTL:       time.Now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		log.Error().Err(err).Str("segmentId", segment.ID).Msg("Failed to marshal speech item")
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("segmentId", segment.ID).Msg("Failed to save speech item")
		return err
	}

	return nil
}
