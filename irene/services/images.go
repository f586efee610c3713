package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lovequartz/irene/irene/database/models"
)

// objectHeader is the slice of the S3 client the service needs.
type objectHeader interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// CardImageService resolves card artwork hosted on DigitalOcean Spaces.
// Cards may carry a full image URL already; for the rest the service builds
// the object URL from the card code.
type CardImageService struct {
	client   objectHeader
	bucket   string
	region   string
	cardRoot string
}

func NewCardImageService(key, secret, region, bucket, cardRoot string) (*CardImageService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return &CardImageService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		cardRoot: strings.Trim(cardRoot, "/"),
	}, nil
}

// ImageURL returns the artwork URL for card, or "" when the card has no
// image and no bucket path can be derived.
func (s *CardImageService) ImageURL(card *models.Card) string {
	if card.Image != "" {
		return card.Image
	}
	if card.Code == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s/%s.jpg",
		s.bucket, s.region, s.cardRoot, strings.ToLower(card.Code))
}

// VerifyImage checks whether the derived object actually exists. Callers
// treat a failed check as "no image", never as a command failure.
func (s *CardImageService) VerifyImage(ctx context.Context, card *models.Card) bool {
	if card.Image != "" {
		return true
	}
	key := fmt.Sprintf("%s/%s.jpg", s.cardRoot, strings.ToLower(card.Code))
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err == nil
}
