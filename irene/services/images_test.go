package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"

	"github.com/lovequartz/irene/irene/database/models"
)

type fakeObjectHeader struct {
	keys  map[string]bool
	calls int
}

func (f *fakeObjectHeader) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.calls++
	if f.keys[*in.Key] {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, errors.New("not found")
}

func newTestImageService(header *fakeObjectHeader) *CardImageService {
	return &CardImageService{
		client:   header,
		bucket:   "irene",
		region:   "ams3",
		cardRoot: "cards",
	}
}

func TestImageURL(t *testing.T) {
	s := newTestImageService(&fakeObjectHeader{})

	card := &models.Card{Code: "HNGC#001", Image: "https://example.com/hanni.png"}
	assert.Equal(t, "https://example.com/hanni.png", s.ImageURL(card), "an explicit URL wins")

	card = &models.Card{Code: "HNGC#001"}
	assert.Equal(t, "https://irene.ams3.digitaloceanspaces.com/cards/hngc#001.jpg", s.ImageURL(card))

	assert.Empty(t, s.ImageURL(&models.Card{}))
}

func TestVerifyImage(t *testing.T) {
	header := &fakeObjectHeader{keys: map[string]bool{"cards/hngc#001.jpg": true}}
	s := newTestImageService(header)
	ctx := context.Background()

	assert.True(t, s.VerifyImage(ctx, &models.Card{Code: "HNGC#001"}))
	assert.False(t, s.VerifyImage(ctx, &models.Card{Code: "ZZZZ#999"}), "a missing object means no image")
	assert.Equal(t, 2, header.calls)

	// Cards carrying their own URL skip the bucket check.
	assert.True(t, s.VerifyImage(ctx, &models.Card{Image: "https://example.com/x.png"}))
	assert.Equal(t, 2, header.calls)
}
