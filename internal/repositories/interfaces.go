package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
)

// ErrSlotEmpty is returned by SlotRepository.Read when the key holds no value.
var ErrSlotEmpty = errors.New("slot is empty")

// ResponseRepository is the primary store for completed responses
type ResponseRepository interface {
	// List returns every stored response, newest submission first
	List(ctx context.Context) ([]*models.SurveyResponse, error)
	Insert(ctx context.Context, response *models.SurveyResponse) error
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// SlotRepository is a string-keyed blob store used for the local fallback.
// Values are opaque to the store.
type SlotRepository interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// Keys lists the stored keys starting with prefix
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
