package settings

import (
	"context"

	"github.com/videomentions/notification-server/internal/models"
)

// Store defines the contract for the singleton settings document
type Store interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, updates map[string]interface{}) error
}
