package mentions

import (
	"context"

	"github.com/videomentions/notification-server/internal/models"
)

// Store defines the contract for reading recent mentions
type Store interface {
	Recent(ctx context.Context, hours int) ([]models.Mention, error)
}
