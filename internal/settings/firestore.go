package settings

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/videomentions/notification-server/internal/models"
)

const (
	settingsCollection = "settings"
	settingsDocument   = "configuration"
)

// FirestoreStore persists the singleton settings document
type FirestoreStore struct {
	projectID string
	database  string
}

// Ensure FirestoreStore implements Store
var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore creates a store bound to a project and Firestore database
func NewFirestoreStore(projectID, database string) *FirestoreStore {
	return &FirestoreStore{
		projectID: projectID,
		database:  database,
	}
}

// Load fetches the settings document. A missing document yields the empty
// defaults without creating it. Stored values are trusted as-is.
func (s *FirestoreStore) Load(ctx context.Context) (models.Settings, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	defer client.Close()

	doc, err := client.Collection(settingsCollection).Doc(settingsDocument).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Settings{}, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to fetch settings document: %w", err)
	}

	return decodeSettings(doc.Data()), nil
}

// Save merges the validated fields into the settings document, leaving
// omitted fields untouched. The write is atomic at the document level.
func (s *FirestoreStore) Save(ctx context.Context, updates map[string]interface{}) error {
	client, err := s.newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	_, err = client.Collection(settingsCollection).Doc(settingsDocument).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update settings document: %w", err)
	}

	logrus.Info("Updated notification settings document")
	return nil
}

func (s *FirestoreStore) newClient(ctx context.Context) (*firestore.Client, error) {
	client, err := firestore.NewClientWithDatabase(ctx, s.projectID, s.database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

// decodeSettings shapes the stored document into its presentation form,
// joining the recipients array into a CSV string with no spaces.
func decodeSettings(data map[string]interface{}) models.Settings {
	decoded := models.Settings{
		Sender:   stringValue(data[fieldSender]),
		Password: stringValue(data[fieldPassword]),
	}

	if list, ok := data[fieldRecipients].([]interface{}); ok {
		recipients := make([]string, 0, len(list))
		for _, item := range list {
			if addr, ok := item.(string); ok {
				recipients = append(recipients, addr)
			}
		}
		decoded.Recipients = strings.Join(recipients, ",")
	}

	return decoded
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
