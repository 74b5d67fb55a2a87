package mentions

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"github.com/videomentions/notification-server/internal/models"
)

// BigQueryStore reads mentions from the configured BigQuery table
type BigQueryStore struct {
	projectID string
	dataset   string
	table     string
}

// Ensure BigQueryStore implements Store
var _ Store = (*BigQueryStore)(nil)

// NewBigQueryStore creates a store bound to a project, dataset and table
func NewBigQueryStore(projectID, dataset, table string) *BigQueryStore {
	return &BigQueryStore{
		projectID: projectID,
		dataset:   dataset,
		table:     table,
	}
}

func (s *BigQueryStore) tableID() string {
	return fmt.Sprintf("%s.%s.%s", s.projectID, s.dataset, s.table)
}

// Recent returns all mentions created in the last hours hours, newest first.
// Each call opens its own client so concurrent requests stay fully
// independent. Query failures propagate to the caller.
func (s *BigQueryStore) Recent(ctx context.Context, hours int) ([]models.Mention, error) {
	client, err := bigquery.NewClient(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}
	defer client.Close()

	query := client.Query(recentMentionsQuery(s.tableID()))
	query.Parameters = queryParameters(hours)

	it, err := query.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run mentions query: %w", err)
	}

	var rows []map[string]bigquery.Value
	for {
		row := map[string]bigquery.Value{}
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read mentions row: %w", err)
		}
		rows = append(rows, row)
	}

	logrus.Debugf("Fetched %d mention rows from %s", len(rows), s.tableID())
	return Shape(rows), nil
}
