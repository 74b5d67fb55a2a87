package mentions

import (
	"fmt"

	"cloud.google.com/go/bigquery"
)

// recentMentionsQuery builds the query for mentions created in the last
// @hours hours, newest first. The hour count stays a bound parameter and is
// never interpolated into the query text.
func recentMentionsQuery(tableID string) string {
	return fmt.Sprintf("SELECT video_name, keyword, text, video_url, start_sec, created_at\n"+
		"FROM `%s`\n"+
		"WHERE CAST(created_at AS TIMESTAMP) > TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL @hours HOUR)\n"+
		"ORDER BY created_at DESC", tableID)
}

func queryParameters(hours int) []bigquery.QueryParameter {
	return []bigquery.QueryParameter{
		{Name: "hours", Value: int64(hours)},
	}
}
