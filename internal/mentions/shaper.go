package mentions

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/videomentions/notification-server/internal/models"
)

// Shape maps raw result rows into API mentions. Columns absent on a row
// become null, and created_at is always rendered as a string. Input rows are
// not modified.
func Shape(rows []map[string]bigquery.Value) []models.Mention {
	results := make([]models.Mention, 0, len(rows))
	for _, row := range rows {
		results = append(results, shapeRow(row))
	}
	return results
}

func shapeRow(row map[string]bigquery.Value) models.Mention {
	mention := models.Mention{
		VideoName: stringField(row, "video_name"),
		Keyword:   stringField(row, "keyword"),
		Text:      stringField(row, "text"),
		VideoURL:  stringField(row, "video_url"),
		StartSec:  numericField(row, "start_sec"),
		CreatedAt: timeString(row["created_at"]),
	}
	mention.Link = deriveLink(mention.VideoURL, row["start_sec"])
	return mention
}

// deriveLink appends the start offset as whole seconds to the video URL,
// e.g. "https://x/y&t=42s". When start_sec is absent or not numeric the bare
// video URL is used; when that too is absent the link stays null.
func deriveLink(videoURL *string, startSec bigquery.Value) *string {
	if videoURL == nil {
		return nil
	}

	secs, ok := wholeSeconds(startSec)
	if !ok {
		link := *videoURL
		return &link
	}

	link := fmt.Sprintf("%s&t=%ds", *videoURL, secs)
	return &link
}

// wholeSeconds truncates the offset to whole seconds. Integer strings are
// accepted since the upstream column is loosely typed.
func wholeSeconds(v bigquery.Value) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stringField(row map[string]bigquery.Value, key string) *string {
	if s, ok := row[key].(string); ok {
		return &s
	}
	return nil
}

func numericField(row map[string]bigquery.Value, key string) *float64 {
	switch n := row[key].(type) {
	case float64:
		value := n
		return &value
	case int64:
		value := float64(n)
		return &value
	case int:
		value := float64(n)
		return &value
	default:
		return nil
	}
}

func timeString(v bigquery.Value) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
