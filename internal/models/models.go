package models

// Mention represents a single keyword occurrence detected in source video
// content. Fields are pointers so that columns absent on the source row
// serialize as JSON null instead of a zero value.
type Mention struct {
	VideoName *string  `json:"video_name"`
	Keyword   *string  `json:"keyword"`
	Text      *string  `json:"text"`
	VideoURL  *string  `json:"video_url"`
	Link      *string  `json:"link"`      // video_url with the start offset appended
	StartSec  *float64 `json:"start_sec"`
	CreatedAt string   `json:"created_at"`
}

// Settings is the presentation form of the notification settings document.
// Recipients is the stored array joined into a CSV string with no spaces.
type Settings struct {
	Sender     string `json:"sender"`
	Password   string `json:"password"`
	Recipients string `json:"recipients"`
}

// SettingsUpdate is a partial update of the settings document. A nil field
// means "leave unchanged".
type SettingsUpdate struct {
	Sender     *string `json:"sender"`
	Password   *string `json:"password"`
	Recipients *string `json:"recipients"`
}
