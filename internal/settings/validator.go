package settings

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/videomentions/notification-server/internal/models"
)

// Field keys of the settings document. recipients is stored as an array.
const (
	fieldSender     = "sender"
	fieldPassword   = "password"
	fieldRecipients = "recipients"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError reports why a settings update was rejected
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateUpdate checks and normalizes the fields present in the request and
// returns the set of fields to merge into the stored document. A nil field
// means "leave unchanged"; the first invalid field aborts the whole update.
func ValidateUpdate(req models.SettingsUpdate) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if req.Sender != nil {
		val := strings.TrimSpace(*req.Sender)
		if !emailPattern.MatchString(val) || strings.Contains(val, ",") {
			return nil, &ValidationError{Reason: "Sender must be a single valid email address."}
		}
		updates[fieldSender] = val
	}

	if req.Password != nil {
		val := strings.TrimSpace(*req.Password)
		if strings.IndexFunc(val, unicode.IsSpace) >= 0 {
			return nil, &ValidationError{Reason: "Password must not contain whitespaces."}
		}
		// An empty value is an unchanged blank field from the UI, not an error
		if val != "" {
			updates[fieldPassword] = val
		}
	}

	if req.Recipients != nil {
		val := strings.TrimSpace(*req.Recipients)
		if strings.Contains(val, " ") {
			return nil, &ValidationError{Reason: "Recipients must be comma-separated with NO spaces."}
		}

		emails := []string{}
		for _, part := range strings.Split(val, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !strings.Contains(part, "@") {
				return nil, &ValidationError{Reason: fmt.Sprintf("Invalid email in recipients: %s", part)}
			}
			emails = append(emails, part)
		}
		updates[fieldRecipients] = emails
	}

	return updates, nil
}
