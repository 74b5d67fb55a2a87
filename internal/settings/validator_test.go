package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videomentions/notification-server/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateUpdate_Sender(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		expected string
		errMsg   string
	}{
		{
			name:     "Valid address",
			sender:   "a@b.com",
			expected: "a@b.com",
		},
		{
			name:     "Surrounding whitespace trimmed",
			sender:   "  a@b.com  ",
			expected: "a@b.com",
		},
		{
			name:   "Comma catches multi-address input",
			sender: "a,b@c.com",
			errMsg: "Sender must be a single valid email address.",
		},
		{
			name:   "Not an email",
			sender: "not-an-email",
			errMsg: "Sender must be a single valid email address.",
		},
		{
			name:   "Domain without dot",
			sender: "a@b",
			errMsg: "Sender must be a single valid email address.",
		},
		{
			name:   "Internal whitespace",
			sender: "a b@c.com",
			errMsg: "Sender must be a single valid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, err := ValidateUpdate(models.SettingsUpdate{Sender: strPtr(tt.sender)})

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				assert.Nil(t, updates)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, updates["sender"])
		})
	}
}

func TestValidateUpdate_Password(t *testing.T) {
	t.Run("Surrounding whitespace trimmed", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Password: strPtr("  secret  ")})

		require.NoError(t, err)
		assert.Equal(t, "secret", updates["password"])
	})

	t.Run("Internal whitespace rejected", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Password: strPtr("sec ret")})

		require.Error(t, err)
		assert.Equal(t, "Password must not contain whitespaces.", err.Error())
		assert.Nil(t, updates)
	})

	t.Run("Empty password skipped silently", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Password: strPtr("")})

		require.NoError(t, err)
		assert.NotContains(t, updates, "password")
		assert.Empty(t, updates)
	})

	t.Run("Blank password skipped silently", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Password: strPtr("   ")})

		require.NoError(t, err)
		assert.NotContains(t, updates, "password")
	})
}

func TestValidateUpdate_Recipients(t *testing.T) {
	t.Run("CSV split into ordered list", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("a@x.com,b@y.com")})

		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com", "b@y.com"}, updates["recipients"])
	})

	t.Run("Space after comma rejected", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("a@x.com, b@y.com")})

		require.Error(t, err)
		assert.Equal(t, "Recipients must be comma-separated with NO spaces.", err.Error())
		assert.Nil(t, updates)
	})

	t.Run("Missing @ names the offender", func(t *testing.T) {
		_, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("a@x.com,notanemail")})

		require.Error(t, err)
		assert.Equal(t, "Invalid email in recipients: notanemail", err.Error())
	})

	t.Run("Duplicates preserved in order", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("a@x.com,a@x.com")})

		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com", "a@x.com"}, updates["recipients"])
	})

	t.Run("Empty segments dropped", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("a@x.com,,b@y.com")})

		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com", "b@y.com"}, updates["recipients"])
	})

	t.Run("Empty string clears the list", func(t *testing.T) {
		updates, err := ValidateUpdate(models.SettingsUpdate{Recipients: strPtr("")})

		require.NoError(t, err)
		assert.Equal(t, []string{}, updates["recipients"])
	})
}

func TestValidateUpdate_NilFieldsLeaveNoUpdates(t *testing.T) {
	updates, err := ValidateUpdate(models.SettingsUpdate{})

	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestValidateUpdate_FirstFailureAbortsWholeUpdate(t *testing.T) {
	updates, err := ValidateUpdate(models.SettingsUpdate{
		Sender:     strPtr("valid@e.com"),
		Password:   strPtr("bad pass"),
		Recipients: strPtr("a@x.com"),
	})

	require.Error(t, err)
	assert.Equal(t, "Password must not contain whitespaces.", err.Error())
	assert.Nil(t, updates)
}

func TestValidateUpdate_Idempotent(t *testing.T) {
	first, err := ValidateUpdate(models.SettingsUpdate{
		Sender:     strPtr("  a@b.com "),
		Password:   strPtr(" secret "),
		Recipients: strPtr("a@x.com,b@y.com"),
	})
	require.NoError(t, err)

	normalizedRecipients := "a@x.com,b@y.com"
	sender := first["sender"].(string)
	password := first["password"].(string)

	second, err := ValidateUpdate(models.SettingsUpdate{
		Sender:     &sender,
		Password:   &password,
		Recipients: &normalizedRecipients,
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
