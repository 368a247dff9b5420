package session_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/internal/session"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		expect func(t *testing.T, config session.Config, err error)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"XDG_CONFIG_HOME":          "/tmp/config",
				"HOME":                     "/tmp/home",
				"SESSION_FILE":             "",
				"SESSION_REFRESH_INTERVAL": "",
				"SESSION_VALIDITY_TTL":     "",
			},
			expect: func(t *testing.T, config session.Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "session.json", filepath.Base(config.StorageFile))
				assert.Equal(t, 25*time.Minute, config.RefreshInterval)
				assert.Equal(t, time.Minute, config.ValidityTTL)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"SESSION_FILE":             "/var/lib/sessionctl/state.json",
				"SESSION_REFRESH_INTERVAL": "10m",
				"SESSION_VALIDITY_TTL":     "5s",
			},
			expect: func(t *testing.T, config session.Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "/var/lib/sessionctl/state.json", config.StorageFile)
				assert.Equal(t, 10*time.Minute, config.RefreshInterval)
				assert.Equal(t, 5*time.Second, config.ValidityTTL)
			},
		},
		{
			name: "invalid refresh interval",
			env: map[string]string{
				"SESSION_FILE":             "/tmp/state.json",
				"SESSION_REFRESH_INTERVAL": "soon",
			},
			expect: func(t *testing.T, _ session.Config, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			config, err := session.ParseConfig()
			tt.expect(t, config, err)
		})
	}
}
