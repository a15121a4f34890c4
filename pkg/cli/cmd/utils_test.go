package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/datavault-io/watchlist/pkg/types"
)

func TestResolveCredentials(t *testing.T) {
	tests := []struct {
		name      string
		flagUser  string
		flagPass  string
		boundUser string
		boundPass string
		expected  types.Credentials
	}{
		{"flags win", "flag-user", "flag-pass", "env-user", "env-pass", types.Credentials{Username: "flag-user", Password: "flag-pass"}},
		{"env fallback", "", "", "env-user", "env-pass", types.Credentials{Username: "env-user", Password: "env-pass"}},
		{"mixed", "flag-user", "", "env-user", "env-pass", types.Credentials{Username: "flag-user", Password: "env-pass"}},
		{"nothing set", "", "", "", "", types.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("api.username", tt.boundUser)
			viper.Set("api.password", tt.boundPass)
			defer viper.Reset()

			assert.Equal(t, tt.expected, resolveCredentials(tt.flagUser, tt.flagPass))
		})
	}
}

func TestDescribeHTTPError(t *testing.T) {
	causes := map[int]string{
		401: "improper credentials",
		404: "no active configuration for the given date and time",
	}

	t.Run("known status gets a cause label", func(t *testing.T) {
		err := describeHTTPError(types.NewHTTPError(404, nil), causes)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "no active configuration for the given date and time")
	})

	t.Run("unknown status surfaced raw", func(t *testing.T) {
		err := describeHTTPError(types.NewHTTPError(418, nil), causes)
		assert.Contains(t, err.Error(), "418")
		assert.NotContains(t, err.Error(), ":")
	})

	t.Run("non-HTTP error passed through", func(t *testing.T) {
		plain := errors.New("connection refused")
		assert.Equal(t, plain, describeHTTPError(plain, causes))
	})
}

func TestOutputDir(t *testing.T) {
	dir, err := outputDir("/tmp/out")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/out", dir)

	cwd, err := outputDir("")
	assert.NoError(t, err)
	assert.NotEmpty(t, cwd)
}
