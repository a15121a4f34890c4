package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		expected string
	}{
		{"both present", Credentials{Username: "user", Password: "pass"}, ""},
		{"both missing", Credentials{}, "missing username and password"},
		{"username missing", Credentials{Password: "pass"}, "missing username"},
		{"password missing", Credentials{Username: "user"}, "missing password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.expected == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsCredentialError(err))
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

const summaryJSON = `{
  "nbCreated": 2,
  "nbUpdated": 0,
  "nbFailed": 1,
  "nbDeactivated": 0,
  "created": ["676", "680"],
  "updated": [],
  "failed": ["207"],
  "deactivated": []
}`

func TestDecodeActionSummary(t *testing.T) {
	summary, err := DecodeActionSummary([]byte(summaryJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.NbCreated)
	assert.Equal(t, 1, summary.NbFailed)
	assert.Equal(t, []string{"676", "680"}, summary.Created)
	assert.Equal(t, []string{"207"}, summary.Failed)
	assert.Empty(t, summary.Updated)
}

func TestDecodeActionSummaryMissingField(t *testing.T) {
	_, err := DecodeActionSummary([]byte(`{"nbCreated": 1}`))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "missing field")
}

func TestDecodeActionSummaryMalformed(t *testing.T) {
	_, err := DecodeActionSummary([]byte(`not json`))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestHTTPErrorMessageCarriesStatus(t *testing.T) {
	assert.Contains(t, NewHTTPError(404, nil).Error(), "404")
	assert.Contains(t, NewHTTPError(500, nil).Error(), "500")
}

func TestFormatErrorLine(t *testing.T) {
	assert.Equal(t, "improperly formatted header", NewFormatError(0, "improperly formatted header").Error())
	assert.Equal(t, "line 3: improperly formatted row", NewFormatError(3, "improperly formatted row").Error())
}
