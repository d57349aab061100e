package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectionString(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantIkey     string
		wantEndpoint string
		wantErr      bool
	}{
		{
			name:         "full connection string",
			input:        "InstrumentationKey=00000000-0000-0000-0000-000000000001;IngestionEndpoint=https://westus-0.in.applicationinsights.azure.com/;LiveEndpoint=https://westus.livediagnostics.monitor.azure.com/",
			wantIkey:     "00000000-0000-0000-0000-000000000001",
			wantEndpoint: "https://westus-0.in.applicationinsights.azure.com/",
		},
		{
			name:     "key only",
			input:    "InstrumentationKey=abc123",
			wantIkey: "abc123",
		},
		{
			name:         "keys are case insensitive",
			input:        "instrumentationkey=abc123;ingestionendpoint=https://example.com",
			wantIkey:     "abc123",
			wantEndpoint: "https://example.com",
		},
		{
			name:         "whitespace and empty segments are tolerated",
			input:        " InstrumentationKey = abc123 ; ; IngestionEndpoint = https://example.com ",
			wantIkey:     "abc123",
			wantEndpoint: "https://example.com",
		},
		{
			name:    "missing instrumentation key",
			input:   "IngestionEndpoint=https://example.com",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a connection string",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ikey, endpoint, err := parseConnectionString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIkey, ikey)
			assert.Equal(t, tt.wantEndpoint, endpoint)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("blank connection string disables telemetry", func(t *testing.T) {
		c, err := New("   ")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("invalid connection string is an error", func(t *testing.T) {
		_, err := New("IngestionEndpoint=https://example.com")
		require.Error(t, err)
	})
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	c.TrackTrace("ignored")
	c.Close()
}
