package telemetry

import (
	"fmt"
	"strings"
	"time"

	"github.com/microsoft/ApplicationInsights-Go/appinsights"
	"github.com/microsoft/ApplicationInsights-Go/appinsights/contracts"
	"github.com/rs/zerolog"
)

// closeTimeout bounds how long Close waits for pending telemetry.
const closeTimeout = 10 * time.Second

// Client mirrors warning-and-above log events into Application Insights.
// A nil Client is valid and does nothing, which is how the app runs when
// no connection string is configured.
type Client struct {
	tc appinsights.TelemetryClient
}

// New builds a client from an Application Insights connection string.
// An empty connection string disables telemetry and returns (nil, nil).
func New(connectionString string) (*Client, error) {
	if strings.TrimSpace(connectionString) == "" {
		return nil, nil
	}

	ikey, endpoint, err := parseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}

	cfg := appinsights.NewTelemetryConfiguration(ikey)
	if endpoint != "" {
		cfg.EndpointUrl = strings.TrimRight(endpoint, "/") + "/v2/track"
	}

	return &Client{tc: appinsights.NewTelemetryClientFromConfig(cfg)}, nil
}

// Hook returns a zerolog hook that forwards warnings and errors as traces.
func (c *Client) Hook() zerolog.Hook {
	return logHook{tc: c.tc}
}

// TrackTrace records a standalone trace, used for startup breadcrumbs.
func (c *Client) TrackTrace(msg string) {
	if c == nil {
		return
	}
	c.tc.TrackTrace(msg, contracts.Information)
}

// Close flushes pending telemetry, bounded by closeTimeout.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.tc.Channel().Flush()
	select {
	case <-c.tc.Channel().Close(closeTimeout / 2):
	case <-time.After(closeTimeout):
	}
}

type logHook struct {
	tc appinsights.TelemetryClient
}

func (h logHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if msg == "" {
		return
	}
	var severity contracts.SeverityLevel
	switch level {
	case zerolog.WarnLevel:
		severity = contracts.Warning
	case zerolog.ErrorLevel:
		severity = contracts.Error
	case zerolog.FatalLevel, zerolog.PanicLevel:
		severity = contracts.Critical
	default:
		return
	}
	h.tc.TrackTrace(msg, severity)
}

// parseConnectionString splits the semicolon-delimited connection string
// format, e.g. "InstrumentationKey=...;IngestionEndpoint=https://...".
func parseConnectionString(s string) (ikey, endpoint string, err error) {
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "instrumentationkey":
			ikey = strings.TrimSpace(value)
		case "ingestionendpoint":
			endpoint = strings.TrimSpace(value)
		}
	}
	if ikey == "" {
		return "", "", fmt.Errorf("application insights connection string has no InstrumentationKey")
	}
	return ikey, endpoint, nil
}
