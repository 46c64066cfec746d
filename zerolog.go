package underboss

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ZerologHooks adapts a zerolog logger into TelemetryHooks, logging request
// outcomes and SDK log entries through it.
func ZerologHooks(logger zerolog.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnHTTPResponse: func(_ context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			if resp != nil {
				evt = evt.Int("status", resp.StatusCode)
			}
			evt.Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("latency", latency).
				Msg("underboss request")
		},
		OnLogEntry: func(_ context.Context, entry LogEntry) {
			evt := logger.Info()
			if entry.Level == LogLevelError {
				evt = logger.Error()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
	}
}
