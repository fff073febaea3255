package codec

import "github.com/rs/zerolog"

// DiagnosticSink receives lines that failed to decode.
type DiagnosticSink interface {
	DecodeFailed(line string, err error)
}

// logSink reports decode failures through a zerolog logger.
type logSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink that logs each failure at error level.
func NewLogSink(logger zerolog.Logger) DiagnosticSink {
	return &logSink{
		logger: logger.With().Str("component", "codec").Logger(),
	}
}

// DecodeFailed logs the offending line and the reason it was rejected.
func (s *logSink) DecodeFailed(line string, err error) {
	s.logger.Error().
		Err(err).
		Str("line", line).
		Msg("failed to parse product line")
}

// NopSink discards every failure.
type NopSink struct{}

// DecodeFailed does nothing.
func (NopSink) DecodeFailed(string, error) {}
