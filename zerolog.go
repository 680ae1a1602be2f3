package client

import "github.com/rs/zerolog"

// ZerologLogger adapts a [zerolog.Logger] to the [RequestLogger] interface.
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	c := client.New(baseURL, client.WithRequestLogger(client.NewZerologLogger(logger)))
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a [RequestLogger] that writes through the given
// zerolog logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
