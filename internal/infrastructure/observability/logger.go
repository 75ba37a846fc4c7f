package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// LoggerOptions describes the process-wide logger
type LoggerOptions struct {
	ServiceName    string
	ServiceVersion string
	// Env "development" switches to the human-readable console writer
	Env string
	// Level is a zerolog level name; empty or unknown means info
	Level string
	// Fields are attached to every entry, e.g. the search defaults a replica runs with
	Fields map[string]interface{}
}

// InitLogger installs the global zerolog logger
func InitLogger(opts LoggerOptions) {
	initLogger(os.Stdout, opts)
}

func initLogger(out io.Writer, opts LoggerOptions) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	var ctx zerolog.Context
	if opts.Env == "development" {
		ctx = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp()
	} else {
		ctx = zerolog.New(out).With().Timestamp().Caller()
	}

	ctx = ctx.Str("service", opts.ServiceName)
	if opts.ServiceVersion != "" {
		ctx = ctx.Str("version", opts.ServiceVersion)
	}
	if opts.Env != "" {
		ctx = ctx.Str("env", opts.Env)
	}
	if len(opts.Fields) > 0 {
		ctx = ctx.Fields(opts.Fields)
	}

	log.Logger = ctx.Logger()
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// LoggerFromContext returns a logger with trace context
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := log.With().Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}
