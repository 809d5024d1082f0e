// Package logging builds the logrus loggers used by the CLI and the MCP
// server. Output always goes to stderr: stdout carries rendered fingerprints
// and the JSON-RPC stream.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Setup builds a FieldLogger writing to stderr at the given level with fields
// attached to every entry.
func Setup(level string, fields log.Fields) (log.FieldLogger, error) {
	return New(os.Stderr, level, fields)
}

// New is like Setup but writes to out.
func New(out io.Writer, level string, fields log.Fields) (log.FieldLogger, error) {
	if level == "" {
		level = DefaultLevel
	}
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(logLevel)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05",
	})

	return logger.WithFields(fields), nil
}

// Discard returns a logger that drops everything.
func Discard() log.FieldLogger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
