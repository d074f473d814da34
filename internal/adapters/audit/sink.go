// Package audit writes the detailed session log through zap.
package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Sink struct {
	logger *zap.Logger
}

var _ ports.AuditSink = (*Sink)(nil)

func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sink{logger: logger.Named("audit")}
}

// Audit maps SUCCESS onto info with a level_tag field since zap has no
// matching level.
func (s *Sink) Audit(entry domain.AuditEntry) {
	fields := make([]zap.Field, 0, 5)
	fields = append(fields, zap.String("tag", entry.Tag))
	if entry.Problem != "" {
		fields = append(fields, zap.String("problem", string(entry.Problem)))
	}
	if entry.Details != "" {
		fields = append(fields, zap.String("details", entry.Details))
	}
	if !entry.Timestamp.IsZero() {
		fields = append(fields, zap.Time("event_time", entry.Timestamp))
	}

	switch entry.Level {
	case domain.AuditSuccess:
		s.logger.Info(entry.Message, append(fields, zap.String("level_tag", string(domain.AuditSuccess)))...)
	case domain.AuditWarning:
		s.logger.Warn(entry.Message, fields...)
	case domain.AuditError:
		s.logger.Error(entry.Message, fields...)
	default:
		s.logger.Info(entry.Message, fields...)
	}
}

// NewLogger builds the application logger: JSON at info level, or a console
// encoder at debug level when verbose. Both write to stderr.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.DisableStacktrace = !verbose

	return build(config)
}

// NewFileLogger writes JSON entries to path, creating its directory. Logger
// internal errors still go to stderr.
func NewFileLogger(path string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.DisableStacktrace = true
	config.Sampling = nil
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{"stderr"}

	return build(config)
}

func build(config zap.Config) (*zap.Logger, error) {
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
