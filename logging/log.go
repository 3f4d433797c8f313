// Package logging builds the zap loggers used by command line tools. Library packages accept a
// *zap.SugaredLogger and default to a no-op logger.
package logging

import (
	"io"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelValue = map[string]Level{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
}

// ParseLevel reads a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	l, ok := levelValue[strings.ToUpper(s)]
	if !ok {
		return LevelInfo, errors.Errorf("unknown log level %q", s)
	}
	return l, nil
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Config describes where log entries go. Entries are written to the console writer when it is set, and
// to hourly-suffixed, rotated files when Path is set.
type Config struct {
	Level   Level
	Console io.Writer
	Path    string

	RotationMaxAge int // days a rotated file is kept
	RotationTime   int // hours between rotations
	RotationSize   int // megabytes before a rotation
	ShowLine       bool
}

// DefaultConfig logs at info level to the console writer only.
func DefaultConfig(console io.Writer) *Config {
	return &Config{
		Level:          LevelInfo,
		Console:        console,
		RotationMaxAge: 7,
		RotationTime:   24,
		RotationSize:   30,
	}
}

// NewSugaredLogger creates a named logger from the configuration. A configuration without a console
// writer or a path yields a no-op logger.
func NewSugaredLogger(name string, c *Config) (*zap.SugaredLogger, error) {
	var syncers []zapcore.WriteSyncer
	if c.Console != nil {
		syncers = append(syncers, zapcore.AddSync(c.Console))
	}
	if c.Path != "" {
		rotationWriter, err := rotatelogs.New(
			c.Path+".%Y%m%d%H",
			rotatelogs.WithRotationTime(time.Duration(c.RotationTime)*time.Hour),
			rotatelogs.WithRotationSize(int64(c.RotationSize)*1024*1024),
			rotatelogs.WithMaxAge(time.Duration(c.RotationMaxAge)*24*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrap(err, "new rotation log failed")
		}
		syncers = append(syncers, zapcore.AddSync(rotationWriter))
	}
	if len(syncers) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	level := c.Level.zap()
	priority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "line",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + level.CapitalString() + "]")
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.NewMultiWriteSyncer(syncers...), priority)

	var opts []zap.Option
	if c.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(name).Sugar(), nil
}
