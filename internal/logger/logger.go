// Package logger is the structured log sink for the command line tools.
// The rendering packages never log; only the host shell, the preset loader
// and the watcher do.
package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn (or warning) and error. Empty means
	// info.
	Level string
	// HumanReadable switches from JSON lines to zerolog's console format.
	HumanReadable bool
	// Writer defaults to stderr so stdout stays free for command output.
	Writer io.Writer
	// Command, when set, is attached to every entry as "cmd".
	Command string
}

// Logger is a nil-safe handle on a zerolog.Logger: a nil *Logger drops
// everything, which lets packages take an optional logger without checks.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = time.Kitchen
		out = console
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Command != "" {
		ctx = ctx.Str("cmd", opts.Command)
	}
	return &Logger{base: ctx.Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	default:
		return zerolog.ParseLevel(name)
	}
}

// Nop discards everything but, unlike a nil *Logger, can still derive
// children with WithFields.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields. Keys are added in
// sorted order so console output is stable between runs.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx := l.base.With()
	for _, k := range keys {
		ctx = ctx.Interface(k, fields[k])
	}
	return &Logger{base: ctx.Logger()}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.base.Debug().Msg(msg)
	}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.base.Info().Msg(msg)
	}
}

// Warn is used for settings that were clamped rather than rejected.
func (l *Logger) Warn(msg string) {
	if l != nil {
		l.base.Warn().Msg(msg)
	}
}

// Error logs msg with err under the "error" key; err may be nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
