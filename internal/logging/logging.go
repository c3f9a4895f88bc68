// Package logging builds the process logger: a console writer on terminals,
// JSON lines otherwise, with an optional rotating log file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
	// File, when set, receives JSON logs in addition to the console.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 3
	defaultMaxAgeDays = 14
)

// New returns a logger writing to out and a cleanup func that closes the
// log file, if any.
func New(cfg Config, out io.Writer) (zerolog.Logger, func(), error) {
	level := ParseLevel(cfg.Level)
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	console := consoleWriter(out)
	cleanup := func() {}
	w := console
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), cleanup, err
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     orDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
			Compress:   true,
		}
		w = zerolog.MultiLevelWriter(console, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return l, cleanup, nil
}

// consoleWriter pretty-prints for terminals and passes JSON through otherwise.
func consoleWriter(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return out
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
// "warning" is accepted as an alias of warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return zerolog.WarnLevel
	case "":
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
