// Package logging builds the zap logger used for diagnostics.
// Command results go to stdout/stderr directly; the logger only carries
// warnings and, with --debug, debug traces.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys shared across packages.
const (
	KeyKey     = "key"
	KeyList    = "list"
	KeyCommand = "command"
	KeyDriver  = "driver"
)

// New returns a console logger writing to w. debug lowers the level from
// Warn to Debug.
func New(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
