// Package logging defines the Logger interface used throughout commchar.
// It also includes functions for setting the global log level and a per-package log level.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel      = zapcore.InfoLevel
	packageLevels = make(map[string]zapcore.Level)
	mut           sync.RWMutex
)

// ParseLevel parses one of debug, info, warn, error or fatal.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	case "fatal":
		return zap.FatalLevel, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s'", level)
	}
}

// SetLogLevel sets the global log level.
func SetLogLevel(levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	mut.Lock()
	logLevel = level
	mut.Unlock()
	return nil
}

// SetPackageLogLevel sets a log level for a package, overriding the global level.
// The package name is matched against the caller's source file path.
func SetPackageLogLevel(packageName, levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	mut.Lock()
	packageLevels[packageName] = level
	mut.Unlock()
	return nil
}

// Logger is the logging interface used by commchar. It is a subset of zap.SugaredLogger.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
}

type wrapper struct {
	inner *zap.SugaredLogger
	level zap.AtomicLevel
	mut   sync.Mutex
}

// log applies the level of the calling package and then runs fn.
func (wr *wrapper) log(fn func(l *zap.SugaredLogger)) {
	wr.mut.Lock()
	defer wr.mut.Unlock()
	wr.updateLevel()
	fn(wr.inner)
}

func (wr *wrapper) updateLevel() {
	mut.RLock()
	defer mut.RUnlock()

	if len(packageLevels) > 0 {
		// skip updateLevel, log and the Logger method
		if _, file, _, ok := runtime.Caller(3); ok {
			for k, v := range packageLevels {
				if strings.Contains(file, k) {
					wr.level.SetLevel(v)
					return
				}
			}
		}
	}
	wr.level.SetLevel(logLevel)
}

func (wr *wrapper) Debug(args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Debug(args...) })
}

func (wr *wrapper) Debugf(template string, args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Debugf(template, args...) })
}

func (wr *wrapper) Info(args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Info(args...) })
}

func (wr *wrapper) Infof(template string, args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Infof(template, args...) })
}

func (wr *wrapper) Warn(args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Warn(args...) })
}

func (wr *wrapper) Warnf(template string, args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Warnf(template, args...) })
}

func (wr *wrapper) Error(args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Error(args...) })
}

func (wr *wrapper) Errorf(template string, args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Errorf(template, args...) })
}

func (wr *wrapper) Fatalf(template string, args ...interface{}) {
	wr.log(func(l *zap.SugaredLogger) { l.Fatalf(template, args...) })
}

// New returns a new logger for stderr with the given name.
// Set COMMCHAR_LOG_TYPE=json for production style JSON output.
func New(name string) Logger {
	var config zap.Config
	if strings.ToLower(os.Getenv("COMMCHAR_LOG_TYPE")) == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	mut.RLock()
	config.Level.SetLevel(logLevel)
	mut.RUnlock()
	// skip the wrapper frames when reporting the caller
	l, err := config.Build(zap.AddCallerSkip(3))
	if err != nil {
		panic(err)
	}
	return &wrapper{inner: l.Sugar().Named(name), level: config.Level}
}

// NewWithDest returns a new logger for the given destination with the given name.
func NewWithDest(dest io.Writer, name string) Logger {
	mut.RLock()
	atom := zap.NewAtomicLevelAt(logLevel)
	mut.RUnlock()
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(dest), atom)
	l := zap.New(core, zap.AddCallerSkip(3))
	return &wrapper{inner: l.Sugar().Named(name), level: atom}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &wrapper{inner: zap.NewNop().Sugar(), level: zap.NewAtomicLevel()}
}
