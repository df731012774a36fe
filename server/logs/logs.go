/******************************************************************************
 *
 *  Description :
 *    Package exposes info, warning and error loggers.
 *
 *    Loggers are standard *log.Logger instances so that they can be handed to
 *    net/http and other libraries. After Init they are backed by zap, optionally
 *    writing to a file rotated by lumberjack.
 *
 *****************************************************************************/
package logs

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSize = 300 // megabytes

var (
	// Info is a logger at the 'info' logging level.
	Info *log.Logger
	// Warn is a logger at the 'warning' logging level.
	Warn *log.Logger
	// Err is a logger at the 'error' logging level.
	Err *log.Logger
)

var current *zap.Logger

// FileConfig configures logging to a rotated file.
type FileConfig struct {
	// Path to the log file. Empty means logging to stderr.
	Path string `json:"path"`
	// Maximum size of a single file in megabytes before it's rotated.
	MaxSize int `json:"max_size"`
	// Number of days to keep rotated files. 0 means forever.
	MaxDays int `json:"max_days"`
	// Number of rotated files to keep. 0 means all.
	MaxBackups int `json:"max_backups"`
}

// Config is the 'logging' section of the config file.
type Config struct {
	// Minimum level to log: debug, info, warn, error.
	Level string `json:"level"`
	// Output format: json or console.
	Format string `json:"format"`
	// Optional file output.
	File FileConfig `json:"file"`
}

// Init replaces the default loggers with zap-backed ones.
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return errors.New("logs: unknown format '" + cfg.Format + "'")
	}

	var out io.Writer = os.Stderr
	if cfg.File.Path != "" {
		if st, err := os.Stat(cfg.File.Path); err == nil && st.IsDir() {
			return errors.New("logs: can't use directory as log file name")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0o755); err != nil {
			return err
		}
		maxSize := cfg.File.MaxSize
		if maxSize <= 0 {
			maxSize = defaultMaxSize
		}
		out = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    maxSize,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxDays,
			LocalTime:  true,
		}
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	logger := zap.New(core, zap.AddCaller())
	setLoggers(logger)
	return nil
}

func setLoggers(logger *zap.Logger) {
	current = logger
	// Errors are reported for invalid levels only.
	Info, _ = zap.NewStdLogAt(logger, zap.InfoLevel)
	Warn, _ = zap.NewStdLogAt(logger, zap.WarnLevel)
	Err, _ = zap.NewStdLogAt(logger, zap.ErrorLevel)
}

// Sync flushes buffered log entries.
func Sync() {
	if current != nil {
		current.Sync()
	}
}

func init() {
	Info = log.New(os.Stderr, "I", log.LstdFlags|log.Lshortfile)
	Warn = log.New(os.Stderr, "W", log.LstdFlags|log.Lshortfile)
	Err = log.New(os.Stderr, "E", log.LstdFlags|log.Lshortfile)
}
