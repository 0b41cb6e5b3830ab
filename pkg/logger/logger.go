package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger файловый логгер с уровнями
// Пишет одновременно в файл и в stdout
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает новый логгер
// Если path пустой, логи пишутся только в stdout
func New(path string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	var file *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file: %w", err)
		}
		writers = append(writers, file)
	}

	return &Logger{
		level: lvl,
		out:   log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		file:  file,
	}, nil
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение уровня ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) logf(lvl Level, tag string, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

func parseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown log level %q", s)
	}
}
