package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var (
	logFile     *os.File
	logMu       sync.Mutex
	fileLogging bool
)

// Init enables append-to-file logging in dir. Console output works
// without Init; file logging is opt-in (SFTPJAIL_LOG_DIR).
func Init(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "sftpjail.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	logFile = f
	fileLogging = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	fileLogging = false
}

func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

func Warn(format string, args ...interface{}) {
	log(LevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

func log(lvl Level, format string, args ...interface{}) {
	now := time.Now().Format("2006/01/02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	var label, colorStart string
	switch lvl {
	case LevelInfo:
		colorStart = "\033[32m" // Green
		label = "[INFO] "
	case LevelWarn:
		colorStart = "\033[33m" // Yellow
		label = "[WARN] "
	case LevelError:
		colorStart = "\033[31m" // Red
		label = "[EROR] "       // 4 chars align
	}
	const colorEnd = "\033[0m"

	// File output (no color).
	if fileLogging {
		logMu.Lock()
		if logFile != nil {
			fmt.Fprintf(logFile, "%s %s%s\n", now, label, msg)
		}
		logMu.Unlock()
	}

	// Stderr (color); stdout is reserved for prompts and reports.
	fmt.Fprintf(os.Stderr, "%s %s%s%s%s\n", now, colorStart, label, colorEnd, msg)
}
