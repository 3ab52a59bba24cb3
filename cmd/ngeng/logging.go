package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "ngeng.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging points logger at logs/ngeng.log in debug mode and discards otherwise
// The terminal belongs to the dashboard, so logs never go to stdout or stderr
// Returns the open log file for the caller to close, nil when logging is off
func setupLogging(logger *logrus.Logger, debug bool) *os.File {
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.InfoLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return f
}

// rotateLog renames an oversized log with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	_ = os.Rename(logPath, rotated)
}
