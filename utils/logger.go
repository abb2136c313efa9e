package utils

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled log lines; the game logs to stderr so frames on stdout stay intact
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing every level to w
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "[GOL-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "[GOL-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "[GOL-ERROR] ", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Fatalf logs at error level and exits with status 1
func (l *Logger) Fatalf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
	os.Exit(1)
}
