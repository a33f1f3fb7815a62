package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init replaces the process logger. Debug mode uses the development encoder.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set installs l as the process logger (tests pass zaptest or observer loggers).
func Set(l *zap.Logger) {
	mu.Lock()
	log = l
	mu.Unlock()
}

// L returns the process logger. It is a no-op logger until Init is called.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Sync flushes buffered entries.
func Sync() {
	_ = L().Sync()
}
