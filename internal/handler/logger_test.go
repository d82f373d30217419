package handler

import "sync"

// captureLogger keeps error messages so tests can check what a failed
// request logged; everything else is dropped.
type captureLogger struct {
	mu     sync.Mutex
	errors []string
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{}
}

func (l *captureLogger) Info(string, ...interface{})  {}
func (l *captureLogger) Debug(string, ...interface{}) {}
func (l *captureLogger) Warn(string, ...interface{})  {}

func (l *captureLogger) Error(msg string, err error, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		msg += ": " + err.Error()
	}
	l.errors = append(l.errors, msg)
}

func (l *captureLogger) loggedErrors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}
