// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a small leveled-logger façade: an injectable Logger
// interface, a level filter that wraps one, and a Helper that adds
// printf-style convenience methods.
package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level is a logging severity, ordered from most to least verbose.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink every diagnostic message is routed through.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes to an io.Writer, one line per call, guarded by a mutex
// since ParseSymbols may be invoked concurrently on disjoint inputs.
type stdLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdLogger returns a Logger that writes timestamped lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprint(keyvals...)
	_, err := fmt.Fprintf(l.w, "%s %s %s\n", time.Now().Format(time.RFC3339), level, msg)
	return err
}

// filter wraps a Logger and drops any message below its configured level.
type filter struct {
	next  Logger
	level Level
}

// FilterOption configures a filter built by NewFilter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a message must meet to pass through.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) { f.level = level }
}

// NewFilter wraps next with a minimum-level gate. Messages below the
// configured level (LevelError by default) are dropped without reaching
// next.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, level: LevelError}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger. A nil logger is valid and makes every call a
// no-op, so callers can embed a *Helper in a zero-valued struct.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(level, fmt.Sprintf(format, args...))
}

func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }
func (h *Helper) Infof(format string, args ...interface{})  { h.log(LevelInfo, format, args...) }
func (h *Helper) Warnf(format string, args ...interface{})  { h.log(LevelWarn, format, args...) }
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }
