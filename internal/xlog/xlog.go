// Copyright 2020 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

// Package xlog wraps zap's SugaredLogger with the key-value call signature
// used throughout the rest of this codebase, so call sites read the way
// go-core's own log package does: Warn("message", "key", value, ...).
package xlog

import "go.uber.org/zap"

var global = mustBuild()

func mustBuild() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// SetLogger replaces the package-level logger, e.g. with a development or
// test-scoped configuration.
func SetLogger(l *zap.SugaredLogger) {
	global = l
}

// Trace logs at debug level; the core has no separate trace verbosity.
func Trace(msg string, kv ...interface{}) { global.Debugw(msg, kv...) }

// Info logs an informational message with structured key-value pairs.
func Info(msg string, kv ...interface{}) { global.Infow(msg, kv...) }

// Warn logs a warning with structured key-value pairs.
func Warn(msg string, kv ...interface{}) { global.Warnw(msg, kv...) }

// Error logs an error with structured key-value pairs.
func Error(msg string, kv ...interface{}) { global.Errorw(msg, kv...) }
