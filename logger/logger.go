// Copyright (c) 2023 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Eclipse Public License 2.0 which is available at
// https://www.eclipse.org/legal/epl-2.0, or the Apache License, Version 2.0
// which is available at https://www.apache.org/licenses/LICENSE-2.0.
//
// SPDX-License-Identifier: EPL-2.0 OR Apache-2.0

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig contains logging configuration
type LogConfig struct {
	LogFile       string `json:"logFile,omitempty" yaml:"logFile,omitempty"`
	LogLevel      string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	LogFileSize   int    `json:"logFileSize,omitempty" yaml:"logFileSize,omitempty"`
	LogFileCount  int    `json:"logFileCount,omitempty" yaml:"logFileCount,omitempty"`
	LogFileMaxAge int    `json:"logFileMaxAge,omitempty" yaml:"logFileMaxAge,omitempty"`
}

// LogLevel - Error(1), Warn(2), Info(3), Debug(4) or Trace(5)
type LogLevel int

// Constants for log level
const (
	ERROR LogLevel = 1 + iota
	WARN
	INFO
	DEBUG
	TRACE
)

const (
	logFlags int = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lmsgprefix

	ePrefix = "ERROR  "
	wPrefix = "WARN   "
	iPrefix = "INFO   "
	dPrefix = "DEBUG  "
	tPrefix = "TRACE  "

	prefix = " %s "
)

var (
	logger *log.Logger
	level  LogLevel

	levelPrefixes = map[LogLevel]string{
		ERROR: ePrefix,
		WARN:  wPrefix,
		INFO:  iPrefix,
		DEBUG: dPrefix,
		TRACE: tPrefix,
	}
)

// SetupLogger initializes logger with the provided configuration
func SetupLogger(logConfig *LogConfig, componentPrefix string) (io.WriteCloser, error) {
	loggerOut := io.WriteCloser(&nopWriterCloser{out: os.Stderr})
	if len(logConfig.LogFile) > 0 {
		if err := os.MkdirAll(filepath.Dir(logConfig.LogFile), 0755); err != nil {
			return nil, err
		}
		loggerOut = &lumberjack.Logger{
			Filename:   logConfig.LogFile,
			MaxSize:    logConfig.LogFileSize,
			MaxBackups: logConfig.LogFileCount,
			MaxAge:     logConfig.LogFileMaxAge,
			LocalTime:  true,
			Compress:   true,
		}
	}

	log.SetOutput(loggerOut)
	log.SetFlags(logFlags)

	logger = log.New(loggerOut, fmt.Sprintf(prefix, componentPrefix), logFlags)
	level = ParseLogLevel(logConfig.LogLevel)

	return loggerOut, nil
}

// ParseLogLevel converts the given level name to LogLevel. Unknown names are treated as ERROR.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "WARN":
		return WARN
	case "INFO":
		return INFO
	case "DEBUG":
		return DEBUG
	case "TRACE":
		return TRACE
	default:
		return ERROR
	}
}

// Error logs the given formatted message and value, if level is >= ERROR
func Error(format string, v ...interface{}) {
	logf(ERROR, format, v...)
}

// ErrorErr logs the given value, formatted message and error, if level is >= ERROR
func ErrorErr(err error, format string, v ...interface{}) {
	logErr(ERROR, err, format, v...)
}

// Warn logs the given formatted message and value, if level is >= WARN
func Warn(format string, v ...interface{}) {
	logf(WARN, format, v...)
}

// WarnErr logs the given value, formatted message and error, if level is >= WARN
func WarnErr(err error, format string, v ...interface{}) {
	logErr(WARN, err, format, v...)
}

// Info logs the given formatted message and value, if level is >= INFO
func Info(format string, v ...interface{}) {
	logf(INFO, format, v...)
}

// InfoErr logs the given value, formatted message and error, if level is >= INFO
func InfoErr(err error, format string, v ...interface{}) {
	logErr(INFO, err, format, v...)
}

// Debug logs the given formatted message and value, if level is >= DEBUG
func Debug(format string, v ...interface{}) {
	logf(DEBUG, format, v...)
}

// DebugErr logs the given value, formatted message and error, if level is >= DEBUG
func DebugErr(err error, format string, v ...interface{}) {
	logErr(DEBUG, err, format, v...)
}

// Trace logs the given formatted message and value, if level is >= TRACE
func Trace(format string, v ...interface{}) {
	logf(TRACE, format, v...)
}

// TraceErr logs the given value, formatted message and error, if level is >= TRACE
func TraceErr(err error, format string, v ...interface{}) {
	logErr(TRACE, err, format, v...)
}

// IsDebugEnabled returns true if log level is above DEBUG
func IsDebugEnabled() bool {
	return level >= DEBUG
}

// IsTraceEnabled returns true if log level is above TRACE
func IsTraceEnabled() bool {
	return level >= TRACE
}

func logf(lvl LogLevel, format string, v ...interface{}) {
	if level < lvl || logger == nil {
		return
	}
	logger.Printf(fmt.Sprint(levelPrefixes[lvl], " ", format), v...)
}

func logErr(lvl LogLevel, err error, format string, v ...interface{}) {
	if level < lvl || logger == nil {
		return
	}
	logger.Println(fmt.Sprintf(fmt.Sprint(levelPrefixes[lvl], " ", format), v...), err)
}

type nopWriterCloser struct {
	out io.Writer
}

// Write to log output
func (w *nopWriterCloser) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Close does nothing
func (*nopWriterCloser) Close() error {
	return nil
}
