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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type logFunc func(format string, v ...interface{})
type logErrFunc func(err error, format string, v ...interface{})

var levelFuncs = []struct {
	lvl    LogLevel
	prefix string
	log    logFunc
	logErr logErrFunc
}{
	{ERROR, ePrefix, Error, ErrorErr},
	{WARN, wPrefix, Warn, WarnErr},
	{INFO, iPrefix, Info, InfoErr},
	{DEBUG, dPrefix, Debug, DebugErr},
	{TRACE, tPrefix, Trace, TraceErr},
}

// TestLogLevels tests logger functions against each configured log level.
func TestLogLevels(t *testing.T) {
	for _, configured := range []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"} {
		t.Run(configured, func(t *testing.T) {
			validate(configured, t)
		})
	}
}

// TestParseLogLevel tests the conversion of level names.
func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"error":   ERROR,
		"WARN":    WARN,
		" info ":  INFO,
		"Debug":   DEBUG,
		"TRACE":   TRACE,
		"unknown": ERROR,
		"":        ERROR,
	}
	for name, expected := range tests {
		if actual := ParseLogLevel(name); actual != expected {
			t.Errorf("level mismatch for %q: expected %d, got %d", name, expected, actual)
		}
	}
}

// TestNopWriter tests logger functions without writer.
func TestNopWriter(t *testing.T) {
	dir := "_tmp-logger"
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	loggerOut, _ := SetupLogger(&LogConfig{LogFile: "", LogLevel: "TRACE", LogFileSize: 2, LogFileCount: 5}, "[logger-test]")
	defer loggerOut.Close()

	Error("test error")
	f, err := os.Open(dir)
	if err != nil {
		t.Fatalf("cannot open temporary directory: %v", err)
	}
	defer f.Close()

	if _, err = f.Readdirnames(1); err != io.EOF {
		t.Errorf("temporary directory is not empty")
	}
}

func validate(lvl string, t *testing.T) {
	dir := "_tmp-logger"
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	log := filepath.Join(dir, lvl+".log")
	loggerOut, err := SetupLogger(&LogConfig{LogFile: log, LogLevel: lvl, LogFileSize: 2, LogFileCount: 5}, "[logger-test]")
	if err != nil {
		t.Fatal(err)
	}
	defer loggerOut.Close()

	configured := ParseLogLevel(lvl)
	for _, f := range levelFuncs {
		expected := f.lvl <= configured
		name := strings.ToLower(strings.TrimSpace(f.prefix))

		f.log("%s log with parameters [%s,%s]", name, "param1", "param2")
		if expected != search(log, t, f.prefix, name+" log with parameters [param1,param2]") {
			t.Errorf("%s entry mismatch [result: %v]", name, !expected)
		}

		testErr := fmt.Errorf("test%sErr", name)
		f.logErr(testErr, "%sErr log with parameters [%s]", name, "param1")
		if expected != search(log, t, f.prefix, name+"Err log with parameters [param1] "+testErr.Error()) {
			t.Errorf("%sErr entry mismatch [result: %v]", name, !expected)
		}
	}
}

// search strings in log file.
func search(fn string, t *testing.T, entries ...string) bool {
	file, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		t.Fatalf("fail to open log file: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if has(scanner.Text(), entries...) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("fail to read log file: %v", err)
	}
	return false
}

// has checks if string has substrings
func has(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if !strings.Contains(s, substr) {
			return false
		}
	}
	return true
}
