// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the printf-style log helpers used across the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	logger   = newLogger(os.Stderr)
	exitFunc = os.Exit
	errorTag = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      isTerminal(out),
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
	color.NoColor = !isTerminal(w)
}

// SetVerbose enables debug output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// Debug logs at debug level.
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info logs at info level.
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs at warning level.
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs at error level.
func Error(format string, args ...interface{}) {
	logger.Errorf("%s %s", errorTag("Error:"), fmt.Sprintf(format, args...))
}

// Fatal logs the message and exits with status 1.
func Fatal(format string, args ...interface{}) {
	Error(format, args...)
	exitFunc(1)
}
