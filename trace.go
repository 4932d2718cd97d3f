// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package subs

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

var logLevels = map[string]pterm.LogLevel{
	"disabled": pterm.LogLevelDisabled,
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
}

// NewLogger builds the trace logger described by tc, writing to w (or standard error if w is
// nil). Unknown levels fall back to "info".
func NewLogger(tc TraceConfig, w io.Writer) *pterm.Logger { return newLogger(tc, w) }

func newLogger(tc TraceConfig, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, ok := logLevels[strings.ToLower(tc.Level)]
	if !ok {
		level = pterm.LogLevelInfo
	}
	formatter := pterm.LogFormatterJSON
	switch strings.ToLower(tc.Format) {
	case TraceColorful:
		formatter = pterm.LogFormatterColorful
	case TraceJSON:
	default:
		if isTerminal(w) {
			formatter = pterm.LogFormatterColorful
		}
	}
	if level == pterm.LogLevelDisabled {
		w = io.Discard
	}
	return pterm.DefaultLogger.WithLevel(level).WithWriter(w).WithFormatter(formatter)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// tracer forwards unification events to a logger at the trace level.
type tracer struct {
	logger *pterm.Logger
	id     string
}

func (t *tracer) Enabled() bool {
	return t.logger.Level != pterm.LogLevelDisabled && t.logger.CanPrint(pterm.LogLevelTrace)
}

func (t *tracer) Trace(event string, args ...interface{}) {
	kv := make([]interface{}, 0, len(args)+2)
	kv = append(kv, "subs", t.id)
	kv = append(kv, args...)
	t.logger.Trace(event, t.logger.Args(kv...))
}
