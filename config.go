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
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/subs/internal/typeutil"
)

// RecursionPolicy controls whether unification may introduce recursive types.
type RecursionPolicy uint8

const (
	// RejectCycles reports every cycle found by the occurs check as an infinite type.
	RejectCycles RecursionPolicy = iota
	// AllowRecursion turns a cycle into a recursive type when every path around the cycle passes
	// through a tag union. Other cycles are still reported as infinite types.
	AllowRecursion
)

func (p RecursionPolicy) String() string {
	switch p {
	case RejectCycles:
		return "reject"
	case AllowRecursion:
		return "allow"
	}
	return fmt.Sprintf("RecursionPolicy(%d)", uint8(p))
}

func (p RecursionPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *RecursionPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "reject", "reject-cycles":
		*p = RejectCycles
	case "allow", "allow-recursion":
		*p = AllowRecursion
	default:
		return fmt.Errorf("subs: unknown recursion policy %q", text)
	}
	return nil
}

func (p *RecursionPolicy) UnmarshalYAML(value *yaml.Node) error {
	return p.UnmarshalText([]byte(value.Value))
}

// Trace output formats.
const (
	TraceAuto     = "auto"
	TraceJSON     = "json"
	TraceColorful = "colorful"
)

const defaultLogLevel = "info"

// TraceConfig configures the trace logger of a store.
type TraceConfig struct {
	// Level is one of "trace", "debug", "info", "warn", "error", or "disabled". Unification
	// steps are logged at the trace level.
	Level string `yaml:"level"`
	// Format is one of "auto", "json", or "colorful". With "auto", JSON is written unless the
	// writer is a terminal.
	Format string `yaml:"format"`
}

// Config configures a store.
type Config struct {
	// InitialCapacity is the number of type-variables to allocate space for up front.
	InitialCapacity int `yaml:"initial_capacity"`
	// MaxVars limits the number of type-variables a store may issue.
	MaxVars int `yaml:"max_vars"`

	Recursion RecursionPolicy `yaml:"recursion"`
	Trace     TraceConfig     `yaml:"trace"`

	// Concurrency limits the number of modules checked in parallel by CheckModules. Zero
	// means no limit.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns the configuration used for zero fields of a Config.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 1024,
		MaxVars:         typeutil.MaxVars,
		Recursion:       RejectCycles,
		Trace:           TraceConfig{Level: defaultLogLevel, Format: TraceAuto},
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = def.InitialCapacity
	}
	if cfg.MaxVars <= 0 || cfg.MaxVars > typeutil.MaxVars {
		cfg.MaxVars = def.MaxVars
	}
	if cfg.InitialCapacity > cfg.MaxVars {
		cfg.InitialCapacity = cfg.MaxVars
	}
	if cfg.Trace.Level == "" {
		cfg.Trace.Level = def.Trace.Level
	}
	if cfg.Trace.Format == "" {
		cfg.Trace.Format = def.Trace.Format
	}
	return cfg
}

// Validate reports invalid settings. Zero settings are valid and take their defaults.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.InitialCapacity < 0 {
		errs = append(errs, fmt.Errorf("initial_capacity must not be negative (got %d)", cfg.InitialCapacity))
	}
	if cfg.MaxVars < 0 || cfg.MaxVars > typeutil.MaxVars {
		errs = append(errs, fmt.Errorf("max_vars must be between 0 and %d (got %d)", typeutil.MaxVars, cfg.MaxVars))
	}
	if cfg.MaxVars > 0 && cfg.InitialCapacity > cfg.MaxVars {
		errs = append(errs, fmt.Errorf("initial_capacity (%d) exceeds max_vars (%d)", cfg.InitialCapacity, cfg.MaxVars))
	}
	if cfg.Recursion != RejectCycles && cfg.Recursion != AllowRecursion {
		errs = append(errs, fmt.Errorf("unknown recursion policy %v", cfg.Recursion))
	}
	if cfg.Trace.Level != "" {
		if _, ok := logLevels[strings.ToLower(cfg.Trace.Level)]; !ok {
			errs = append(errs, fmt.Errorf("unknown trace level %q", cfg.Trace.Level))
		}
	}
	switch strings.ToLower(cfg.Trace.Format) {
	case "", TraceAuto, TraceJSON, TraceColorful:
	default:
		errs = append(errs, fmt.Errorf("unknown trace format %q", cfg.Trace.Format))
	}
	if cfg.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative (got %d)", cfg.Concurrency))
	}
	if len(errs) != 0 {
		return fmt.Errorf("subs: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LoadConfig decodes a YAML configuration from r. Settings missing from the document take
// their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("subs: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
