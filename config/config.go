// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"
)

const (
	// TextOutput prints the result as a plain line.
	TextOutput = "text"
	// JSONOutput prints the result as a JSON object.
	JSONOutput = "json"

	// DefaultPrompt is printed before the expression is read.
	DefaultPrompt = "expression: "
)

// Environment variables that override values read from the config file.
const (
	DebugEnvKey    = "CALC_DEBUG"
	LogLevelEnvKey = "CALC_LOG_LEVEL"
	PromptEnvKey   = "CALC_PROMPT"
	OutputEnvKey   = "CALC_OUTPUT"
	HistoryEnvKey  = "CALC_HISTORY"
)

var (
	// ErrInvalidOutput is returned when the output format is not known.
	ErrInvalidOutput = errors.NewKind("invalid output format %q, expected %q or %q")

	// ErrInvalidValue is returned when an environment variable cannot be
	// converted to the type of the setting it overrides.
	ErrInvalidValue = errors.NewKind("invalid value for %s: %s")
)

// Config holds the settings of the calculator command.
type Config struct {
	// Debug enables the evaluator trace.
	Debug bool `yaml:"debug"`
	// LogLevel is the logrus level used when Debug is off.
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
	Output   string `yaml:"output"`
	// HistoryPath is the bolt file evaluations are recorded to. Empty
	// disables the history.
	HistoryPath string `yaml:"history_path,omitempty"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		LogLevel: logrus.WarnLevel.String(),
		Prompt:   DefaultPrompt,
		Output:   TextOutput,
	}
}

// ReadFile reads a yaml config file. Keys missing from the file keep their
// default value.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WriteFile writes cfg to path as yaml.
func WriteFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0640)
}

// ApplyEnv overrides the settings that have an environment variable set.
// A nil lookup uses os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(DebugEnvKey); ok {
		debug, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return ErrInvalidValue.New(DebugEnvKey, err)
		}
		c.Debug = debug
	}

	if v, ok := lookup(LogLevelEnvKey); ok {
		c.LogLevel = v
	}

	if v, ok := lookup(PromptEnvKey); ok {
		c.Prompt = v
	}

	if v, ok := lookup(OutputEnvKey); ok {
		c.Output = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(HistoryEnvKey); ok {
		c.HistoryPath = v
	}

	return nil
}

// Validate checks the output format and the log level.
func (c *Config) Validate() error {
	switch c.Output {
	case TextOutput, JSONOutput:
	default:
		return ErrInvalidOutput.New(c.Output, TextOutput, JSONOutput)
	}

	if _, err := c.Level(); err != nil {
		return ErrInvalidValue.New("log_level", err)
	}

	return nil
}

// Level returns the logrus level to use. Debug raises it to at least
// logrus.DebugLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl := logrus.WarnLevel
	if c.LogLevel != "" {
		var err error
		lvl, err = logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return 0, err
		}
	}

	if c.Debug && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}

	return lvl, nil
}
