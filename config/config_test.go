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
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConfigFile(t *testing.T) {
	require := require.New(t)
	file := filepath.Join(t.TempDir(), "calc.yml")

	cfg1 := &Config{
		Debug:       true,
		LogLevel:    "info",
		Prompt:      "> ",
		Output:      JSONOutput,
		HistoryPath: "/tmp/calc.db",
	}

	require.NoError(WriteFile(file, cfg1))

	cfg2, err := ReadFile(file)
	require.NoError(err)
	require.Equal(cfg1, cfg2)
}

func TestReadFileDefaults(t *testing.T) {
	require := require.New(t)
	file := filepath.Join(t.TempDir(), "calc.yml")

	require.NoError(WriteFile(file, &Config{Debug: true}))

	cfg, err := ReadFile(file)
	require.NoError(err)
	require.True(cfg.Debug)
	require.Equal("", cfg.Prompt)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(err)
}

func TestApplyEnv(t *testing.T) {
	require := require.New(t)
	env := map[string]string{
		DebugEnvKey:   "true",
		PromptEnvKey:  "calc> ",
		OutputEnvKey:  " JSON ",
		HistoryEnvKey: "history.db",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(cfg.ApplyEnv(lookup))
	require.Equal(&Config{
		Debug:       true,
		LogLevel:    "warning",
		Prompt:      "calc> ",
		Output:      JSONOutput,
		HistoryPath: "history.db",
	}, cfg)

	env[DebugEnvKey] = "maybe"
	err := Default().ApplyEnv(lookup)
	require.Error(err)
	require.True(ErrInvalidValue.Is(err))
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	require.NoError(Default().Validate())

	cfg := Default()
	cfg.Output = "xml"
	err := cfg.Validate()
	require.Error(err)
	require.True(ErrInvalidOutput.Is(err))

	cfg = Default()
	cfg.LogLevel = "loud"
	err = cfg.Validate()
	require.Error(err)
	require.True(ErrInvalidValue.Is(err))
}

func TestLevel(t *testing.T) {
	cases := []struct {
		debug    bool
		level    string
		expected logrus.Level
	}{
		{false, "", logrus.WarnLevel},
		{false, "error", logrus.ErrorLevel},
		{true, "error", logrus.DebugLevel},
		{true, "trace", logrus.TraceLevel},
	}

	for _, tt := range cases {
		cfg := &Config{Debug: tt.debug, LogLevel: tt.level}
		lvl, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, tt.expected, lvl)
	}
}
