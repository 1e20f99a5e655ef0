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

package calc

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// EvalIDLogField is the field holding the id of an evaluation.
	EvalIDLogField = "evalID"
	// ExpressionLogField is the field holding the evaluated expression.
	ExpressionLogField = "expression"
)

// TraceFormatter writes entries as "[level] message", leaving out the
// timestamp and fields, so evaluator traces read like plain output lines.
type TraceFormatter struct{}

// Format implements the logrus.Formatter interface.
func (TraceFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", e.Level, e.Message)), nil
}

// NewLogger returns a logger writing to out at the given level.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out:       out,
		Formatter: TraceFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}
}
