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

package parse

import (
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"
)

func TestEval(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"42", 42},
		{"007", 7},
		{"1+2", 3},
		{"  1 +  2 ", 3},
		{"1-2-3", -4},
		{"8/4/2", 1},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"-5+3", -2},
		{"-(2+3)", -5},
		{"-(-(4))", 4},
		{"2*-3", -6},
		{"7/2", 3},
		{"-7/2", -3},
		{"7/-2", -3},
		{"((((1))))", 1},
		{"10-4*2+6/3", 4},
		{"100 / (3 + 2) * -(1 - 3)", 40},
		{"1\t+\n2", 3},
		{"1 +　2", 3},
		{"9223372036854775807 + 1", math.MinInt64},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			require := require.New(t)
			v, err := Eval(tt.input)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  *errors.Kind
		msg   string
	}{
		{"5/0", ErrDivisionByZero, "division by zero"},
		{"1/(2-2)", ErrDivisionByZero, "division by zero"},
		{"2+", ErrIllegalPrimary, "illegal start of primary expression (expected number, '-', or '(')"},
		{"", ErrIllegalPrimary, "illegal start of primary expression (expected number, '-', or '(')"},
		{")", ErrIllegalPrimary, "illegal start of primary expression (expected number, '-', or '(')"},
		{"*3", ErrIllegalPrimary, "illegal start of primary expression (expected number, '-', or '(')"},
		{"(1+2", ErrMissingParen, "missing closing parenthesis"},
		{"((1)", ErrMissingParen, "missing closing parenthesis"},
		{"1 2", ErrTrailingInput, "trailing characters after expression"},
		{"(1))", ErrTrailingInput, "trailing characters after expression"},
		{"-", ErrUnaryOperand, "unary minus must be followed by a number or parenthesized expression"},
		{"--5", ErrUnaryOperand, "unary minus must be followed by a number or parenthesized expression"},
		{"3 + a", ErrUnknownToken, "unknown token: `a`"},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			require := require.New(t)
			_, err := Eval(tt.input)
			require.Error(err)
			require.True(tt.kind.Is(err), "unexpected error: %s", err)
			require.Equal(tt.msg, err.Error())
		})
	}
}

func TestEvalWhitespaceInsensitive(t *testing.T) {
	exprs := []string{
		"1+2*3",
		"(4-1)*-(2+2)/3",
		"-7/2-8/4/2",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			require := require.New(t)
			expected, err := Eval(expr)
			require.NoError(err)

			var spaced strings.Builder
			for _, r := range expr {
				spaced.WriteString(" \t")
				spaced.WriteRune(r)
			}
			spaced.WriteString("  ")

			v, err := Eval(spaced.String())
			require.NoError(err)
			require.Equal(expected, v)
		})
	}
}

// Each grammar method must leave the current token one past what it consumed.
func TestLookahead(t *testing.T) {
	require := require.New(t)

	c := NewCursor("(1+2) 3")
	require.NoError(c.NextToken())
	v, err := c.Expr()
	require.NoError(err)
	require.Equal(int64(3), v)
	require.Equal(NumberToken, c.Token())
	require.Equal(int64(3), c.Number())

	c = NewCursor("2*3+4")
	require.NoError(c.NextToken())
	v, err = c.mulDivExpr()
	require.NoError(err)
	require.Equal(int64(6), v)
	require.Equal(AddToken, c.Token())

	c = NewCursor("-4*2")
	require.NoError(c.NextToken())
	v, err = c.primaryExpr()
	require.NoError(err)
	require.Equal(int64(-4), v)
	require.Equal(MulToken, c.Token())
}

func TestEvalDebugTrace(t *testing.T) {
	require := require.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	v, err := Eval("-1", WithDebug(true), WithLogger(logrus.NewEntry(logger)))
	require.NoError(err)
	require.Equal(int64(-1), v)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}

	require.Equal([]string{
		"token: SUB",
		"eval: Expr",
		"eval: AddSubExpr",
		"eval: MulDivExpr",
		"eval: PrimaryExpr",
		"token: NUMBER 1",
		"token: END",
	}, msgs)
}

func TestEvalNoTraceWithoutDebug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := Eval("1+2", WithLogger(logrus.NewEntry(logger)))
	require.NoError(t, err)
	require.Empty(t, hook.AllEntries())
}
