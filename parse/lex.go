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
	"unicode"

	"github.com/sirupsen/logrus"
)

// Cursor scans an expression and evaluates it in the same pass. The current
// token is the only state shared between the grammar methods.
type Cursor struct {
	src   []rune
	idx   int
	tok   TokenType
	num   int64
	debug bool
	log   *logrus.Entry
}

// Option configures a Cursor.
type Option func(*Cursor)

// WithDebug enables the debug trace: one line per token produced and one per
// grammar rule entered.
func WithDebug(debug bool) Option {
	return func(c *Cursor) {
		c.debug = debug
	}
}

// WithLogger sets the entry debug lines are written to.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Cursor) {
		c.log = log
	}
}

// NewCursor creates a Cursor over src. No token is scanned until NextToken
// is called.
func NewCursor(src string, opts ...Option) *Cursor {
	c := &Cursor{
		src: []rune(src),
		tok: UnsetToken,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logrus.NewEntry(logrus.StandardLogger())
	}

	return c
}

// Token returns the current token.
func (c *Cursor) Token() TokenType {
	return c.tok
}

// Number returns the value of the current token. It is only meaningful when
// Token is NumberToken.
func (c *Cursor) Number() int64 {
	return c.num
}

// Pos returns the index of the next rune to be scanned.
func (c *Cursor) Pos() int {
	return c.idx
}

// State is a snapshot of a Cursor, used for diagnostics.
type State struct {
	Index     int
	Token     TokenType
	Number    int64
	Remaining string
}

// State returns a snapshot of the cursor.
func (c *Cursor) State() State {
	return State{
		Index:     c.idx,
		Token:     c.tok,
		Number:    c.num,
		Remaining: string(c.src[c.idx:]),
	}
}

func (c *Cursor) debugf(format string, args ...interface{}) {
	if c.debug {
		c.log.Debugf(format, args...)
	}
}

// NextToken skips any whitespace and classifies the rune at the new
// position, advancing past the consumed lexeme.
func (c *Cursor) NextToken() error {
	for c.idx < len(c.src) && unicode.IsSpace(c.src[c.idx]) {
		c.idx++
	}

	if c.idx >= len(c.src) {
		c.tok = EndToken
		c.debugf("token: %s", c.tok)
		return nil
	}

	r := c.src[c.idx]
	if tok, ok := singleRuneTokens[r]; ok {
		c.tok = tok
		c.idx++
		c.debugf("token: %s", c.tok)
		return nil
	}

	if !isDigit(r) {
		return ErrUnknownToken.New(r)
	}

	c.scanNumber()
	c.debugf("token: %s %d", c.tok, c.num)
	return nil
}

// scanNumber consumes a maximal run of digits. Overflow wraps.
func (c *Cursor) scanNumber() {
	var n int64
	for c.idx < len(c.src) && isDigit(c.src[c.idx]) {
		n = n*10 + int64(c.src[c.idx]-'0')
		c.idx++
	}

	c.tok = NumberToken
	c.num = n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
