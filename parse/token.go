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

// TokenType is the classification of a lexeme read by the Cursor.
type TokenType uint

const (
	// UnsetToken is the token of a Cursor that has not scanned anything yet.
	UnsetToken TokenType = iota
	NumberToken
	AddToken
	SubToken
	MulToken
	DivToken
	LeftParenToken
	RightParenToken
	EndToken
)

var tokenNames = [...]string{
	UnsetToken:      "UNSET",
	NumberToken:     "NUMBER",
	AddToken:        "ADD",
	SubToken:        "SUB",
	MulToken:        "MUL",
	DivToken:        "DIV",
	LeftParenToken:  "LEFTPAREN",
	RightParenToken: "RIGHTPAREN",
	EndToken:        "END",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "UNKNOWN"
}

// singleRuneTokens maps the one-rune lexemes to their token.
var singleRuneTokens = map[rune]TokenType{
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'(': LeftParenToken,
	')': RightParenToken,
}
