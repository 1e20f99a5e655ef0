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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnknownToken is returned when a character does not begin any token.
	ErrUnknownToken = errors.NewKind("unknown token: `%c`")

	// ErrUnaryOperand is returned when a unary minus is followed by something
	// other than a number or a parenthesized expression.
	ErrUnaryOperand = errors.NewKind("unary minus must be followed by a number or parenthesized expression")

	// ErrMissingParen is returned when an open parenthesis is never closed.
	ErrMissingParen = errors.NewKind("missing closing parenthesis")

	// ErrIllegalPrimary is returned when a primary expression position holds a
	// token that cannot start one.
	ErrIllegalPrimary = errors.NewKind("illegal start of primary expression (expected number, '-', or '(')")

	// ErrDivisionByZero is returned when the right operand of a division is 0.
	ErrDivisionByZero = errors.NewKind("division by zero")

	// ErrTrailingInput is returned when tokens remain after a full expression.
	ErrTrailingInput = errors.NewKind("trailing characters after expression")
)
