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

// Precedence levels of the binary operators. Both levels are left associative.
const (
	additive uint = iota + 1
	multiplicative
)

type operator struct {
	precedence uint
	apply      func(left, right int64) (int64, error)
}

func newOperator(precedence uint, apply func(left, right int64) (int64, error)) *operator {
	return &operator{precedence, apply}
}

var opTable = map[TokenType]*operator{
	AddToken: newOperator(additive, func(l, r int64) (int64, error) {
		return l + r, nil
	}),
	SubToken: newOperator(additive, func(l, r int64) (int64, error) {
		return l - r, nil
	}),
	MulToken: newOperator(multiplicative, func(l, r int64) (int64, error) {
		return l * r, nil
	}),
	DivToken: newOperator(multiplicative, divide),
}

// divide truncates toward zero. The zero check happens before dividing.
func divide(l, r int64) (int64, error) {
	if r == 0 {
		return 0, ErrDivisionByZero.New()
	}
	return l / r, nil
}

// binaryOp returns the operator for the given token if it belongs to the
// given precedence level.
func binaryOp(tok TokenType, precedence uint) (*operator, bool) {
	op, ok := opTable[tok]
	if !ok || op.precedence != precedence {
		return nil, false
	}
	return op, true
}
