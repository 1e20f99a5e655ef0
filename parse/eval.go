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

// Eval evaluates src and returns its integer value.
func Eval(src string, opts ...Option) (int64, error) {
	return Evaluate(NewCursor(src, opts...))
}

// Evaluate primes the first token of c, evaluates a full expression and
// requires that nothing follows it.
func Evaluate(c *Cursor) (int64, error) {
	if err := c.NextToken(); err != nil {
		return 0, err
	}

	v, err := c.Expr()
	if err != nil {
		return 0, err
	}

	if c.tok != EndToken {
		return 0, ErrTrailingInput.New()
	}

	return v, nil
}

// Expr ::= AddSubExpr
//
// The current token must sit on the first token of the expression. On return
// it sits just past the last token consumed.
func (c *Cursor) Expr() (int64, error) {
	c.debugf("eval: Expr")
	return c.addSubExpr()
}

// AddSubExpr ::= MulDivExpr { ('+'|'-') MulDivExpr }
func (c *Cursor) addSubExpr() (int64, error) {
	c.debugf("eval: AddSubExpr")
	return c.fold(additive, c.mulDivExpr)
}

// MulDivExpr ::= PrimaryExpr { ('*'|'/') PrimaryExpr }
func (c *Cursor) mulDivExpr() (int64, error) {
	c.debugf("eval: MulDivExpr")
	return c.fold(multiplicative, c.primaryExpr)
}

// fold evaluates operand, then keeps applying operators of the given
// precedence left to right for as long as the current token is one.
func (c *Cursor) fold(precedence uint, operand func() (int64, error)) (int64, error) {
	result, err := operand()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := binaryOp(c.tok, precedence)
		if !ok {
			return result, nil
		}

		if err := c.NextToken(); err != nil {
			return 0, err
		}

		rhs, err := operand()
		if err != nil {
			return 0, err
		}

		result, err = op.apply(result, rhs)
		if err != nil {
			return 0, err
		}
	}
}

// PrimaryExpr ::= NUMBER | '-' PrimaryExpr | '(' Expr ')'
func (c *Cursor) primaryExpr() (int64, error) {
	c.debugf("eval: PrimaryExpr")

	switch c.tok {
	case NumberToken:
		v := c.num
		if err := c.NextToken(); err != nil {
			return 0, err
		}
		return v, nil

	case SubToken:
		if err := c.NextToken(); err != nil {
			return 0, err
		}

		switch c.tok {
		case NumberToken:
			v := -c.num
			if err := c.NextToken(); err != nil {
				return 0, err
			}
			return v, nil
		case LeftParenToken:
			v, err := c.primaryExpr()
			if err != nil {
				return 0, err
			}
			return -v, nil
		default:
			return 0, ErrUnaryOperand.New()
		}

	case LeftParenToken:
		if err := c.NextToken(); err != nil {
			return 0, err
		}

		v, err := c.Expr()
		if err != nil {
			return 0, err
		}

		if c.tok != RightParenToken {
			return 0, ErrMissingParen.New()
		}

		if err := c.NextToken(); err != nil {
			return 0, err
		}
		return v, nil
	}

	return 0, ErrIllegalPrimary.New()
}
