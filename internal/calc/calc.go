// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package calc is an integer arithmetic grammar built from parsec
// combinators. It is small, but recursive enough to drive the engine through
// a [parsec.Rule] and through commits after unambiguous prefixes.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/bufbuild/parsec"
	"github.com/bufbuild/parsec/source"
)

// ErrDivideByZero is returned by [Expr.Eval] when dividing by zero.
var ErrDivideByZero = errors.New("division by zero")

// Expr is a node in an arithmetic expression tree.
type Expr interface {
	// String renders the expression fully parenthesized.
	String() string
	// Eval computes the value of the expression.
	Eval() (int, error)
}

// Number is an integer literal.
type Number int

// Negate is unary minus.
type Negate struct {
	X Expr
}

// Binary is a binary operation; Op is one of + - * /.
type Binary struct {
	Op   rune
	X, Y Expr
}

func (n Number) String() string     { return strconv.Itoa(int(n)) }
func (n Number) Eval() (int, error) { return int(n), nil }

func (n Negate) String() string { return fmt.Sprintf("(-%v)", n.X) }

func (n Negate) Eval() (int, error) {
	x, err := n.X.Eval()
	return -x, err
}

func (b Binary) String() string { return fmt.Sprintf("(%v %c %v)", b.X, b.Op, b.Y) }

func (b Binary) Eval() (int, error) {
	x, err := b.X.Eval()
	if err != nil {
		return 0, err
	}
	y, err := b.Y.Eval()
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case '+':
		return x + y, nil
	case '-':
		return x - y, nil
	case '*':
		return x * y, nil
	case '/':
		if y == 0 {
			return 0, ErrDivideByZero
		}
		return x / y, nil
	default:
		return 0, fmt.Errorf("calc: unknown operator %q", b.Op)
	}
}

// Parse parses file as a single arithmetic expression. Leading and trailing
// whitespace is allowed; anything else after the expression is an error.
//
// Errors are [*parsec.ParseError]s.
func Parse(file *source.File) (Expr, error) {
	return parsec.Parse(program, file)
}

// Eval parses and evaluates file.
func Eval(file *source.File) (int, error) {
	expr, err := Parse(file)
	if err != nil {
		return 0, err
	}
	return expr.Eval()
}

var program = grammar()

// grammar builds the parser for
//
//	program := spaces expr END
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | atom
//	atom    := number | '(' expr ')'
//
// Every token swallows the whitespace that follows it.
func grammar() parsec.Parser[Expr] {
	spaces := parsec.ZeroOrMore(parsec.Satisfy(unicode.IsSpace))
	token := func(r rune) parsec.Parser[rune] {
		return parsec.Then(parsec.Rune(r), spaces, first)
	}

	digits := parsec.Map(
		parsec.OneOrMore(parsec.Satisfy(func(r rune) bool { return '0' <= r && r <= '9' })),
		func(digits []rune) string { return string(digits) },
	)
	number := parsec.Map(
		parsec.Then(parsec.Where(digits, fitsInt), spaces, first),
		func(digits string) Expr {
			n, _ := strconv.Atoi(digits)
			return Number(n)
		},
	)

	var expr, unary parsec.Rule[Expr]

	// Once we've seen a '(', the only thing it can be is a group.
	group := parsec.FlatMap(token('('),
		func(rune) parsec.Parser[Expr] {
			return parsec.Commit(parsec.Then(&expr, token(')'), first))
		},
		second,
	)
	atom := parsec.Alternate(number, group)

	negate := parsec.FlatMap(token('-'),
		func(rune) parsec.Parser[Expr] { return parsec.Commit[Expr](&unary) },
		func(_ rune, x Expr) Expr { return Negate{x} },
	)
	unary.Define(parsec.Alternate(negate, atom))

	term := chain(&unary, token('*'), token('/'))
	expr.Define(chain(term, token('+'), token('-')))

	return parsec.Then(
		parsec.Then(spaces, &expr, second),
		parsec.End(),
		first,
	)
}

type operation struct {
	op rune
	y  Expr
}

// chain parses a left-associative sequence of operands separated by any of
// the given operators. An operator must be followed by an operand.
func chain(operand parsec.Parser[Expr], ops ...parsec.Parser[rune]) parsec.Parser[Expr] {
	tail := parsec.ZeroOrMore(parsec.Then(
		parsec.Choice(ops...),
		parsec.Commit(operand),
		func(op rune, y Expr) operation { return operation{op, y} },
	))

	return parsec.Then(operand, tail, func(x Expr, rest []operation) Expr {
		for _, next := range rest {
			x = Binary{Op: next.op, X: x, Y: next.y}
		}
		return x
	})
}

func fitsInt(digits string) bool {
	_, err := strconv.Atoi(digits)
	return err == nil
}

func first[T, S any](t T, _ S) T  { return t }
func second[T, S any](_ T, s S) S { return s }
