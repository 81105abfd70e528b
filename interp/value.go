/*
File    : lox/interp/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp evaluates a resolved Lox program. It is grounded on the
// teacher's eval.Evaluator (a current-environment pointer plus a
// settable io.Writer for program output), but where GoMix represents
// even a runtime error as just another GoMixObject value, this package
// keeps runtime errors as a distinct Go error type (RuntimeError) that
// never flows through an expression's result, matching orig §7's
// requirement that a runtime fault be a non-local exit, not a value.
//
// Lox's value domain (orig §3) is small enough that it is represented
// directly with Go's own types rather than a GoMixObject-style wrapper
// interface: nil is Go nil, a Lox boolean is a Go bool, a Lox number is
// a float64, a Lox string is a Go string, and a Lox callable is anything
// implementing Callable. This is the same "collapse the object model
// onto host types where the host type already fits" idiom the teacher
// uses for its own Integer/Float/String/Boolean wrapper structs, taken
// one step further since Go's bool/float64/string need no wrapping at
// all.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// isTruthy implements orig §4.4's truthiness rule: nil and false are
// false, everything else — including 0 and "" — is true.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements orig §4.4 equality: nil equals only nil, otherwise
// same-type structural equality; any cross-type comparison is simply
// unequal and never raises.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a value using the print format orig §6 specifies:
// nil -> "nil", booleans -> "true"/"false", numbers -> their decimal
// form with a trailing ".0" stripped, strings verbatim, callables as
// "<fn name>" or "<native fn>", classes as their bare name.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
