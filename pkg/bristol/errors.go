package bristol

import "fmt"

// StructuralError reports input whose overall shape is wrong: fewer than
// the three header lines, a port-list line whose declared port count does
// not match the tokens actually present, or a gate line with the wrong
// number of tokens.
type StructuralError struct {
	Line     int // 1-based line number in the raw input, 0 if not tied to a line
	Expected string
	Found    string
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Expected, e.Found)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// MalformedNumberError reports a token that should have been a
// non-negative integer in 32-bit range but was not.
type MalformedNumberError struct {
	Line  int
	Field string // which field the token was parsed as, e.g. "num_wires"
	Token string
	Cause error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("line %d: %s: expected a non-negative 32-bit integer, found %q", e.Line, e.Field, e.Token)
}

func (e *MalformedNumberError) Unwrap() error { return e.Cause }

// ArityMismatchError reports a gate line whose declared input/output
// counts do not match the fixed arity of its gate tag.
type ArityMismatchError struct {
	Line     int
	Tag      string
	Expected string // declared count the format requires, e.g. "2"
	Found    string
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("line %d: %s gate declares %s input/output wires, format requires %s", e.Line, e.Tag, e.Found, e.Expected)
}

// UnsupportedGateError reports a gate tag that is part of the Bristol
// vocabulary but that this parser does not implement (EQ, EQW, MAND).
// It is distinct from UnknownGateError: the input is well-formed, the
// feature is missing.
type UnsupportedGateError struct {
	Line int
	Tag  string
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("line %d: gate type %s is not supported", e.Line, e.Tag)
}

// UnknownGateError reports a gate tag outside the known vocabulary
type UnknownGateError struct {
	Line int
	Tag  string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("line %d: unknown gate type %q", e.Line, e.Tag)
}
