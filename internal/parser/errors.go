package parser

import (
	"errors"
	"fmt"
)

// ErrParseFailed matches every error returned when a rule cannot consume its
// whole input.
var ErrParseFailed = errors.New("parse failed")

// ParseError reports a failed parse. Offset is where the rule stopped when it
// matched a prefix of Input, or 0 when it matched nothing.
type ParseError struct {
	Rule   Rule
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse %s: unexpected input at offset %d of %q", e.Rule, e.Offset, e.Input)
	}
	return fmt.Sprintf("parse %s: no match for %q", e.Rule, e.Input)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailed
}
