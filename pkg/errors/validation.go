package errors

import "unicode/utf8"

// MaxBracketLength bounds bracket text accepted from outside callers (CLI
// arguments, HTTP paths). The core parsers accept any length.
const MaxBracketLength = 1 << 16

// RequireAtLeast validates that v >= min for the argument named name.
// It is the shared precondition check behind every numeric operation of the
// engine (k >= 1 for prime lookups, n >= 1 for decoding, n >= 0 for counts).
func RequireAtLeast(name string, v, min int) error {
	if v < min {
		return InvalidArgument("%s must be >= %d, got %d", name, min, v)
	}
	return nil
}

// RequirePositive validates that v >= 1.
func RequirePositive(name string, v int) error {
	return RequireAtLeast(name, v, 1)
}

// RequireNonNegative validates that v >= 0.
func RequireNonNegative(name string, v int) error {
	return RequireAtLeast(name, v, 0)
}

// RequireAtMost validates that v <= max. Outer layers use it to cap the
// exponential queries (partition enumeration) they are willing to serve.
func RequireAtMost(name string, v, max int) error {
	if v > max {
		return InvalidArgument("%s must be <= %d, got %d", name, max, v)
	}
	return nil
}

// ValidateBracketText checks that s is made only of '(' and ')' and is
// short enough to be accepted from an external caller. Balance is checked
// by the parser itself.
func ValidateBracketText(s string) error {
	if len(s) > MaxBracketLength {
		return New(ErrCodeMalformedInput, "bracket text too long (max %d bytes)", MaxBracketLength)
	}
	if !utf8.ValidString(s) {
		return New(ErrCodeMalformedInput, "bracket text is not valid UTF-8")
	}
	for i, r := range s {
		if r != '(' && r != ')' {
			return Malformed(i, "unexpected %q", r)
		}
	}
	return nil
}
