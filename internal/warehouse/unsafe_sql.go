package warehouse

// UNSAFE INTERPOLATION BOUNDARY
//
// Every statement the dialects build passes its caller-supplied pieces
// (table names, limits, schema names) through the helpers in this file.
// They splice text verbatim: nothing is quoted or escaped, so a crafted
// table name becomes part of the SQL. Bound parameters are the correct
// alternative where the target statement supports them; SHOW, DESCRIBE and
// identifier positions do not, which is why this boundary exists.
//
// ValidateIdentifier and ValidateLimit are the opt-in guard used when the
// server runs with --strict-identifiers.

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// identifierRegex matches unquoted Snowflake identifiers: a letter or
// underscore followed by letters, digits, underscores or dollar signs.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// ErrInvalidIdentifier is returned by ValidateIdentifier.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrInvalidLimit is returned by ValidateLimit.
var ErrInvalidLimit = errors.New("invalid limit")

// UnsafeQualify joins name parts with dots, verbatim.
func UnsafeQualify(parts ...string) string {
	return strings.Join(parts, ".")
}

// UnsafeLiteral wraps s in single quotes, verbatim. Embedded quotes are not
// doubled.
func UnsafeLiteral(s string) string {
	return "'" + s + "'"
}

// UnsafeLimit renders n as a LIMIT operand. Negative values are passed
// through for the driver to reject.
func UnsafeLimit(n int) string {
	return strconv.Itoa(n)
}

// ValidateIdentifier reports whether name is a plain unquoted identifier.
func ValidateIdentifier(name string) error {
	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateLimit rejects negative limits.
func ValidateLimit(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	return nil
}
