package domain

import "regexp"

// validated runs raw through the predicate and returns a field-format ParseError
// carrying msg when it does not hold. Constructors never trim: callers do.
func validated(raw string, valid func(string) bool, msg string) (string, error) {
	if !valid(raw) {
		return "", NewParseError(KindFieldFormat, msg)
	}
	return raw, nil
}

// notBlank matches any value whose first character is not whitespace.
var notBlank = regexp.MustCompile(`^\S.*$`)
