package parser

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/logger"
)

// ArePrefixesPresent reports whether every prefix has at least one value.
func ArePrefixesPresent(mm *ArgumentMultimap, prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !mm.Has(p) {
			return false
		}
	}
	return true
}

// MapName parses the n/ value. message is a format string receiving the
// underlying constraint message.
func MapName(mm *ArgumentMultimap, message string) (domain.Name, error) {
	raw, ok := mm.Value(PrefixName)
	if !ok {
		return domain.Name{}, domain.NewParseError(domain.KindMissingPrefix,
			fmt.Sprintf(message, fmt.Sprintf(MessageMissingFieldFormat, PrefixName)))
	}
	name, err := ParseName(raw)
	if err != nil {
		return domain.Name{}, &domain.ParseError{
			Kind:  domain.KindFieldFormat,
			Msg:   fmt.Sprintf(message, err.Error()),
			Cause: err,
		}
	}
	return name, nil
}

// MapFields returns the contents of the field/{ ... } block, failing with
// message when it is missing or empty.
func MapFields(mm *ArgumentMultimap, message string) (string, error) {
	raw, ok := mm.Value(PrefixField)
	if !ok {
		return "", domain.NewParseError(domain.KindMissingPrefix, message)
	}
	fields, err := ParseField(raw)
	if err != nil {
		return "", &domain.ParseError{Kind: domain.KindFieldFormat, Msg: message, Cause: err}
	}
	return fields, nil
}

// VerifyNoUnknownPrefix fails when args contains prefix-shaped tokens that
// are not among prefixes. The message lists them, followed by usage.
func VerifyNoUnknownPrefix(args, usage, commandWord, header string, prefixes ...Prefix) error {
	return unknownPrefixError(CheckUnknownPrefix(args, prefixes...), usage, commandWord, header)
}

func unknownPrefixError(unknown []string, usage, commandWord, header string) error {
	if len(unknown) == 0 {
		return nil
	}

	logger.L().Warn("parser.unknown_prefix", "command", commandWord, "prefixes", unknown)

	msg := header + fmt.Sprintf(MessageInvalidFieldFormat, strings.Join(unknown, " "))
	msg += "\n" + fmt.Sprintf(MessageCommandFormat, usage)
	return domain.NewParseError(domain.KindUnknownPrefix, msg)
}

// VerifyNoMissingField fails when any of prefixes has no value in mm. The
// message lists the missing prefixes, followed by usage.
func VerifyNoMissingField(mm *ArgumentMultimap, usage, commandWord, header string, prefixes ...Prefix) error {
	if ArePrefixesPresent(mm, prefixes...) {
		return nil
	}

	missing := CheckUndetectedPrefix(mm, prefixes...)
	logger.L().Warn("parser.missing_field", "command", commandWord, "prefixes", missing)

	names := make([]string, len(missing))
	for i, p := range missing {
		names[i] = string(p)
	}
	msg := header + fmt.Sprintf(MessageMissingFieldFormat, strings.Join(names, " "))
	msg += "\n" + fmt.Sprintf(MessageCommandFormat, usage)
	return domain.NewParseError(domain.KindMissingPrefix, msg)
}

func commandHeader(word string) string {
	return fmt.Sprintf(MessageCommandHeader, word)
}

func invalidCommandFormat(usage string) error {
	return domain.NewParseError(domain.KindCommandFormat, fmt.Sprintf(MessageInvalidCommandFormat, usage))
}
