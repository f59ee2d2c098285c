package parser

import (
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
)

// ArgumentMultimap maps each prefix to the values that followed it, in order
// of appearance. It only lives for the duration of a single parse.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

func newArgumentMultimap() *ArgumentMultimap {
	return &ArgumentMultimap{values: map[Prefix][]string{}}
}

func (m *ArgumentMultimap) put(p Prefix, value string) {
	m.values[p] = append(m.values[p], value)
}

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns a copy of every value given for p.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	vs := m.values[p]
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

func (m *ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// Preamble is the trimmed text before the first recognised prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes was given more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dup []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dup = append(dup, string(p))
		}
	}
	if len(dup) == 0 {
		return nil
	}
	return domain.NewParseError(domain.KindDuplicatePrefix, MessageDuplicateFields+strings.Join(dup, " "))
}
