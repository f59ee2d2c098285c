package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

type prefixPosition struct {
	start  int
	prefix Prefix
}

// Tokenize splits args into a preamble and the values following each of the
// given prefixes. A prefix is only recognised at the start of args or right
// after whitespace, so "a/Blk 30/12" keeps "30/12" inside the address. Each
// value runs until the next recognised prefix and is trimmed; a prefix given
// more than once keeps every value in order of appearance.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	positions := findAllPrefixPositions(args, prefixes)
	return extractArguments(args, positions)
}

func findAllPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var out []prefixPosition
	for _, p := range prefixes {
		out = append(out, findPrefixPositions(args, p)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].start != out[j].start {
			return out[i].start < out[j].start
		}
		return len(out[i].prefix) > len(out[j].prefix)
	})

	// Two prefixes starting at the same offset: the longer one wins.
	dedup := out[:0]
	for _, pos := range out {
		if n := len(dedup); n > 0 && dedup[n-1].start == pos.start {
			continue
		}
		dedup = append(dedup, pos)
	}
	return dedup
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	if p == "" {
		return nil
	}

	var out []prefixPosition
	for from := 0; from < len(args); {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			break
		}
		i += from
		if atWordStart(args, i) {
			out = append(out, prefixPosition{start: i, prefix: p})
		}
		from = i + 1
	}
	return out
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	return unicode.IsSpace(rune(s[i-1]))
}

func extractArguments(args string, positions []prefixPosition) *ArgumentMultimap {
	mm := newArgumentMultimap()

	if len(positions) == 0 {
		mm.preamble = strings.TrimSpace(args)
		return mm
	}

	mm.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := args[pos.start+len(pos.prefix) : end]
		mm.put(pos.prefix, strings.TrimSpace(value))
	}
	return mm
}

var prefixLike = regexp.MustCompile(`(?:^|\s)([A-Za-z][A-Za-z-]*/)`)

// CheckUnknownPrefix returns the prefix-shaped tokens in args (a word made of
// letters followed by '/') that are not among declared, in order of first
// appearance and without repeats.
func CheckUnknownPrefix(args string, declared ...Prefix) []string {
	known := make(map[string]bool, len(declared))
	for _, p := range declared {
		known[string(p)] = true
	}

	var unknown []string
	seen := map[string]bool{}
	for _, m := range prefixLike.FindAllStringSubmatch(args, -1) {
		tok := m[1]
		if known[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		unknown = append(unknown, tok)
	}
	return unknown
}

// CheckUndetectedPrefix returns the prefixes in required that have no value
// in mm, in the order given.
func CheckUndetectedPrefix(mm *ArgumentMultimap, required ...Prefix) []Prefix {
	var missing []Prefix
	for _, p := range required {
		if !mm.Has(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
