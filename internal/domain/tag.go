package domain

import (
	"encoding/json"
	"regexp"
	"sort"
)

const TagConstraints = "Tags names should be alphanumeric"

// Tags attached automatically to role contacts.
const (
	StaffTag      = "staff"
	SupplierTag   = "supplier"
	MaintainerTag = "maintainer"
)

var tagRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a single alphanumeric label.
type Tag struct{ name string }

func IsValidTagName(s string) bool { return tagRe.MatchString(s) }

func NewTag(s string) (Tag, error) {
	v, err := validated(s, IsValidTagName, TagConstraints)
	return Tag{name: v}, err
}

// MustTag is for the fixed role tags; it panics on an invalid name.
func MustTag(s string) Tag {
	t, err := NewTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tag) String() string { return t.name }
func (t Tag) MarshalText() ([]byte, error) { return []byte(t.name), nil }

// TagSet is an unordered set of unique tags. The zero value is an empty set.
type TagSet struct {
	m map[Tag]struct{}
}

func NewTagSet(tags ...Tag) TagSet {
	s := TagSet{m: make(map[Tag]struct{}, len(tags))}
	for _, t := range tags {
		s.m[t] = struct{}{}
	}
	return s
}

// With returns a copy of the set including t.
func (s TagSet) With(t Tag) TagSet {
	out := NewTagSet(s.Sorted()...)
	out.m[t] = struct{}{}
	return out
}

func (s TagSet) Has(t Tag) bool {
	_, ok := s.m[t]
	return ok
}

func (s TagSet) Len() int { return len(s.m) }

func (s TagSet) IsZero() bool { return len(s.m) == 0 }

// Sorted returns the tags ordered by name.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (s TagSet) strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.name
	}
	return out
}

func (s TagSet) MarshalYAML() (any, error) { return s.strings(), nil }

func (s TagSet) MarshalJSON() ([]byte, error) { return json.Marshal(s.strings()) }
