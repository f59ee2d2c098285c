package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

const (
	NoteConstraints     = "Notes can take any values, and it should not be blank"
	DeadlineConstraints = "Deadline should be a valid calendar date in the format YYYY-MM-DD, e.g. 2024-12-31"
	RatingConstraints   = "Rating should be a whole number from 0 to 5"

	// DeadlineLayout is the date layout accepted for deadlines.
	DeadlineLayout = "2006-01-02"
)

// Note is a free-text remark attached to a contact.
type Note struct{ value string }

func IsValidNote(s string) bool { return notBlank.MatchString(s) }

func NewNote(s string) (Note, error) {
	v, err := validated(s, IsValidNote, NoteConstraints)
	return Note{value: v}, err
}

func (n Note) String() string { return n.value }
func (n Note) MarshalText() ([]byte, error) { return []byte(n.value), nil }

// DeadlineNote is a note that must be acted upon by a given date.
type DeadlineNote struct {
	Note     Note
	Deadline time.Time
}

// IsValidDeadline reports whether s is a real calendar date in DeadlineLayout.
func IsValidDeadline(s string) bool {
	_, err := time.Parse(DeadlineLayout, s)
	return err == nil
}

func NewDeadlineNote(note, deadline string) (DeadlineNote, error) {
	n, err := NewNote(note)
	if err != nil {
		return DeadlineNote{}, err
	}
	d, err := time.Parse(DeadlineLayout, deadline)
	if err != nil {
		return DeadlineNote{}, &ParseError{Kind: KindFieldFormat, Msg: DeadlineConstraints, Cause: err}
	}
	return DeadlineNote{Note: n, Deadline: d}, nil
}

// Date returns the deadline formatted with DeadlineLayout.
func (d DeadlineNote) Date() string { return d.Deadline.Format(DeadlineLayout) }

func (d DeadlineNote) String() string {
	return d.Note.String() + " (by " + d.Date() + ")"
}

func (d DeadlineNote) fields() map[string]string {
	return map[string]string{"note": d.Note.String(), "deadline": d.Date()}
}

func (d DeadlineNote) MarshalYAML() (any, error) { return d.fields(), nil }

func (d DeadlineNote) MarshalJSON() ([]byte, error) { return json.Marshal(d.fields()) }

// Rating is a 0-5 score given to a contact.
type Rating struct{ value int }

// IsValidRating accepts a single digit between 0 and 5, so the stored value
// always prints back exactly as it was entered.
func IsValidRating(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '5'
}

func NewRating(s string) (Rating, error) {
	if !IsValidRating(s) {
		return Rating{}, NewParseError(KindFieldFormat, RatingConstraints)
	}
	v, _ := strconv.Atoi(s)
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }
func (r Rating) String() string { return strconv.Itoa(r.value) }
func (r Rating) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
