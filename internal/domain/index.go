package domain

import (
	"strconv"
	"strings"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// Index points at a contact in a listing. It is stored zero-based; users type
// it one-based.
type Index struct{ zeroBased int }

// IsNonZeroUnsignedInteger reports whether s is a positive base-10 integer
// with no sign that fits in 32 bits. Leading zeros are allowed.
func IsNonZeroUnsignedInteger(s string) bool {
	if s == "" || strings.HasPrefix(s, "+") {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return err == nil && n > 0
}

func IndexFromOneBased(i int) Index { return Index{zeroBased: i - 1} }

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

func (i Index) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(i.OneBased())), nil
}
