package domain

import (
	"strconv"
	"strings"
)

// SortKey names a field contacts can be ordered by.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPhone      SortKey = "phone"
	SortByEmail      SortKey = "email"
	SortByAddress    SortKey = "address"
	SortBySalary     SortKey = "salary"
	SortByCommission SortKey = "commission"
	SortByPrice      SortKey = "price"
	SortByRating     SortKey = "rating"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByPhone, SortByEmail, SortByAddress,
		SortBySalary, SortByCommission, SortByPrice, SortByRating:
		return true
	}
	return false
}

// Less orders a before b by key. Contacts lacking the field (a rating that
// was never given, a salary on a non-staff contact) go last; ratings sort
// highest first; ties fall back to name.
func (k SortKey) Less(a, b Contact) bool {
	av, aok := k.sortValue(a)
	bv, bok := k.sortValue(b)

	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case aok && bok:
		if cmp := compareValues(av, bv); cmp != 0 {
			if k == SortByRating {
				return cmp > 0
			}
			return cmp < 0
		}
	}
	return a.Base().Name.Less(b.Base().Name)
}

type sortValue struct {
	num   float64
	text  string
	isNum bool
}

func compareValues(a, b sortValue) int {
	if a.isNum && b.isNum {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.text, b.text)
}

func (k SortKey) sortValue(c Contact) (sortValue, bool) {
	p := c.Base()
	switch k {
	case SortByName:
		return sortValue{text: strings.ToLower(p.Name.String())}, true
	case SortByPhone:
		return sortValue{text: p.Phone.String()}, true
	case SortByEmail:
		return sortValue{text: strings.ToLower(p.Email.String())}, true
	case SortByAddress:
		return sortValue{text: strings.ToLower(p.Address.String())}, true
	case SortByRating:
		if p.Rating == nil {
			return sortValue{}, false
		}
		return sortValue{num: float64(p.Rating.Value()), isNum: true}, true
	}

	var amount string
	switch v := c.(type) {
	case Staff:
		if k == SortBySalary {
			amount = v.Salary.String()
		}
	case Maintainer:
		if k == SortByCommission {
			amount = v.Commission.String()
		}
	case Supplier:
		if k == SortByPrice {
			amount = v.Price.String()
		}
	}
	if amount == "" {
		return sortValue{}, false
	}
	n, err := parseAmount(amount)
	if err != nil {
		return sortValue{}, false
	}
	return sortValue{num: n, isNum: true}, true
}

// parseAmount reads the number out of "$<amount>/<unit>".
func parseAmount(s string) (float64, error) {
	s = strings.TrimPrefix(s, "$")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return strconv.ParseFloat(s, 64)
}
