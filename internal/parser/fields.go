package parser

import (
	"strconv"
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
)

// Every Parse* function trims leading and trailing whitespace before
// validating, and fails with a *domain.ParseError carrying the field's
// constraint message.

// ParseIndex parses a one-based index.
func ParseIndex(oneBased string) (domain.Index, error) {
	s := strings.TrimSpace(oneBased)
	if !domain.IsNonZeroUnsignedInteger(s) {
		return domain.Index{}, domain.NewParseError(domain.KindFieldFormat, domain.MessageInvalidIndex)
	}
	n, _ := strconv.Atoi(s)
	return domain.IndexFromOneBased(n), nil
}

func ParseName(name string) (domain.Name, error) {
	return domain.NewName(strings.TrimSpace(name))
}

func ParsePhone(phone string) (domain.Phone, error) {
	return domain.NewPhone(strings.TrimSpace(phone))
}

func ParseEmail(email string) (domain.Email, error) {
	return domain.NewEmail(strings.TrimSpace(email))
}

func ParseAddress(address string) (domain.Address, error) {
	return domain.NewAddress(strings.TrimSpace(address))
}

func ParseEmployment(employment string) (domain.Employment, error) {
	return domain.NewEmployment(strings.TrimSpace(employment))
}

func ParseSalary(salary string) (domain.Salary, error) {
	return domain.NewSalary(strings.TrimSpace(salary))
}

func ParseProduct(product string) (domain.Product, error) {
	return domain.NewProduct(strings.TrimSpace(product))
}

func ParsePrice(price string) (domain.Price, error) {
	return domain.NewPrice(strings.TrimSpace(price))
}

func ParseSkill(skill string) (domain.Skill, error) {
	return domain.NewSkill(strings.TrimSpace(skill))
}

func ParseCommission(commission string) (domain.Commission, error) {
	return domain.NewCommission(strings.TrimSpace(commission))
}

func ParseTag(tag string) (domain.Tag, error) {
	return domain.NewTag(strings.TrimSpace(tag))
}

// ParseTags parses every tag and collapses duplicates.
func ParseTags(tags []string) (domain.TagSet, error) {
	set := domain.NewTagSet()
	for _, raw := range tags {
		t, err := ParseTag(raw)
		if err != nil {
			return domain.TagSet{}, err
		}
		set = set.With(t)
	}
	return set, nil
}

// ParseNote rejects notes that embed a deadline: those go through the
// deadline command instead.
func ParseNote(note string) (domain.Note, error) {
	s := strings.TrimSpace(note)
	if containsPrefix(s, PrefixDeadline) {
		return domain.Note{}, domain.NewParseError(domain.KindFieldFormat, MessageDeadlineNotSpecified)
	}
	return domain.NewNote(s)
}

func ParseRating(rating string) (domain.Rating, error) {
	return domain.NewRating(strings.TrimSpace(rating))
}

func ParseDeadlineNote(note, deadline string) (domain.DeadlineNote, error) {
	return domain.NewDeadlineNote(strings.TrimSpace(note), strings.TrimSpace(deadline))
}

// ParseHelp accepts an empty topic or a known command word.
func ParseHelp(commandType string) (string, error) {
	s := strings.TrimSpace(commandType)
	if s == "" {
		return s, nil
	}
	if _, ok := Usage(s); !ok {
		return "", domain.NewParseError(domain.KindFieldFormat, HelpConstraints)
	}
	return s, nil
}

// ParseSortField turns a sort field written as a key ("salary"), a prefix
// ("s/") or in the decorated "; salary : " form into a sort key.
func ParseSortField(sortField string) (domain.SortKey, error) {
	s := strings.ToLower(sortField)
	s = strings.ReplaceAll(s, "; ", "")
	s = strings.ReplaceAll(s, " : ", "")
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, ";"), ":"))

	if key, ok := sortKeyByPrefix[Prefix(s)]; ok {
		return key, nil
	}
	s = strings.TrimSuffix(s, "/")
	if key, ok := sortKeyByPrefix[Prefix(s+"/")]; ok {
		return key, nil
	}
	if key := domain.SortKey(s); key.IsValid() {
		return key, nil
	}
	return "", domain.NewParseError(domain.KindFieldFormat, SortConstraints)
}

var sortKeyByPrefix = map[Prefix]domain.SortKey{
	PrefixName:       domain.SortByName,
	PrefixPhone:      domain.SortByPhone,
	PrefixEmail:      domain.SortByEmail,
	PrefixAddress:    domain.SortByAddress,
	PrefixSalary:     domain.SortBySalary,
	PrefixCommission: domain.SortByCommission,
	PrefixPrice:      domain.SortByPrice,
	PrefixRating:     domain.SortByRating,
}

const sortableFieldList = "name, phone, email, address, salary, commission, price, rating"

const SortConstraints = "Contacts can only be sorted by one of: " + sortableFieldList

// ParseField returns the contents of a field/{ ... } block without its braces.
func ParseField(args string) (string, error) {
	s := strings.TrimSpace(strings.NewReplacer("{", "", "}", "").Replace(args))
	if s == "" {
		return "", domain.NewParseError(domain.KindFieldFormat, MessageEmptyFields)
	}
	return s, nil
}

// ParseArg pads braces with spaces so prefixes written right after "{" are
// seen as separate words, e.g. "field/{p/123}" becomes "field/{ p/123 }".
func ParseArg(arg string) string {
	return strings.NewReplacer("{", "{ ", "}", " }").Replace(arg)
}

func containsPrefix(s string, p Prefix) bool {
	return len(findPrefixPositions(s, p)) > 0
}
