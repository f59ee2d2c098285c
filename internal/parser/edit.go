package parser

import (
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// EditParser parses: n/NAME field/{ [n/NAME] [p/PHONE] ... }
// Everything after field/ belongs to the block, so prefixes inside it never
// clash with the target's n/.
type EditParser struct{ base }

func NewEditParser(opts ...Option) *EditParser {
	return &EditParser{newBase(CommandEdit, EditUsage, opts)}
}

func (p *EditParser) Parse(args string) (usecase.Command, error) {
	args = ParseArg(args)

	declared := append([]Prefix{PrefixField}, editablePrefixes...)
	if err := p.verifyKnown(args, declared...); err != nil {
		return nil, err
	}

	head, block, hasBlock := cutAtPrefix(args, PrefixField)
	mm := Tokenize(head, PrefixName)
	if hasBlock {
		mm.put(PrefixField, strings.TrimSpace(block))
	}

	if mm.Preamble() != "" {
		return nil, invalidCommandFormat(p.usage)
	}
	if err := VerifyNoMissingField(mm, p.usage, p.word, p.header(), PrefixName, PrefixField); err != nil {
		return nil, err
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixName); err != nil {
		return nil, err
	}

	target, err := MapName(mm, p.header()+"%s")
	if err != nil {
		return nil, err
	}
	fields, err := MapFields(mm, p.header()+MessageEmptyFields)
	if err != nil {
		return nil, err
	}

	edit, err := p.parseEditDescriptor(fields)
	if err != nil {
		return nil, err
	}
	return usecase.EditContact{Target: target, Edit: edit}, nil
}

func (p *EditParser) parseEditDescriptor(fields string) (domain.EditDescriptor, error) {
	var d domain.EditDescriptor

	mm := Tokenize(fields, editablePrefixes...)
	if mm.Preamble() != "" {
		return d, invalidCommandFormat(p.usage)
	}

	single := make([]Prefix, 0, len(editablePrefixes))
	for _, pr := range editablePrefixes {
		if pr != PrefixTag {
			single = append(single, pr)
		}
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(single...); err != nil {
		return d, err
	}

	steps := []error{
		parseOptional(mm, PrefixName, ParseName, &d.Name),
		parseOptional(mm, PrefixPhone, ParsePhone, &d.Phone),
		parseOptional(mm, PrefixEmail, ParseEmail, &d.Email),
		parseOptional(mm, PrefixAddress, ParseAddress, &d.Address),
		parseOptional(mm, PrefixEmployment, ParseEmployment, &d.Employment),
		parseOptional(mm, PrefixSalary, ParseSalary, &d.Salary),
		parseOptional(mm, PrefixProduct, ParseProduct, &d.Product),
		parseOptional(mm, PrefixPrice, ParsePrice, &d.Price),
		parseOptional(mm, PrefixSkill, ParseSkill, &d.Skill),
		parseOptional(mm, PrefixCommission, ParseCommission, &d.Commission),
	}
	for _, err := range steps {
		if err != nil {
			return domain.EditDescriptor{}, err
		}
	}

	if mm.Has(PrefixTag) {
		tags, err := parseTagsForEdit(mm.AllValues(PrefixTag))
		if err != nil {
			return domain.EditDescriptor{}, err
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return domain.EditDescriptor{}, domain.NewParseError(domain.KindFieldFormat, MessageNoFieldsEdited)
	}
	return d, nil
}

// parseTagsForEdit treats a lone empty "t/" as clearing every tag.
func parseTagsForEdit(values []string) (domain.TagSet, error) {
	if len(values) == 1 && values[0] == "" {
		return domain.NewTagSet(), nil
	}
	return ParseTags(values)
}

func parseOptional[T any](mm *ArgumentMultimap, p Prefix, parse func(string) (T, error), dst **T) error {
	raw, ok := mm.Value(p)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return err
	}
	*dst = &v
	return nil
}

// cutAtPrefix splits args at the first word-start occurrence of p, dropping p.
func cutAtPrefix(args string, p Prefix) (before, after string, found bool) {
	positions := findPrefixPositions(args, p)
	if len(positions) == 0 {
		return args, "", false
	}
	i := positions[0].start
	return args[:i], args[i+len(p):], true
}
