package parser

import (
	"fmt"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// DeleteParser parses either "INDEX" or "n/NAME", never both.
type DeleteParser struct{ base }

func NewDeleteParser(opts ...Option) *DeleteParser {
	return &DeleteParser{newBase(CommandDelete, DeleteUsage, opts)}
}

func (p *DeleteParser) Parse(args string) (usecase.Command, error) {
	if err := p.verifyKnown(args, PrefixName); err != nil {
		return nil, err
	}

	mm := Tokenize(args, PrefixName)
	preamble := mm.Preamble()
	hasName := mm.Has(PrefixName)

	switch {
	case preamble != "" && hasName, preamble == "" && !hasName:
		return nil, invalidCommandFormat(p.usage)
	case preamble != "":
		index, err := ParseIndex(preamble)
		if err != nil {
			return nil, &domain.ParseError{
				Kind:  domain.KindCommandFormat,
				Msg:   fmt.Sprintf(MessageInvalidCommandFormat, p.usage),
				Cause: err,
			}
		}
		return usecase.DeleteContact{Index: &index}, nil
	}

	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixName); err != nil {
		return nil, err
	}
	name, err := MapName(mm, p.header()+"%s")
	if err != nil {
		return nil, err
	}
	return usecase.DeleteContact{Name: &name}, nil
}
