package parser

import (
	"github.com/aalvaropc/rolodex/internal/infra/logger"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// SortParser parses a single sort field. Prefix shorthands such as "s/" are
// accepted, so there is no unknown-prefix check.
type SortParser struct{ base }

func NewSortParser(opts ...Option) *SortParser {
	return &SortParser{newBase(CommandSort, SortUsage, opts)}
}

func (p *SortParser) Parse(args string) (usecase.Command, error) {
	logger.L().Debug("parser.parse", "command", p.word)

	mm := Tokenize(args)
	if mm.Preamble() == "" {
		return nil, invalidCommandFormat(p.usage)
	}

	key, err := ParseSortField(mm.Preamble())
	if err != nil {
		return nil, err
	}
	return usecase.SortContacts{Key: key}, nil
}
