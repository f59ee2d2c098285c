package parser

import (
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// NoteParser parses: n/NAME note/NOTE
type NoteParser struct{ base }

func NewNoteParser(opts ...Option) *NoteParser {
	return &NoteParser{newBase(CommandNote, NoteUsage, opts)}
}

func (p *NoteParser) Parse(args string) (usecase.Command, error) {
	// deadline/ is declared so that ParseNote can point at the deadline command.
	mm, err := p.tokenizeTargeted(args, []Prefix{PrefixName, PrefixNote, PrefixDeadline}, PrefixName, PrefixNote)
	if err != nil {
		return nil, err
	}

	target, err := MapName(mm, p.header()+"%s")
	if err != nil {
		return nil, err
	}
	note, err := ParseNote(mustValue(mm, PrefixNote))
	if err != nil {
		return nil, err
	}
	return usecase.AddNote{Target: target, Note: note}, nil
}

// DeadlineParser parses: n/NAME note/NOTE deadline/YYYY-MM-DD
type DeadlineParser struct{ base }

func NewDeadlineParser(opts ...Option) *DeadlineParser {
	return &DeadlineParser{newBase(CommandDeadline, DeadlineUsage, opts)}
}

func (p *DeadlineParser) Parse(args string) (usecase.Command, error) {
	prefixes := []Prefix{PrefixName, PrefixNote, PrefixDeadline}
	mm, err := p.tokenizeTargeted(args, prefixes, prefixes...)
	if err != nil {
		return nil, err
	}

	target, err := MapName(mm, p.header()+"%s")
	if err != nil {
		return nil, err
	}
	deadline, err := ParseDeadlineNote(mustValue(mm, PrefixNote), mustValue(mm, PrefixDeadline))
	if err != nil {
		return nil, err
	}
	return usecase.AddDeadlineNote{Target: target, Deadline: deadline}, nil
}

// RateParser parses: n/NAME rating/RATING
type RateParser struct{ base }

func NewRateParser(opts ...Option) *RateParser {
	return &RateParser{newBase(CommandRate, RateUsage, opts)}
}

func (p *RateParser) Parse(args string) (usecase.Command, error) {
	prefixes := []Prefix{PrefixName, PrefixRating}
	mm, err := p.tokenizeTargeted(args, prefixes, prefixes...)
	if err != nil {
		return nil, err
	}

	target, err := MapName(mm, p.header()+"%s")
	if err != nil {
		return nil, err
	}
	rating, err := ParseRating(mustValue(mm, PrefixRating))
	if err != nil {
		return nil, err
	}
	return usecase.RateContact{Target: target, Rating: rating}, nil
}

// tokenizeTargeted handles commands aimed at one named contact. Only
// required is tokenized, and each of those must appear exactly once.
func (b base) tokenizeTargeted(args string, declared []Prefix, required ...Prefix) (*ArgumentMultimap, error) {
	if err := b.verifyKnown(args, declared...); err != nil {
		return nil, err
	}

	mm := Tokenize(args, required...)
	if mm.Preamble() != "" {
		return nil, invalidCommandFormat(b.usage)
	}
	if err := VerifyNoMissingField(mm, b.usage, b.word, b.header(), required...); err != nil {
		return nil, err
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(required...); err != nil {
		return nil, err
	}
	return mm, nil
}
