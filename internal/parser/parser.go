package parser

import (
	"github.com/aalvaropc/rolodex/internal/infra/logger"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// Parser turns the arguments of one command word into a command.
type Parser interface {
	Parse(args string) (usecase.Command, error)
}

type options struct {
	rejectUnknown bool
}

type Option func(*options)

// WithUnknownPrefixCheck toggles rejection of command line prefixes the
// command does not take (on by default). Add commands never run the check:
// their free-text fields keep any "word/" they contain.
func WithUnknownPrefixCheck(enabled bool) Option {
	return func(o *options) {
		o.rejectUnknown = enabled
	}
}

type base struct {
	word  string
	usage string
	opts  options
}

func newBase(word, usage string, opts []Option) base {
	o := options{rejectUnknown: true}
	for _, opt := range opts {
		opt(&o)
	}
	return base{word: word, usage: usage, opts: o}
}

func (b base) header() string { return commandHeader(b.word) }

// verifyKnown fails on prefixes of the command line syntax that the command
// does not declare. Other "word/" tokens are plain text.
func (b base) verifyKnown(args string, declared ...Prefix) error {
	logger.L().Debug("parser.parse", "command", b.word)
	if !b.opts.rejectUnknown {
		return nil
	}

	var unknown []string
	for _, tok := range CheckUnknownPrefix(args, declared...) {
		if isSyntaxPrefix(tok) {
			unknown = append(unknown, tok)
		}
	}
	return unknownPrefixError(unknown, b.usage, b.word, b.header())
}

// New returns the parser registered for a command word.
func New(word string, opts ...Option) (Parser, bool) {
	switch word {
	case CommandAdd:
		return NewAddPersonParser(opts...), true
	case CommandAddStaff:
		return NewAddStaffParser(opts...), true
	case CommandAddSupplier:
		return NewAddSupplierParser(opts...), true
	case CommandAddMaintainer:
		return NewAddMaintainerParser(opts...), true
	case CommandDelete:
		return NewDeleteParser(opts...), true
	case CommandEdit:
		return NewEditParser(opts...), true
	case CommandNote:
		return NewNoteParser(opts...), true
	case CommandDeadline:
		return NewDeadlineParser(opts...), true
	case CommandRate:
		return NewRateParser(opts...), true
	case CommandHelp:
		return NewHelpParser(opts...), true
	case CommandSort:
		return NewSortParser(opts...), true
	}
	return nil, false
}
