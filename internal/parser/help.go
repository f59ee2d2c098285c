package parser

import (
	"strings"

	"github.com/aalvaropc/rolodex/internal/usecase"
)

// HelpParser parses an optional command word.
type HelpParser struct{ base }

func NewHelpParser(opts ...Option) *HelpParser {
	return &HelpParser{newBase(CommandHelp, HelpUsage, opts)}
}

func (p *HelpParser) Parse(args string) (usecase.Command, error) {
	if err := p.verifyKnown(args); err != nil {
		return nil, err
	}

	topic, err := ParseHelp(args)
	if err != nil {
		return nil, err
	}
	return usecase.Help{Topic: topic, Text: HelpText(topic)}, nil
}

// HelpText returns the usage of topic, or of every command when topic is empty.
func HelpText(topic string) string {
	if topic != "" {
		u, _ := Usage(topic)
		return u
	}

	parts := make([]string, len(usages))
	for i, u := range usages {
		parts[i] = u.usage
	}
	return strings.Join(parts, "\n\n")
}
