package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/parser"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

// parseCmd runs the parser for word over the joined arguments and prints the
// parsed command. Nothing is executed against a contact book.
func parseCmd(a *app, word string) *cobra.Command {
	usage, _ := parser.Usage(word)

	return &cobra.Command{
		Use:   word + " [ARGS...]",
		Short: shortUsage(usage),
		Long:  usage,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := parser.New(word, parser.WithUnknownPrefixCheck(a.cfg.Parser.RejectUnknownPrefixes))
			if !ok {
				return fmt.Errorf("unknown command %q", word)
			}

			parsed, err := p.Parse(joinArgs(cmd, args))
			if err != nil {
				return err
			}

			if h, ok := parsed.(usecase.Help); ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), h.Text)
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, word, parsed)
		},
	}
}

// joinArgs rebuilds the argument text, putting back the first bare "--" that
// flag parsing consumed.
func joinArgs(cmd *cobra.Command, args []string) string {
	if i := cmd.ArgsLenAtDash(); i >= 0 && i <= len(args) {
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		args = append(out, args[i:]...)
	}
	return strings.Join(args, " ")
}

// parsedCommand is what gets printed for a successful parse.
type parsedCommand struct {
	Command string          `yaml:"command" json:"command"`
	Parsed  usecase.Command `yaml:"parsed" json:"parsed"`
}

func render(w io.Writer, format domain.OutputFormat, word string, cmd usecase.Command) error {
	out := parsedCommand{Command: word, Parsed: cmd}

	switch format {
	case domain.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case domain.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// shortUsage is the description part of a usage text: the first line without
// the "word: " lead and the parameter list.
func shortUsage(usage string) string {
	line, _, _ := strings.Cut(usage, "\n")
	if _, rest, ok := strings.Cut(line, ": "); ok {
		line = rest
	}
	if i := strings.Index(line, " Parameters:"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
