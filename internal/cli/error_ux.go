package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns err into the text shown on the terminal. Parse errors
// are already written for the user and pass through unchanged.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var pe *domain.ParseError
	if errors.As(err, &pe) {
		return pe.Msg
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found (tip: run `rolodex init`)"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config in " + base + ": " + cause(oe)

		case domain.KindInvalidArgument:
			return cause(oe)

		default:
			return "Unexpected error (see logs)"
		}
	}

	return err.Error()
}

// printError writes the first line of the message as the error and the rest,
// usually the expected command format, dimmed.
func printError(w io.Writer, t theme, err error) {
	msg := userMessage(err)
	head, rest, _ := strings.Cut(msg, "\n")

	fmt.Fprintln(w, t.Error.Render(strings.TrimSpace(head)))
	if rest = strings.TrimSpace(rest); rest != "" {
		fmt.Fprintln(w, t.Usage.Render(rest))
	}
}

func cause(oe *domain.OpError) string {
	if oe.Err == nil {
		return oe.Error()
	}
	return oe.Err.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
