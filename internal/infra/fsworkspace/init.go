package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/logger"
)

// Initializer scaffolds a workspace on the local filesystem.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init creates the log directory, the .gitignore entries and every template
// file. Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	const op = "fsworkspace.init"
	root := filepath.Clean(spec.Root)

	logs := filepath.Join(root, ".rolodex", "logs")
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: logs, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: filepath.Join(root, ".gitignore"), Err: err}
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				logger.L().Info("workspace.init.skip", "path", dst)
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: dst, Err: err}
		}
		logger.L().Info("workspace.init.write", "path", dst)
		return nil
	})
}

const gitignoreHeader = "# Rolodex"

var gitignoreEntries = []string{
	".rolodex/",
}

// ensureGitignore appends the entries .gitignore is missing, writing the
// header once.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		lines := append([]string{gitignoreHeader}, gitignoreEntries...)
		return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		out.WriteString("\n" + gitignoreHeader + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return os.WriteFile(path, []byte(out.String()), 0o644)
}
