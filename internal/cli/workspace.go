package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/config"
	"github.com/aalvaropc/rolodex/internal/ports"
)

// resolveWorkspaceRoot returns the explicit --workspace directory when given,
// otherwise the nearest workspace above the working directory. Outside any
// workspace the working directory itself is used and found is false.
func resolveWorkspaceRoot(workspaceFlag string, locator ports.WorkspaceLocator) (root string, found bool, err error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, config.FileName)), nil
	}

	wd, err := workingDir()
	if err != nil {
		return "", false, err
	}

	root, err = locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

// initRoot is where `rolodex init` scaffolds: --workspace or the working
// directory, never a parent workspace.
func initRoot(workspaceFlag string) (string, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		return filepath.Abs(w)
	}
	return workingDir()
}

func workingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Abs(wd)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
