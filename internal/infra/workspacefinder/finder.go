package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/rolodex/internal/domain"
	"github.com/aalvaropc/rolodex/internal/infra/config"
)

// Finder locates a Rolodex workspace: the nearest directory, walking upward,
// that holds rolodex.yaml.
type Finder struct {
	ConfigFile string // defaults to config.FileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: config.FileName}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.find_root"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidArgument, Err: errors.New("start directory is empty")}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if f.hasConfig(cur) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   op,
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) hasConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, f.ConfigFile))
	return err == nil && !info.IsDir()
}
