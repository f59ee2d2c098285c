package ports

import "github.com/aalvaropc/rolodex/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
