package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/rolodex/internal/infra/fsworkspace"
	"github.com/aalvaropc/rolodex/internal/usecase"
)

func initCmd(a *app) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create rolodex.yaml and the log directory in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := initRoot(a.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), defaultTheme().Title.Render("Initialized Rolodex workspace at "+root))
			return err
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing template files")
	return c
}
