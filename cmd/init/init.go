package init

import (
	"os"

	"github.com/spf13/cobra"

	awsinternal "skylift/internal/aws"
	"skylift/internal/config"
	"skylift/internal/git"
	"skylift/internal/terminal"
	"skylift/internal/workflow"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var (
		appName string
		region  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the workspace for an application",
		Long: `Initialize the current workspace for a remote application.

Values already supplied by flags or a previous init are reused; anything
still unknown is prompted for. The application is created remotely when
it does not exist yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workdir, err := os.Getwd()
			if err != nil {
				return err
			}

			term := terminal.New()
			controller := &workflow.Controller{
				Store:   config.NewWorkspaceStore(workdir),
				Prompt:  term,
				Console: term,
				Creds:   awsinternal.SharedCredentials{},
				Source:  git.Detector{},
				NewClient: func(profile, region string) (awsinternal.Beanstalk, error) {
					if profile == "" {
						profile = config.Config.Profile
					}
					return awsinternal.NewClient(profile, region)
				},
				ApplicationFlag: appName,
				RegionFlag:      region,
			}

			_, err = controller.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&appName, "application", "a", "", "Name of the application")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Region hosting the application")

	return cmd
}
