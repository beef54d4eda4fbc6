package workflow

import (
	"fmt"

	awsinternal "skylift/internal/aws"
	"skylift/internal/terminal"
)

// EnvironmentDiscovery lists the environments of an application that
// already existed remotely. A remote failure here is reported as a
// warning and never fails the run.
type EnvironmentDiscovery struct {
	Console terminal.Console
}

// List returns the remote environments in service order, echoing them
// to the user, or nil when the call fails.
func (d *EnvironmentDiscovery) List(client awsinternal.Beanstalk, appName string) []awsinternal.Environment {
	envs, err := client.DescribeEnvironments(appName)
	if err != nil {
		d.Console.Warn(fmt.Sprintf("Could not list environments for application %s: %v", appName, err))
		return nil
	}

	if len(envs) > 0 {
		d.Console.Tell(fmt.Sprintf("Environments for application %s:", appName))
		for _, env := range envs {
			d.Console.Tell(fmt.Sprintf("  %s", env.Name))
		}
	}
	return envs
}
