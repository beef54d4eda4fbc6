package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/elasticbeanstalk"
	"github.com/aws/aws-sdk-go/service/elasticbeanstalk/elasticbeanstalkiface"

	"skylift/internal/logging"
)

// Application is a remote application as reported by the service.
type Application struct {
	Name        string
	Description string
}

// Environment is a remote environment belonging to an application.
type Environment struct {
	Name string
}

// Beanstalk is the remote service surface used by the init workflow.
// Calls carry no client-side retry policy; transient-failure handling
// belongs to the SDK transport underneath.
type Beanstalk interface {
	DescribeApplications(names []string) ([]Application, error)
	CreateApplication(name, description string) error
	DescribeEnvironments(appName string) ([]Environment, error)
}

// Client implements Beanstalk over the AWS SDK, scoped to one region.
type Client struct {
	svc    elasticbeanstalkiface.ElasticBeanstalkAPI
	region string
}

// NewClient creates a Beanstalk client for the given profile and region.
func NewClient(profile, region string) (*Client, error) {
	sess, err := NewSession(profile, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{svc: elasticbeanstalk.New(sess), region: region}, nil
}

// DescribeApplications returns the remote applications matching the
// given names. An empty result means none of the names exist remotely.
// Errors are returned unwrapped so callers can classify them.
func (c *Client) DescribeApplications(names []string) ([]Application, error) {
	logging.Debug("Describing applications", map[string]interface{}{
		"application_names": names,
		"region":            c.region,
	})

	out, err := c.svc.DescribeApplications(&elasticbeanstalk.DescribeApplicationsInput{
		ApplicationNames: aws.StringSlice(names),
	})
	if err != nil {
		return nil, err
	}

	apps := make([]Application, 0, len(out.Applications))
	for _, app := range out.Applications {
		apps = append(apps, Application{
			Name:        aws.StringValue(app.ApplicationName),
			Description: aws.StringValue(app.Description),
		})
	}
	return apps, nil
}

// CreateApplication creates a remote application with the given name
// and description.
func (c *Client) CreateApplication(name, description string) error {
	logging.Debug("Creating application", map[string]interface{}{
		"application_name": name,
		"region":           c.region,
	})

	_, err := c.svc.CreateApplication(&elasticbeanstalk.CreateApplicationInput{
		ApplicationName: aws.String(name),
		Description:     aws.String(description),
	})
	return err
}

// DescribeEnvironments lists the environments of an application in the
// order the service reports them.
func (c *Client) DescribeEnvironments(appName string) ([]Environment, error) {
	logging.Debug("Describing environments", map[string]interface{}{
		"application_name": appName,
		"region":           c.region,
	})

	out, err := c.svc.DescribeEnvironments(&elasticbeanstalk.DescribeEnvironmentsInput{
		ApplicationName: aws.String(appName),
	})
	if err != nil {
		return nil, err
	}

	envs := make([]Environment, 0, len(out.Environments))
	for _, env := range out.Environments {
		envs = append(envs, Environment{
			Name: aws.StringValue(env.EnvironmentName),
		})
	}
	return envs, nil
}
