package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

const defaultRegion = "us-east-1"

// LoadAWSConfig loads the default credential chain for region. A non-empty
// endpointOverride points every client at it (LocalStack during development).
func LoadAWSConfig(ctx context.Context, region, endpointOverride string) (sdkaws.Config, error) {
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if endpointOverride != "" {
		opts = append(opts, config.WithBaseEndpoint(endpointOverride))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cfg, nil
}
