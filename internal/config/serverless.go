package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
}

// GetServerlessConfig reads the Lambda runtime environment
func GetServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return isRunningInLambda()
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment.
// Lambda functions share no disk or memory between invocations, so only
// DynamoDB can back them.
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	config.Storage.Type = StorageDynamoDB
	config.Log.Format = "json"
	if config.DynamoDB.Region == "" {
		config.DynamoDB.Region = GetServerlessConfig().Region
	}

	return config
}

// GetOptimizedConfig returns validated configuration for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	config = AdaptConfigForServerless(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
