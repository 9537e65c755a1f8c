package dynamodb

import (
	"errors"
	"net/url"
)

// Option is a functional option for configuring a [Client].
type Option func(*Options)

// Options holds the configuration for a [Client].
type Options struct {
	dynamoDBAPI API
	endpoint    string
}

func newOptions() *Options {
	return &Options{}
}

func (o *Options) validate() error {
	if o.endpoint != "" {
		u, err := url.Parse(o.endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("endpoint must be an absolute URL")
		}
	}

	return nil
}

// WithAPI sets a custom [API] implementation. This is useful when a custom
// DynamoDB configuration is required, or for injecting mocks in tests.
func WithAPI(api API) Option {
	return func(o *Options) {
		o.dynamoDBAPI = api
	}
}

// WithEndpoint overrides the DynamoDB endpoint, e.g. http://localhost:8000
// for DynamoDB Local. Ignored when [WithAPI] is used.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.endpoint = endpoint
	}
}
