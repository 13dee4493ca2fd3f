package beca

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/junioryono/beca/store"
)

// Connector opens the database connection. store.Connect is the default.
type Connector func(ctx context.Context, uri string, opts ...*options.ClientOptions) (*mongo.Client, error)

// Option configures CreateDependencies.
type Option interface {
	apply(*containerOptions)
}

// containerOptions holds container configuration.
type containerOptions struct {
	logger        *zap.Logger
	connector     Connector
	clientOptions []*options.ClientOptions
}

func defaultOptions() *containerOptions {
	return &containerOptions{
		logger:    zap.NewNop(),
		connector: store.Connect,
	}
}

// optionFunc adapts a function to Option.
type optionFunc func(*containerOptions)

func (f optionFunc) apply(opts *containerOptions) {
	f(opts)
}

// WithLogger sets the logger used while building. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(opts *containerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithConnector replaces the connection factory.
func WithConnector(connector Connector) Option {
	return optionFunc(func(opts *containerOptions) {
		opts.connector = connector
	})
}

// WithClientOptions adds driver options applied after the connection URL.
func WithClientOptions(clientOptions ...*options.ClientOptions) Option {
	return optionFunc(func(opts *containerOptions) {
		opts.clientOptions = append(opts.clientOptions, clientOptions...)
	})
}
