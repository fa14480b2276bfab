package propinject

import (
	"go.uber.org/zap"

	"github.com/ygrebnov/propinject/resolver"
)

// New creates an Injector resolving values through r.
func New(r resolver.Resolver, opts ...Option) *Injector {
	if r == nil {
		panic("propinject: resolver is nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Injector{service: newService(r, o.logger)}
}

// FromProperties creates an Injector over an in-memory set of properties.
func FromProperties(props map[string]string, opts ...Option) *Injector {
	return New(resolver.New(resolver.WithProperties(props)), opts...)
}

type options struct {
	logger *zap.Logger
}

// Option configures an Injector at construction time.
type Option func(*options)

// WithLogger makes the Injector log every binding at debug level. Values are not logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}
