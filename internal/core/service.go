package core

import (
	"go.uber.org/zap"

	"github.com/ygrebnov/propinject/resolver"
)

type Service struct {
	// resolver answers every typed lookup; the service never writes to it.
	resolver resolver.Resolver
	logger   *zap.Logger
}

// NewService creates a Service resolving values through r.
// A nil logger disables logging.
func NewService(r resolver.Resolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver: r,
		logger:   logger,
	}
}
