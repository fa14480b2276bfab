package resolver

import "go.uber.org/zap"

// LoggingInspector logs every resolved key at debug level.
func LoggingInspector(logger *zap.Logger) Inspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(key, value string) {
		logger.Debug("property resolved", zap.String("key", key), zap.String("value", value))
	}
}

// LoggingNotFoundHandler logs every missing key at warn level.
func LoggingNotFoundHandler(logger *zap.Logger) NotFoundHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(key string) {
		logger.Warn("property not found", zap.String("key", key))
	}
}

// WithLogger installs LoggingInspector and LoggingNotFoundHandler over logger,
// replacing any inspector or not-found handler set earlier.
func WithLogger(logger *zap.Logger) Option {
	return func(r *PropertyResolver) {
		r.inspector = LoggingInspector(logger)
		r.notFound = LoggingNotFoundHandler(logger)
	}
}
