package propinject

import "github.com/ygrebnov/propinject/errors"

// Sentinel errors. Use errors.Is to match; every injection error matches ErrInjection.
var (
	ErrInjection        = errors.ErrInjection
	ErrUnsupportedType  = errors.ErrUnsupportedType
	ErrPropertyNotFound = errors.ErrPropertyNotFound
	ErrBadConstructor   = errors.ErrBadConstructor
	ErrBadSetterMethod  = errors.ErrBadSetterMethod
	ErrReflection       = errors.ErrReflection
)

// Typed errors. Use errors.As to inspect their fields.
type (
	UnsupportedTypeError            = errors.UnsupportedTypeError
	PropertyNotFoundError           = errors.PropertyNotFoundError
	TooManyConstructorsError        = errors.TooManyConstructorsError
	ConstructorArgNotAnnotatedError = errors.ConstructorArgNotAnnotatedError
	BadSetterMethodError            = errors.BadSetterMethodError
	ReflectionError                 = errors.ReflectionError
)
