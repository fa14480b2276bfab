package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/propinject/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Every typed injection error matches ErrInjection and its kind sentinel via errors.Is.
var (
	ErrInjection        = namespace.NewError("injection failed")
	ErrUnsupportedType  = namespace.NewError("unsupported type")
	ErrPropertyNotFound = namespace.NewError("property not found")
	ErrBadConstructor   = namespace.NewError("bad constructor")
	ErrBadSetterMethod  = namespace.NewError("bad setter method")
	ErrReflection       = namespace.NewError("reflection error")
)

// Causes wrapped by ReflectionError or returned by property sources.
var (
	ErrNilObject         = namespace.NewError("nil object")
	ErrNotStructPtr      = namespace.NewError("object must be a non-nil pointer to struct")
	ErrNotFunc           = namespace.NewError("constructor must be a function")
	ErrConstructorArity  = namespace.NewError("constructor arity mismatch")
	ErrConstructorResult = namespace.NewError("constructor result mismatch")
	ErrConstructorNil    = namespace.NewError("constructor returned nil")
	ErrSetterNotFound    = namespace.NewError("setter method not found")
	ErrInvocation        = namespace.NewError("invocation failed")
	ErrConversion        = namespace.NewError("cannot convert property value")
	ErrSourceUnavailable = namespace.NewError("cannot load property source")
	ErrSourceUnsupported = namespace.NewError("unsupported property source value")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentMember   = "member"
	keySegmentProperty = "property"
	keySegmentSource   = "source"
)

// Exported structured error field keys
var (
	ErrorFieldMemberName = newKey("name", keySegmentMember) // propinject.member.name
)

var (
	ErrorFieldPropertyKey   = newKey("key", keySegmentProperty)         // propinject.property.key
	ErrorFieldPropertyValue = newKey("value", keySegmentProperty)       // propinject.property.value
	ErrorFieldTargetType    = newKey("target_type", keySegmentProperty) // propinject.property.target_type
)

var (
	ErrorFieldSourcePath = newKey("path", keySegmentSource) // propinject.source.path
)

var (
	ErrorFieldObjectType = newKey("object_type")
	ErrorFieldCause      = newKey("cause")
)
