package constants

const Namespace = "propinject"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

const (
	// TagProperty is the struct tag carrying a binding directive.
	TagProperty = "property"
	// TagOptional is the directive flag tolerating an absent key.
	TagOptional = "optional"
	// TagSkip disables binding for a field.
	TagSkip = "-"
)

// ParameterNameFormat names constructor parameters; Go keeps no parameter names at runtime.
const ParameterNameFormat = "arg%d"
