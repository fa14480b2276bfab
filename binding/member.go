package binding

// Constructor declares a function building the target type and the directives of its parameters,
// in parameter order. Fn must return T or *T, optionally followed by an error.
// A missing or zero Directive marks the corresponding parameter as not annotated.
type Constructor struct {
	Fn     any
	Params []Directive
}

// NewConstructor declares fn as a constructor whose parameters are bound by params.
func NewConstructor(fn any, params ...Directive) Constructor {
	return Constructor{Fn: fn, Params: params}
}

// ConstructorProvider is implemented by target types that are built through a constructor
// instead of their zero value. PropertyConstructors is called on a zero *T and must not
// depend on instance state. Returning more than one constructor is an error.
type ConstructorProvider interface {
	PropertyConstructors() []Constructor
}

// Setter declares an exported method, taking exactly one parameter, bound to a property.
type Setter struct {
	Method    string
	Directive Directive
}

// NewSetter declares method as a setter bound by d.
func NewSetter(method string, d Directive) Setter {
	return Setter{Method: method, Directive: d}
}

// SetterProvider is implemented by target types exposing bound setter methods.
// Setters are invoked in the returned order, after all tagged fields are assigned.
type SetterProvider interface {
	PropertySetters() []Setter
}
