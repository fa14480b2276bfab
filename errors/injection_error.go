package errors

import (
	"fmt"
	"strings"
)

// MemberKind tells which kind of target member an error refers to.
type MemberKind string

const (
	MemberField     MemberKind = "Field"
	MemberParameter MemberKind = "Parameter"
)

// UnsupportedTypeError reports a bound member whose declared type is not one of the supported scalars.
type UnsupportedTypeError struct {
	Kind MemberKind // Field for struct fields, Parameter for constructor and setter parameters
	Name string     // member description, e.g. Model.Date or Model.SetDate
	Type string     // declared type as printed by reflect
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s type not supported: %s", e.Kind, e.Type)
}

func (e *UnsupportedTypeError) Unwrap() []error {
	return []error{ErrInjection, ErrUnsupportedType}
}

// PropertyNotFoundError reports a required key the resolver could not answer.
type PropertyNotFoundError struct {
	Key string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("Property not found: '%s'", e.Key)
}

func (e *PropertyNotFoundError) Unwrap() []error {
	return []error{ErrInjection, ErrPropertyNotFound}
}

// TooManyConstructorsError reports a type declaring more than one constructor.
type TooManyConstructorsError struct {
	Count int
}

func (e *TooManyConstructorsError) Error() string {
	return fmt.Sprintf("Too many constructors: %d", e.Count)
}

func (e *TooManyConstructorsError) Unwrap() []error {
	return []error{ErrInjection, ErrBadConstructor}
}

// ConstructorArgNotAnnotatedError reports a constructor parameter without a binding directive.
type ConstructorArgNotAnnotatedError struct {
	Parameter string
}

func (e *ConstructorArgNotAnnotatedError) Error() string {
	return "Parameter not annotated: " + e.Parameter
}

func (e *ConstructorArgNotAnnotatedError) Unwrap() []error {
	return []error{ErrInjection, ErrBadConstructor}
}

// BadSetterMethodError reports a bound setter whose arity is not exactly one.
type BadSetterMethodError struct {
	Method string
	Arity  int
}

func (e *BadSetterMethodError) Error() string {
	if e.Arity < 1 {
		return "No arguments: " + e.Method
	}
	return fmt.Sprintf("Too many arguments: %s: %d", e.Method, e.Arity)
}

func (e *BadSetterMethodError) Unwrap() []error {
	return []error{ErrInjection, ErrBadSetterMethod}
}

// ReflectionError wraps failures of the reflective machinery itself:
// construction, invocation, access and resolver conversion failures.
type ReflectionError struct {
	Cause error
}

func (e *ReflectionError) Error() string {
	var b strings.Builder
	b.WriteString("Reflection error")
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ReflectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInjection, ErrReflection}
	}
	return []error{ErrInjection, ErrReflection, e.Cause}
}
