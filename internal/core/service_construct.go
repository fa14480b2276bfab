package core

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/propinject/binding"
	"github.com/ygrebnov/propinject/constants"
	"github.com/ygrebnov/propinject/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Construct builds a new value of the struct type typ and populates it.
// It returns a pointer to the new value.
//
// Constructors are validated completely before any value is resolved:
//  1. More than one declared constructor fails with TooManyConstructorsError.
//  2. Every parameter of the constructor must carry a directive (ConstructorArgNotAnnotatedError).
//  3. The constructor signature must be usable (ReflectionError otherwise).
//
// A type declaring no constructor is built from its zero value.
func (s *Service) Construct(typ reflect.Type) (reflect.Value, error) {
	if typ.Kind() != reflect.Struct {
		return reflect.Value{}, &errors.ReflectionError{
			Cause: errorc.With(errors.ErrNotStructPtr, errorc.String(errors.ErrorFieldObjectType, typ.String())),
		}
	}

	constructors, err := declaredConstructors(typ)
	if err != nil {
		return reflect.Value{}, err
	}
	if len(constructors) > 1 {
		return reflect.Value{}, &errors.TooManyConstructorsError{Count: len(constructors)}
	}

	ptr := reflect.New(typ)
	if len(constructors) == 1 {
		c := constructors[0]
		fn, err := validateConstructor(typ, c)
		if err != nil {
			return reflect.Value{}, err
		}
		args, err := s.resolveArguments(typ, fn.Type(), c.Params)
		if err != nil {
			return reflect.Value{}, err
		}
		if ptr, err = invokeConstructor(typ, fn, args); err != nil {
			return reflect.Value{}, err
		}
	}

	if err := s.Populate(ptr); err != nil {
		return reflect.Value{}, err
	}
	return ptr, nil
}

// declaredConstructors asks a zero *typ for its constructors.
func declaredConstructors(typ reflect.Type) ([]binding.Constructor, error) {
	if p, ok := reflect.New(typ).Interface().(binding.ConstructorProvider); ok {
		return declared(typ.Name()+".PropertyConstructors", p.PropertyConstructors)
	}
	return nil, nil
}

// declared calls a discovery method, turning a panic into a ReflectionError.
func declared[T any](name string, fn func() []T) (out []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, invocationError(name, fmt.Errorf("panic: %v", r))
		}
	}()
	return fn(), nil
}

// validateConstructor checks that every parameter of c is annotated and that c.Fn
// has a usable signature, returning c.Fn as a reflect.Value.
func validateConstructor(typ reflect.Type, c binding.Constructor) (reflect.Value, error) {
	fn := reflect.ValueOf(c.Fn)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, constructorError(typ, errors.ErrNotFunc)
	}

	ft := fn.Type()
	for i := 0; i < ft.NumIn(); i++ {
		if i >= len(c.Params) || !c.Params[i].Annotated() {
			return reflect.Value{}, &errors.ConstructorArgNotAnnotatedError{Parameter: parameterName(i)}
		}
	}
	if len(c.Params) > ft.NumIn() {
		return reflect.Value{}, constructorError(typ, errors.ErrConstructorArity)
	}

	if !returnsType(ft, typ) {
		return reflect.Value{}, constructorError(typ, errors.ErrConstructorResult)
	}
	return fn, nil
}

// returnsType reports whether ft returns typ or *typ, optionally followed by an error.
func returnsType(ft, typ reflect.Type) bool {
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return false
		}
	default:
		return false
	}
	out := ft.Out(0)
	return out == typ || out == reflect.PointerTo(typ)
}

// resolveArguments resolves the constructor arguments positionally.
func (s *Service) resolveArguments(typ, ft reflect.Type, params []binding.Directive) ([]reflect.Value, error) {
	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		v, err := s.resolveValue(ft.In(i), params[i], member{
			kind: errors.MemberParameter,
			name: typ.Name() + "." + parameterName(i),
		})
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// invokeConstructor calls fn and returns the constructed value as a pointer.
func invokeConstructor(typ reflect.Type, fn reflect.Value, args []reflect.Value) (reflect.Value, error) {
	out, err := invoke(typ.Name()+" constructor", fn, args)
	if err != nil {
		return reflect.Value{}, err
	}

	res := out[0]
	if res.Kind() == reflect.Ptr {
		if res.IsNil() {
			return reflect.Value{}, constructorError(typ, errors.ErrConstructorNil)
		}
		return res, nil
	}
	ptr := reflect.New(typ)
	ptr.Elem().Set(res)
	return ptr, nil
}

// invoke calls fn, turning a panic or a non-nil trailing error result into a ReflectionError.
func invoke(name string, fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = invocationError(name, fmt.Errorf("panic: %v", r))
		}
	}()

	out = fn.Call(args)
	if n := len(out); n > 0 && fn.Type().Out(n-1) == errorType && !out[n-1].IsNil() {
		return nil, invocationError(name, out[n-1].Interface().(error))
	}
	return out, nil
}

func invocationError(name string, cause error) error {
	return &errors.ReflectionError{
		Cause: errorc.With(
			errors.ErrInvocation,
			errorc.String(errors.ErrorFieldMemberName, name),
			errorc.Error(errors.ErrorFieldCause, cause),
		),
	}
}

func constructorError(typ reflect.Type, sentinel error) error {
	return &errors.ReflectionError{
		Cause: errorc.With(sentinel, errorc.String(errors.ErrorFieldObjectType, typ.String())),
	}
}

func parameterName(i int) string {
	return fmt.Sprintf(constants.ParameterNameFormat, i)
}
