package core

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/ygrebnov/propinject/binding"
	"github.com/ygrebnov/propinject/errors"
)

// member describes a bound field, constructor parameter or setter for error messages and logs.
type member struct {
	kind errors.MemberKind
	name string
}

type lookupFunc func(key string) (reflect.Value, bool, error)

// resolveValue resolves d against the resolver and returns a value assignable to t.
// Resolution steps:
//  1. A pointer type is the nullable form of its element type; further pointer levels are not unwrapped.
//  2. The (element) kind must be string, int32, int64, float64, float32 or bool; this is checked
//     before the resolver is consulted.
//  3. A present value is converted to t, allocating for pointer types.
//  4. An absent optional value yields the zero value of t: nil for pointers, the scalar zero otherwise.
//  5. An absent required value fails with a PropertyNotFoundError.
func (s *Service) resolveValue(t reflect.Type, d binding.Directive, m member) (reflect.Value, error) {
	target, nullable := t, false
	if t.Kind() == reflect.Ptr {
		target, nullable = t.Elem(), true
	}

	lookup, ok := s.lookupFor(target.Kind())
	if !ok {
		return reflect.Value{}, &errors.UnsupportedTypeError{Kind: m.kind, Name: m.name, Type: t.String()}
	}

	v, present, err := lookup(d.Key)
	if err != nil {
		return reflect.Value{}, &errors.ReflectionError{Cause: err}
	}
	s.logger.Debug(
		"binding property",
		zap.String("member", m.name),
		zap.String("key", d.Key),
		zap.Bool("present", present),
	)

	if !present {
		if !d.Optional {
			return reflect.Value{}, &errors.PropertyNotFoundError{Key: d.Key}
		}
		return reflect.Zero(t), nil
	}

	// Convert handles named types
	v = v.Convert(target)
	if !nullable {
		return v, nil
	}
	p := reflect.New(target)
	p.Elem().Set(v)
	return p, nil
}

// lookupFor dispatches a scalar kind to the matching resolver method.
func (s *Service) lookupFor(k reflect.Kind) (lookupFunc, bool) {
	switch k {
	case reflect.String:
		return lookup(s.resolver.String), true
	case reflect.Int32:
		return lookup(s.resolver.Int32), true
	case reflect.Int64:
		return lookup(s.resolver.Int64), true
	case reflect.Float64:
		return lookup(s.resolver.Float64), true
	case reflect.Float32:
		return lookup(s.resolver.Float32), true
	case reflect.Bool:
		return lookup(s.resolver.Bool), true
	default:
		return nil, false
	}
}

func lookup[T any](fn func(key string) (T, bool, error)) lookupFunc {
	return func(key string) (reflect.Value, bool, error) {
		v, ok, err := fn(key)
		if err != nil || !ok {
			return reflect.Value{}, ok, err
		}
		return reflect.ValueOf(v), true, nil
	}
}
