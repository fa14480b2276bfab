package core

import (
	"reflect"
	"unsafe"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/propinject/binding"
	"github.com/ygrebnov/propinject/errors"
)

// Populate assigns every bound field of the struct ptr points to, then invokes every bound setter.
// The first failure aborts the operation; fields assigned before it keep their new values.
func (s *Service) Populate(ptr reflect.Value) error {
	rv, err := structValue(ptr)
	if err != nil {
		return err
	}
	if err := s.populateFields(rv); err != nil {
		return err
	}
	return s.populateSetters(ptr)
}

// structValue validates that ptr is a non-nil pointer to a struct and returns the struct value.
func structValue(ptr reflect.Value) (reflect.Value, error) {
	if !ptr.IsValid() || (ptr.Kind() == reflect.Ptr && ptr.IsNil()) {
		return reflect.Value{}, &errors.ReflectionError{Cause: errors.ErrNilObject}
	}
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, &errors.ReflectionError{
			Cause: errorc.With(errors.ErrNotStructPtr, errorc.String(errors.ErrorFieldObjectType, ptr.Type().String())),
		}
	}
	return ptr.Elem(), nil
}

// populateFields walks the declared fields of rv in order and assigns each field tagged
// with `property` as soon as its value is resolved. Embedded structs are not descended into.
func (s *Service) populateFields(rv reflect.Value) error {
	for _, f := range boundFields(rv.Type()) {
		v, err := s.resolveValue(f.typ, f.directive, member{
			kind: errors.MemberField,
			name: f.name,
		})
		if err != nil {
			return err
		}
		settable(rv.Field(f.index)).Set(v)
	}
	return nil
}

// settable returns fv when it can be set directly. Unexported fields are returned as a view
// of the same memory that is only used for the single assignment at hand.
func settable(fv reflect.Value) reflect.Value {
	if fv.CanSet() {
		return fv
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
}

// populateSetters invokes the setters declared by a SetterProvider. All setters are checked
// for existence and arity before the first one is resolved.
func (s *Service) populateSetters(ptr reflect.Value) error {
	p, ok := ptr.Interface().(binding.SetterProvider)
	if !ok {
		return nil
	}

	typ := ptr.Elem().Type()
	setters, err := declared(typ.Name()+".PropertySetters", p.PropertySetters)
	if err != nil {
		return err
	}
	methods := make([]reflect.Value, len(setters))
	for i, st := range setters {
		m, err := setterMethod(ptr, st.Method)
		if err != nil {
			return err
		}
		methods[i] = m
	}

	for i, st := range setters {
		name := typ.Name() + "." + st.Method
		v, err := s.resolveValue(methods[i].Type().In(0), st.Directive, member{
			kind: errors.MemberParameter,
			name: name,
		})
		if err != nil {
			return err
		}
		if _, err := invoke(name, methods[i], []reflect.Value{v}); err != nil {
			return err
		}
	}
	return nil
}

// setterMethod looks up the exported method name on ptr and checks it takes exactly one argument.
func setterMethod(ptr reflect.Value, name string) (reflect.Value, error) {
	m := ptr.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, &errors.ReflectionError{
			Cause: errorc.With(
				errors.ErrSetterNotFound,
				errorc.String(errors.ErrorFieldMemberName, name),
				errorc.String(errors.ErrorFieldObjectType, ptr.Type().String()),
			),
		}
	}
	if n := m.Type().NumIn(); n != 1 {
		return reflect.Value{}, &errors.BadSetterMethodError{Method: name, Arity: n}
	}
	return m, nil
}
