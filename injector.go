package propinject

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/ygrebnov/propinject/internal/core"
	"github.com/ygrebnov/propinject/resolver"
)

// Injector binds property values onto structs. It holds no mutable state
// and may be shared by goroutines as long as its resolver supports concurrent reads.
type Injector struct {
	service service
}

type service interface {
	Construct(typ reflect.Type) (reflect.Value, error)
	Populate(ptr reflect.Value) error
}

func newService(r resolver.Resolver, logger *zap.Logger) service {
	return core.NewService(r, logger)
}

// Bind builds a new T and binds properties onto it.
//
// If *T implements binding.ConstructorProvider, its single declared constructor is called with
// arguments resolved from its parameter directives; otherwise T starts from its zero value.
// The result is then populated as by Populate.
func Bind[T any](inj *Injector) (*T, error) {
	// The zero value of *T is never dereferenced.
	var zero *T
	v, err := inj.service.Construct(reflect.TypeOf(zero).Elem())
	if err != nil {
		return nil, err
	}
	return v.Interface().(*T), nil
}

// Populate binds properties onto obj, which must be a non-nil pointer to a struct.
// Fields tagged `property:"key[,optional]"` are assigned first, in declaration order;
// setters declared through binding.SetterProvider are invoked afterwards.
// Populate is not transactional: on failure, fields assigned before the failing one keep their values.
func (inj *Injector) Populate(obj any) error {
	return inj.service.Populate(reflect.ValueOf(obj))
}
