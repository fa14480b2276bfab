package resolver

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/propinject/errors"
)

// Resolver answers typed lookups of property keys. ok is false when the key is absent;
// err reports a value that is present but cannot be converted to the requested type.
// Implementations must be safe for concurrent reads if injectors are shared across goroutines.
type Resolver interface {
	String(key string) (value string, ok bool, err error)
	Int32(key string) (value int32, ok bool, err error)
	Int64(key string) (value int64, ok bool, err error)
	Float64(key string) (value float64, ok bool, err error)
	Float32(key string) (value float32, ok bool, err error)
	Bool(key string) (value bool, ok bool, err error)
}

// Inspector observes every resolved key and its (transformed) raw value.
type Inspector func(key, value string)

// NotFoundHandler observes every key no source could answer.
type NotFoundHandler func(key string)

// Transformer rewrites a raw value before it is converted.
type Transformer func(value string) string

// PropertyResolver resolves keys against an ordered list of sources; the first source
// holding a key wins. It is immutable once built and safe for concurrent use when its
// sources and callbacks are.
type PropertyResolver struct {
	sources     []Source
	inspector   Inspector
	notFound    NotFoundHandler
	transformer Transformer
}

// Option configures a PropertyResolver at construction time.
type Option func(*PropertyResolver)

// New builds a PropertyResolver from opts.
func New(opts ...Option) *PropertyResolver {
	r := &PropertyResolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithSource appends src to the lookup order.
func WithSource(src Source) Option {
	return func(r *PropertyResolver) {
		if src != nil {
			r.sources = append(r.sources, src)
		}
	}
}

// WithProperties appends an in-memory source holding props.
func WithProperties(props map[string]string) Option {
	return WithSource(MapSource(props))
}

// WithInspector installs fn as the resolved-value observer.
func WithInspector(fn Inspector) Option {
	return func(r *PropertyResolver) { r.inspector = fn }
}

// WithNotFoundHandler installs fn as the missing-key observer.
func WithNotFoundHandler(fn NotFoundHandler) Option {
	return func(r *PropertyResolver) { r.notFound = fn }
}

// WithTransformer installs fn to rewrite raw values before conversion.
func WithTransformer(fn Transformer) Option {
	return func(r *PropertyResolver) { r.transformer = fn }
}

func (r *PropertyResolver) String(key string) (string, bool, error) {
	v, ok := r.lookup(key)
	return v, ok, nil
}

func (r *PropertyResolver) Int32(key string) (int32, bool, error) {
	return get(r, key, toInt32)
}

func (r *PropertyResolver) Int64(key string) (int64, bool, error) {
	return get(r, key, toInt64)
}

func (r *PropertyResolver) Float64(key string) (float64, bool, error) {
	return get(r, key, cast.ToFloat64E)
}

func (r *PropertyResolver) Float32(key string) (float32, bool, error) {
	return get(r, key, cast.ToFloat32E)
}

func (r *PropertyResolver) Bool(key string) (bool, bool, error) {
	return get(r, key, cast.ToBoolE)
}

// lookup returns the raw value of key from the first source holding it, after transformation.
func (r *PropertyResolver) lookup(key string) (string, bool) {
	for _, src := range r.sources {
		v, ok := src.Lookup(key)
		if !ok {
			continue
		}
		if r.transformer != nil {
			v = r.transformer(v)
		}
		if r.inspector != nil {
			r.inspector(key, v)
		}
		return v, true
	}
	if r.notFound != nil {
		r.notFound(key)
	}
	return "", false
}

func get[T any](r *PropertyResolver, key string, convert func(any) (T, error)) (T, bool, error) {
	var zero T
	raw, ok := r.lookup(key)
	if !ok {
		return zero, false, nil
	}
	v, err := convert(strings.TrimSpace(raw))
	if err != nil {
		return zero, true, errorc.With(
			errors.ErrConversion,
			errorc.String(errors.ErrorFieldPropertyKey, key),
			errorc.String(errors.ErrorFieldPropertyValue, raw),
			errorc.String(errors.ErrorFieldTargetType, fmt.Sprintf("%T", zero)),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return v, true, nil
}
