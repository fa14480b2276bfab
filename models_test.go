package propinject_test

import (
	"time"

	"github.com/ygrebnov/propinject/binding"
)

// fieldModel binds every supported kind through struct tags, both as values and pointers.
type fieldModel struct {
	FoundString         *string  `property:"test.found.string"`
	FoundInteger        *int32   `property:"test.found.integer"`
	FoundIntegerValue   int32    `property:"test.found.integer"`
	FoundLong           *int64   `property:"test.found.long"`
	FoundLongValue      int64    `property:"test.found.long"`
	FoundDouble         *float64 `property:"test.found.double"`
	FoundDoubleValue    float64  `property:"test.found.double"`
	FoundFloat          *float32 `property:"test.found.float"`
	FoundFloatValue     float32  `property:"test.found.float"`
	FoundBoolean        *bool    `property:"test.found.boolean"`
	foundBooleanPrivate bool     `property:"test.found.boolean"`
}

// boundValues is the common view the binding scenarios are checked against.
type boundValues struct {
	str     string
	integer int32
	long    int64
	double  float64
	float   float32
	boolean bool
	// mismatch is set when the value and pointer forms of the same key disagree.
	mismatch bool
}

func (m *fieldModel) values() boundValues {
	mismatch := m.FoundIntegerValue != deref(m.FoundInteger) ||
		m.FoundLongValue != deref(m.FoundLong) ||
		m.FoundDoubleValue != deref(m.FoundDouble) ||
		m.FoundFloatValue != deref(m.FoundFloat)

	return boundValues{
		str:      deref(m.FoundString),
		integer:  deref(m.FoundInteger),
		long:     deref(m.FoundLong),
		double:   deref(m.FoundDouble),
		float:    deref(m.FoundFloat),
		boolean:  deref(m.FoundBoolean) && m.foundBooleanPrivate,
		mismatch: mismatch,
	}
}

// setterModel binds every supported kind through setters.
type setterModel struct {
	str     string
	integer int32
	long    *int64
	double  float64
	float   float32
	boolean bool
}

func (m *setterModel) SetString(v string)  { m.str = v }
func (m *setterModel) SetInteger(v int32)  { m.integer = v }
func (m *setterModel) SetLong(v *int64)    { m.long = v }
func (m *setterModel) SetDouble(v float64) { m.double = v }
func (m *setterModel) SetFloat(v float32)  { m.float = v }
func (m *setterModel) SetBoolean(v bool)   { m.boolean = v }

func (*setterModel) PropertySetters() []binding.Setter {
	return []binding.Setter{
		binding.NewSetter("SetString", binding.Property("test.found.string")),
		binding.NewSetter("SetInteger", binding.Property("test.found.integer")),
		binding.NewSetter("SetLong", binding.Property("test.found.long")),
		binding.NewSetter("SetDouble", binding.Property("test.found.double")),
		binding.NewSetter("SetFloat", binding.Property("test.found.float")),
		binding.NewSetter("SetBoolean", binding.Property("test.found.boolean")),
	}
}

func (m *setterModel) values() boundValues {
	return boundValues{
		str:     m.str,
		integer: m.integer,
		long:    deref(m.long),
		double:  m.double,
		float:   m.float,
		boolean: m.boolean,
	}
}

// constructorModel binds every supported kind through its constructor.
type constructorModel struct {
	str     string
	integer int32
	long    int64
	double  *float64
	float   float32
	boolean bool
}

func newConstructorModel(str string, integer int32, long int64, double *float64, float float32, boolean bool) *constructorModel {
	return &constructorModel{str: str, integer: integer, long: long, double: double, float: float, boolean: boolean}
}

func (constructorModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(newConstructorModel,
			binding.Property("test.found.string"),
			binding.Property("test.found.integer"),
			binding.Property("test.found.long"),
			binding.Property("test.found.double"),
			binding.Property("test.found.float"),
			binding.Property("test.found.boolean"),
		),
	}
}

func (m *constructorModel) values() boundValues {
	return boundValues{
		str:     m.str,
		integer: m.integer,
		long:    m.long,
		double:  deref(m.double),
		float:   m.float,
		boolean: m.boolean,
	}
}

type missingFieldModel struct {
	NotFoundString string `property:"test.not_found.string"`
}

type missingSetterModel struct {
	notFoundString string
}

func (m *missingSetterModel) SetNotFoundString(v string) { m.notFoundString = v }

func (*missingSetterModel) PropertySetters() []binding.Setter {
	return []binding.Setter{binding.NewSetter("SetNotFoundString", binding.Property("test.not_found.string"))}
}

type missingParameterModel struct {
	notFoundString string
}

func (missingParameterModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(func(s string) *missingParameterModel {
			return &missingParameterModel{notFoundString: s}
		}, binding.Property("test.not_found.string")),
	}
}

type optionalFieldModel struct {
	FoundString    *string `property:"test.found.string,optional"`
	NotFoundString *string `property:"test.not_found.string,optional"`
}

type optionalSetterModel struct {
	foundString    *string
	notFoundString *string
}

func (m *optionalSetterModel) SetFoundString(v *string)    { m.foundString = v }
func (m *optionalSetterModel) SetNotFoundString(v *string) { m.notFoundString = v }

func (*optionalSetterModel) PropertySetters() []binding.Setter {
	return []binding.Setter{
		binding.NewSetter("SetFoundString", binding.OptionalProperty("test.found.string")),
		binding.NewSetter("SetNotFoundString", binding.OptionalProperty("test.not_found.string")),
	}
}

type optionalParameterModel struct {
	foundString    *string
	notFoundString *string
}

func (optionalParameterModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(func(found, notFound *string) *optionalParameterModel {
			return &optionalParameterModel{foundString: found, notFoundString: notFound}
		}, binding.OptionalProperty("test.found.string"), binding.OptionalProperty("test.not_found.string")),
	}
}

type invalidFieldModel struct {
	Date time.Time `property:"test.found.string"`
}

type invalidSetterModel struct {
	date time.Time
}

func (m *invalidSetterModel) SetDate(v time.Time) { m.date = v }

func (*invalidSetterModel) PropertySetters() []binding.Setter {
	return []binding.Setter{binding.NewSetter("SetDate", binding.Property("test.found.string"))}
}

type invalidParameterModel struct {
	date time.Time
}

func (invalidParameterModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(func(d time.Time) *invalidParameterModel {
			return &invalidParameterModel{date: d}
		}, binding.Property("test.found.string")),
	}
}

type twoConstructorsModel struct {
	str string
}

func (twoConstructorsModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(func(s string) *twoConstructorsModel {
			return &twoConstructorsModel{str: s}
		}, binding.Property("test.found.string")),
		binding.NewConstructor(func() *twoConstructorsModel { return &twoConstructorsModel{} }),
	}
}

type unannotatedParameterModel struct{}

func (unannotatedParameterModel) PropertyConstructors() []binding.Constructor {
	return []binding.Constructor{
		binding.NewConstructor(func(string, string) *unannotatedParameterModel {
			return &unannotatedParameterModel{}
		}, binding.Property("test.found.string")),
	}
}

type noSetterArgsModel struct{}

func (*noSetterArgsModel) SetStr() {}

func (*noSetterArgsModel) PropertySetters() []binding.Setter {
	return []binding.Setter{binding.NewSetter("SetStr", binding.Property("test.found.string"))}
}

type tooManySetterArgsModel struct{}

func (*tooManySetterArgsModel) SetStr(string, string) {}

func (*tooManySetterArgsModel) PropertySetters() []binding.Setter {
	return []binding.Setter{binding.NewSetter("SetStr", binding.Property("test.found.string"))}
}

type plainModel struct {
	Str string `property:"test.found.string"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
