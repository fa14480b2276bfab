package core

import (
	"reflect"

	"github.com/ygrebnov/propinject/binding"
	"github.com/ygrebnov/propinject/constants"
)

// boundField is a struct field carrying a property directive.
type boundField struct {
	index     int
	name      string
	typ       reflect.Type
	directive binding.Directive
}

// boundFields returns the fields of typ tagged with `property`, in declaration order.
// Tags are parsed on every call; nothing is retained between calls.
func boundFields(typ reflect.Type) []boundField {
	var out []boundField
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		d, ok := binding.ParseTag(field.Tag.Get(constants.TagProperty))
		if !ok {
			continue
		}
		out = append(out, boundField{
			index:     i,
			name:      typ.Name() + "." + field.Name,
			typ:       field.Type,
			directive: d,
		})
	}
	return out
}
