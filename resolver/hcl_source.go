package resolver

import (
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ygrebnov/errorc"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/ygrebnov/propinject/errors"
)

// HCLSource serves properties from the top-level attributes of an HCL file.
// Object and map values are flattened into dotted keys:
//
//	server = { port = 8080 }
//
// answers "server.port" with "8080".
type HCLSource struct {
	values map[string]string
}

// NewHCLFileSource parses and evaluates the HCL file at path. Expressions are evaluated
// without variables or functions; null values are skipped.
func NewHCLFileSource(path string) (*HCLSource, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, sourceError(path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, sourceError(path, diags)
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, sourceError(path, diags)
		}
		if err := flattenValue(name, val, values); err != nil {
			return nil, err
		}
	}
	return &HCLSource{values: values}, nil
}

func (s *HCLSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// flattenValue writes the primitive leaves of v under dotted keys rooted at key.
func flattenValue(key string, v cty.Value, out map[string]string) error {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	ty := v.Type()
	switch {
	case ty.IsPrimitiveType():
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return errorc.With(
				errors.ErrSourceUnsupported,
				errorc.String(errors.ErrorFieldPropertyKey, key),
				errorc.Error(errors.ErrorFieldCause, err),
			)
		}
		out[key] = s.AsString()
		return nil

	case ty.IsObjectType() || ty.IsMapType():
		it := v.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			if err := flattenValue(key+"."+k.AsString(), ev, out); err != nil {
				return err
			}
		}
		return nil

	default:
		return errorc.With(
			errors.ErrSourceUnsupported,
			errorc.String(errors.ErrorFieldPropertyKey, key),
			errorc.String(errors.ErrorFieldTargetType, ty.FriendlyName()),
		)
	}
}

func sourceError(path string, cause error) error {
	return errorc.With(
		errors.ErrSourceUnavailable,
		errorc.String(errors.ErrorFieldSourcePath, path),
		errorc.Error(errors.ErrorFieldCause, cause),
	)
}
