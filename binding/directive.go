package binding

import (
	"strings"

	"github.com/ygrebnov/propinject/constants"
)

// Directive names the property key a member is bound to and whether its absence is tolerated.
type Directive struct {
	Key      string
	Optional bool
}

// Property returns a required directive for key.
func Property(key string) Directive {
	return Directive{Key: key}
}

// OptionalProperty returns a directive for key that tolerates an absent value.
func OptionalProperty(key string) Directive {
	return Directive{Key: key, Optional: true}
}

// Annotated reports whether d binds anything. The zero Directive marks an unannotated constructor parameter.
func (d Directive) Annotated() bool {
	return d.Key != ""
}

func (d Directive) String() string {
	if d.Optional {
		return d.Key + "," + constants.TagOptional
	}
	return d.Key
}

// ParseTag parses a `property` struct tag value (e.g., "db.url,optional") into a Directive.
// Behavior:
//   - The first comma-separated token is the key; surrounding whitespace is trimmed.
//   - "optional" among the remaining tokens marks the directive optional; other tokens are ignored.
//   - An empty tag or "-" yields false: the field is not bound.
func ParseTag(tag string) (Directive, bool) {
	if tag == "" || tag == constants.TagSkip {
		return Directive{}, false
	}

	tokens := strings.Split(tag, ",")
	d := Directive{Key: strings.TrimSpace(tokens[0])}
	for _, tok := range tokens[1:] {
		if strings.TrimSpace(tok) == constants.TagOptional {
			d.Optional = true
		}
	}
	return d, true
}
