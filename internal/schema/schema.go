// Package schema checks decoded JSON objects against a fixed, ordered
// property list. Existing clients assert on the violation messages, so
// both the wording and the property order are part of the external
// contract and must not change.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
)

// Type is the JSON-Schema primitive type a property must have.
type Type string

const (
	String  Type = "string"
	Integer Type = "integer"
)

// Property is one required property of an object schema.
type Property struct {
	Name string
	Type Type
}

// Schema is an object schema: a list of required, typed properties in
// declaration order. Unknown properties on the instance are ignored.
type Schema struct {
	Properties []Property
}

// Validate checks instance against the schema and returns one violation
// string per failing property, in declared property order. The result is
// empty iff the instance conforms.
func (s Schema) Validate(instance map[string]any) []string {
	var violations []string
	for _, p := range s.Properties {
		v, ok := instance[p.Name]
		if !ok {
			violations = append(violations, fmt.Sprintf("instance requires property %q", p.Name))
			continue
		}
		if !hasType(v, p.Type) {
			violations = append(violations, fmt.Sprintf("instance.%s is not of a type(s) %s", p.Name, p.Type))
		}
	}
	return violations
}

func hasType(v any, t Type) bool {
	switch t {
	case String:
		_, ok := v.(string)
		return ok
	case Integer:
		return isIntegral(v)
	}
	return false
}

// isIntegral accepts JSON numbers with no fractional part. Bodies decoded
// with json.Decoder.UseNumber arrive as json.Number; values built directly
// in Go (tests, fixtures) may be int or float64.
func isIntegral(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return true
		}
		f, err := n.Float64()
		return err == nil && f == math.Trunc(f)
	case float64:
		return n == math.Trunc(n)
	case int:
		return true
	case int64:
		return true
	}
	return false
}
