package enforce

import "reflect"

// Value is a validation input with its "instance vs type value" discriminant
// resolved once at the call boundary. Function signatures decompose into type
// tags, everything else travels as instances; nodes branch on the tag instead
// of re-inspecting the payload.
type Value struct {
	typ    reflect.Type // type tag when tagged; nil otherwise
	val    any
	tagged bool
}

// ValueOf wraps v as a validation input. A reflect.Type is recognized as a
// type tag; any other value is an instance.
func ValueOf(v any) Value {
	if t, ok := v.(reflect.Type); ok {
		return TypeValue(t)
	}
	return Value{val: v}
}

// TypeValue wraps a type tag as a validation input.
func TypeValue(t reflect.Type) Value { return Value{typ: t, tagged: true} }

// IsType reports whether the input is a type tag rather than an instance.
func (v Value) IsType() bool { return v.tagged }

// Interface returns the wrapped payload: the reflect.Type for a tag, the raw
// instance otherwise.
func (v Value) Interface() any {
	if v.tagged {
		return v.typ
	}
	return v.val
}

// RuntimeType is the concrete type used for conformance and consistency
// records: the tag itself for a type value, reflect.TypeOf for an instance.
// It is nil for an untyped nil instance.
func (v Value) RuntimeType() reflect.Type {
	if v.tagged {
		return v.typ
	}
	return reflect.TypeOf(v.val)
}

// sequence exposes an instance as an ordered sequence when it is one.
func (v Value) sequence() (reflect.Value, bool) {
	if v.tagged || v.val == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v.val)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

// conforms reports whether t names expected or a subtype of it. nil expected
// is the "any" sentinel. Assignability covers interface implementation; two
// sequence kinds conform regardless of element type, since elements are
// checked by the expanded children.
func conforms(t, expected reflect.Type) bool {
	if expected == nil {
		return true
	}
	if t == nil {
		return false
	}
	if t == expected || t.AssignableTo(expected) {
		return true
	}
	return isSequence(t) && isSequence(expected)
}

func isSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}

// Output is the normalized value produced by a successful validation. The
// zero Output is the unset marker and is distinct from a present nil, so a
// legitimate null in the data never reads as "no output".
type Output struct {
	value any
	set   bool
}

// Present wraps v as a set output.
func Present(v any) Output { return Output{value: v, set: true} }

// Get returns the normalized value and whether one is set.
func (o Output) Get() (any, bool) { return o.value, o.set }
