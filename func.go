package enforce

import "reflect"

// funcNode validates that a candidate function's declared parameter and
// result types structurally match an expected signature. The declared types
// are handed to the children as type tags, so plain Class children perform
// the matching.
type funcNode struct {
	node
}

// Func returns a node matching function values whose declared signature
// satisfies params then results, positionally. Children must cover every
// declared parameter and result: a candidate with a different arity is a
// decomposition defect, not a mismatch, mirroring how signatures are bound
// one child per declared type.
func Func(params []Node, results ...Node) Node {
	children := append(append([]Node(nil), params...), results...)
	return &funcNode{node: newNode("Func", reflect.TypeOf(func() {}), true, false, children...)}
}

// checkType accepts any invocable input: a function instance or a function
// type tag.
func (f *funcNode) checkType(v Value, _ bool) bool {
	t := v.RuntimeType()
	return t != nil && t.Kind() == reflect.Func
}

// decompose introspects the candidate's declared parameter types in
// declaration order, then appends its declared result types.
func (f *funcNode) decompose(v Value) ([]Value, error) {
	t := v.RuntimeType()
	sig := make([]Value, 0, t.NumIn()+t.NumOut())
	for i := 0; i < t.NumIn(); i++ {
		sig = append(sig, TypeValue(t.In(i)))
	}
	for i := 0; i < t.NumOut(); i++ {
		sig = append(sig, TypeValue(t.Out(i)))
	}
	return sig, nil
}

// recombine returns the validated function as-is; it is not rebuilt.
func (f *funcNode) recombine(_ []Output, original Value) Output {
	return Present(original.Interface())
}
