package enforce

import "reflect"

// classNode matches data against a concrete expected class. When the input is
// a sequence and a template child was supplied, the child list expands to one
// entry per element so each position is validated independently.
type classNode struct {
	node
}

// Class returns a node matching values whose runtime type is t or assignable
// to it. Class nodes normally carry no children; supplying a single template
// child makes the node validate sequences element-wise by repeating that
// child per element.
func Class(t reflect.Type, children ...Node) Node {
	return &classNode{node: newNode("Class", t, true, false, children...)}
}

// ClassOf is Class with the expected type taken from the type parameter.
func ClassOf[T any](children ...Node) Node {
	return Class(reflect.TypeOf((*T)(nil)).Elem(), children...)
}

// SequenceOf returns a Class over []any whose elements must all satisfy elem.
func SequenceOf(elem Node) Node {
	return Class(reflect.TypeOf([]any(nil)), elem)
}

func (c *classNode) checkType(v Value, _ bool) bool {
	return conforms(v.RuntimeType(), c.expected)
}

// decompose expands the child list for sequence inputs. Expansion always
// rebuilds from the template's single child, so repeated validations with
// different lengths stay correct without an intervening Reset.
func (c *classNode) decompose(v Value) ([]Value, error) {
	seq, ok := v.sequence()
	if !ok || len(c.template) == 0 {
		return nil, nil
	}
	elem := c.template[0]
	n := seq.Len()
	c.children = make([]Node, n)
	propagated := make([]Value, n)
	for i := 0; i < n; i++ {
		c.children[i] = elem
		propagated[i] = ValueOf(seq.Index(i).Interface())
	}
	return propagated, nil
}

// recombine passes the original data through unchanged; a class node performs
// no normalization.
func (c *classNode) recombine(_ []Output, original Value) Output {
	return Present(original.Interface())
}
