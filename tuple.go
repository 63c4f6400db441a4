package enforce

import "reflect"

// tupleNode is a strict AND over a fixed-arity positional sequence. It
// rebuilds a []any from its children's outputs on success.
type tupleNode struct {
	node
}

// Tuple returns a node matching sequences with exactly one element per child,
// validated positionally.
func Tuple(elems ...Node) Node {
	return &tupleNode{node: newNode("Tuple", reflect.TypeOf([]any(nil)), true, false, elems...)}
}

// checkType requires a sequence whose length equals the current arity. A
// length mismatch is an ordinary failure, not a defect.
func (t *tupleNode) checkType(v Value, _ bool) bool {
	seq, ok := v.sequence()
	return ok && seq.Len() == len(t.children)
}

func (t *tupleNode) decompose(v Value) ([]Value, error) {
	seq, _ := v.sequence()
	propagated := make([]Value, seq.Len())
	for i := range propagated {
		propagated[i] = ValueOf(seq.Index(i).Interface())
	}
	return propagated, nil
}

func (t *tupleNode) recombine(outs []Output, _ Value) Output {
	rebuilt := make([]any, len(outs))
	for i, o := range outs {
		rebuilt[i], _ = o.Get()
	}
	return Present(rebuilt)
}
