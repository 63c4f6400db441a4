package enforce

// typeParamNode is a transparent placeholder for an unbound generic
// parameter. It imposes no check of its own; its isParameter flag forces the
// wrapped node to commit permanently to its first successful branch, so later
// occurrences of the parameter must match the bound type. Binding is
// invariant: after commitment only the exact recorded type matches.
type typeParamNode struct {
	node
}

// TypeParam returns a node standing for an unbound generic parameter wrapping
// exactly one child, typically an Alternation over the parameter's candidate
// types.
func TypeParam(wrapped Node) Node {
	return &typeParamNode{node: newNode("TypeParam", nil, false, true, wrapped)}
}

func (p *typeParamNode) checkType(Value, bool) bool { return true }

func (p *typeParamNode) decompose(v Value) ([]Value, error) {
	return []Value{v}, nil
}

func (p *typeParamNode) recombine(outs []Output, _ Value) Output {
	return outs[0]
}
