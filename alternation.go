package enforce

// alternationNode tries every branch in turn (non-strict OR) and remembers
// which concrete runtime type last matched so forced re-validations stay
// consistent.
type alternationNode struct {
	node
}

// Alternation returns a node matching values accepted by at least one of the
// branches, in declared order.
func Alternation(branches ...Node) Node {
	return &alternationNode{node: newNode("Alternation", nil, false, false, branches...)}
}

// checkType only discriminates under force: once a forced validation has
// recorded a match, later inputs must carry the same runtime type. The real
// branch discrimination happens in the per-branch recursion.
func (a *alternationNode) checkType(v Value, force bool) bool {
	if force && a.lastType != nil {
		return v.RuntimeType() == a.lastType
	}
	return true
}

// decompose offers the same raw value to every branch; each branch decides
// fit independently.
func (a *alternationNode) decompose(v Value) ([]Value, error) {
	propagated := make([]Value, len(a.children))
	for i := range propagated {
		propagated[i] = v
	}
	return propagated, nil
}

// recombine picks the first set child output in declared order. All-unset
// stays unset rather than turning into a present nil.
func (a *alternationNode) recombine(outs []Output, _ Value) Output {
	for _, o := range outs {
		if _, ok := o.Get(); ok {
			return o
		}
	}
	return Output{}
}
