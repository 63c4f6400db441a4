package enforce

import (
	"reflect"
	"strings"
)

// Node is one unit of a type-expression tree. A node checks one structural
// shape and recombines its children's outputs into its own normalized output.
// Trees are built by an external tree-builder through the variant
// constructors (Class, Alternation, TypeParam, Tuple, Func); the shared
// traversal lives in Validation and is run by a Driver.
//
// Nodes are stateful: Output, LastMatched, and the current child list persist
// across validations through the same instance. That persistence is the
// stickiness mechanism, not an accident; Reset restores the template state.
type Node interface {
	// Strict reports the aggregation mode: true means every child must
	// succeed (AND), false means at least one (OR).
	Strict() bool
	// IsParameter reports whether this node stands for an unbound generic
	// parameter and therefore forces its children to commit.
	IsParameter() bool
	// Expected is the type tag this node checks against; nil is the "any"
	// sentinel used by structural nodes.
	Expected() reflect.Type
	// Children is the current, possibly pruned or expanded, child list.
	Children() []Node
	// Template is the original child list Reset restores.
	Template() []Node
	// Output is the result of the last successful validation; unset after a
	// failure or before first use. A failed validation leaves a previous
	// success's value in place, so callers must check Validate's result
	// before reading it.
	Output() Output
	// LastMatched is the concrete runtime type recorded on the most recent
	// successful validation.
	LastMatched() (reflect.Type, bool)
	// Reset restores the template children and clears Output and
	// LastMatched. It never touches the template itself.
	Reset()

	String() string

	// Variant hooks. checkType decides whether the input fits this node's
	// shape, decompose produces one value per current child (and may expand
	// the child list for sequences), recombine folds the children's outputs
	// into this node's output.
	checkType(v Value, force bool) bool
	decompose(v Value) ([]Value, error)
	recombine(outs []Output, original Value) Output

	base() *node
}

// node carries the bookkeeping shared by every variant. Variants embed it and
// supply the three hooks; it is not instantiable from outside the package.
type node struct {
	label       string
	expected    reflect.Type
	strict      bool
	isParameter bool

	out      Output
	lastType reflect.Type
	children []Node
	template []Node
}

func newNode(label string, expected reflect.Type, strict, isParameter bool, children ...Node) node {
	return node{
		label:       label,
		expected:    expected,
		strict:      strict,
		isParameter: isParameter,
		children:    append([]Node(nil), children...),
		template:    append([]Node(nil), children...),
	}
}

func (n *node) Strict() bool           { return n.strict }
func (n *node) IsParameter() bool      { return n.isParameter }
func (n *node) Expected() reflect.Type { return n.expected }
func (n *node) Children() []Node       { return n.children }
func (n *node) Template() []Node       { return n.template }
func (n *node) Output() Output         { return n.out }
func (n *node) base() *node            { return n }

func (n *node) LastMatched() (reflect.Type, bool) {
	return n.lastType, n.lastType != nil
}

func (n *node) Reset() {
	n.out = Output{}
	n.lastType = nil
	n.children = append([]Node(nil), n.template...)
}

// String renders the subtree as expected:Variant -> (children...).
func (n *node) String() string {
	var b strings.Builder
	b.WriteString(typeName(n.expected))
	b.WriteByte(':')
	b.WriteString(n.label)
	if len(n.children) > 0 {
		b.WriteString(" -> (")
		for i, c := range n.children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// aggregate folds child results: AND when strict, OR otherwise. An empty
// result list is vacuously true for strict nodes and false for non-strict
// ones.
func aggregate(strict bool, results []bool) bool {
	if strict {
		for _, r := range results {
			if !r {
				return false
			}
		}
		return true
	}
	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}
