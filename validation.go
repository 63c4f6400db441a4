package enforce

import "fmt"

// Request is a suspension: the frame asks its driver to run Child's
// validation of Data to completion and Resume it with the boolean result.
// Force carries the parent's IsParameter flag down, which is how a generic
// parameter forces consistency onto its subtree.
type Request struct {
	Child Node
	Data  Value
	Force bool
}

// Validation is one resumable validate call against a single node. It
// replaces native recursion with an explicit frame the driver steps:
//
//	v := enforce.Begin(node, data, false)
//	for {
//		req, err := v.Next()
//		// err: defect; req != nil: run the child, then v.Resume(result)
//		// req == nil: finished, v.Result() holds the outcome
//	}
//
// The frame runs the shared four-phase algorithm: type-check, decompose,
// one suspension per child in declared order, then aggregate, recombine,
// commit, record. Every child is always offered for validation; aggregation
// consumes the full result list rather than short-circuiting.
type Validation struct {
	node  Node
	data  Value
	force bool

	started  bool
	awaiting bool
	finished bool
	result   bool

	propagated []Value
	results    []bool
	next       int
}

// Begin prepares a suspended validation of data against n. Nothing runs
// until the first Next.
func Begin(n Node, data Value, force bool) *Validation {
	return &Validation{node: n, data: data, force: force}
}

// Done reports whether the frame has produced its final result.
func (v *Validation) Done() bool { return v.finished }

// Result is the frame's final boolean; meaningful only once Done.
func (v *Validation) Result() bool { return v.result }

// Node is the node this frame validates.
func (v *Validation) Node() Node { return v.node }

// Next advances the frame until it either suspends on a child (non-nil
// Request) or finishes (nil, nil). Calling Next while a child result is
// outstanding, or after completion, is a driver protocol defect.
func (v *Validation) Next() (*Request, error) {
	if v.finished {
		return nil, &Defect{Code: CodeDriverProtocol, Message: "validation advanced after completion"}
	}
	if v.awaiting {
		return nil, &Defect{Code: CodeDriverProtocol, Message: "validation advanced while a child result is outstanding"}
	}
	b := v.node.base()
	if !v.started {
		v.started = true
		if !v.node.checkType(v.data, v.force) {
			// Output is deliberately left as-is: a stale value from a
			// previous success is only readable behind a true result.
			v.finish(false)
			return nil, nil
		}
		propagated, err := v.node.decompose(v.data)
		if err != nil {
			return nil, err
		}
		if len(propagated) != len(b.children) {
			return nil, &Defect{
				Code:    CodeDecompositionMismatch,
				Message: fmt.Sprintf("decompose produced %d values for %d children", len(propagated), len(b.children)),
			}
		}
		v.propagated = propagated
		v.results = make([]bool, 0, len(propagated))
	}
	if v.next < len(b.children) {
		v.awaiting = true
		return &Request{Child: b.children[v.next], Data: v.propagated[v.next], Force: b.isParameter}, nil
	}
	if !aggregate(b.strict, v.results) {
		v.finish(false)
		return nil, nil
	}
	outs := make([]Output, len(b.children))
	for i, c := range b.children {
		outs[i] = c.Output()
	}
	b.out = v.node.recombine(outs, v.data)
	if v.force && len(v.results) > 0 {
		// Commit: prune to the first successful child. Irreversible except
		// via Reset.
		for i, r := range v.results {
			if r {
				b.children = []Node{b.children[i]}
				break
			}
		}
	}
	b.lastType = v.data.RuntimeType()
	v.finish(true)
	return nil, nil
}

// Resume supplies the outstanding child's final result. Resuming a frame
// that is not awaiting one is a driver protocol defect.
func (v *Validation) Resume(ok bool) error {
	if v.finished || !v.awaiting {
		return &Defect{Code: CodeDriverProtocol, Message: "resume without an outstanding child result"}
	}
	v.awaiting = false
	v.results = append(v.results, ok)
	v.next++
	return nil
}

func (v *Validation) finish(ok bool) {
	v.finished = true
	v.result = ok
}
