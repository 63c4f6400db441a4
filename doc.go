package enforce

// Package enforce validates whether a runtime value structurally conforms to a
// composite type expression and, on success, produces a normalized output
// value. A type expression is represented as a tree of nodes mirroring its
// structure: plain classes, alternations ("one of"), fixed-arity tuples,
// generic type parameters, and function signatures.
//
// The package provides:
//
//   - Five node variants sharing one validate/reduce traversal (Class,
//     Alternation, TypeParam, Tuple, Func)
//   - A resumable suspension protocol (Validation/Request) so an external
//     Driver owns the traversal policy: bounded depth, step limits,
//     cancellation, memoization
//   - A stable defect model via Defect (child-index path, code, message),
//     kept strictly apart from ordinary mismatches, which are booleans
//   - Wire bridges decoding JSON/YAML documents into the generic value shape
//
// Design policy:
//   - Structural mismatches are never errors; they propagate as false so
//     alternation and generic-parameter logic can try remaining branches.
//   - Nodes are mutable, reused state. Branch commitment ("stickiness") and
//     alternation memory live on the node instance and persist across calls
//     until Reset. A single logical validation may be in flight against a
//     given tree at a time; callers serialize access or Reset and clone.
//
// Typical usage:
//
//	tree := enforce.TypeParam(enforce.Alternation(
//		enforce.ClassOf[int](),
//		enforce.ClassOf[string](),
//	))
//	ok, err := enforce.Validate(ctx, tree, 42)
//	out, set := enforce.Result(tree)
