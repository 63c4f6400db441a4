package enforce

import "context"

// Validate runs data against the tree rooted at root using the process-wide
// default driver. A structural mismatch is (false, nil); only defects and
// protocol violations surface as errors. On success the root's normalized
// output is available through Result.
func Validate(ctx context.Context, root Node, data any) (bool, error) {
	return ValidateWith(ctx, root, data, defaultDriver())
}

// ValidateWith runs data against root under an explicit driver.
func ValidateWith(ctx context.Context, root Node, data any, d Driver) (bool, error) {
	return d.Complete(ctx, Begin(root, ValueOf(data), false))
}

// Result returns root's normalized output from its last successful
// validation. ok is false when the last validation failed or none has run.
func Result(root Node) (any, bool) {
	return root.Output().Get()
}

// ResetTree resets root and every node reachable through template children,
// including branches pruned by commitment. The tree is then indistinguishable
// from a freshly built one.
func ResetTree(root Node) {
	root.Reset()
	for _, c := range root.Template() {
		ResetTree(c)
	}
}
