package enforce

import (
	"errors"
	"fmt"
)

// Defect codes. A Defect is a programming or protocol error, never a
// structural mismatch: mismatches are the boolean false result.
const (
	// CodeDecompositionMismatch reports a variant whose decompose produced a
	// different number of values than the node has children.
	CodeDecompositionMismatch = "decomposition_mismatch"
	// CodeDriverProtocol reports a driver advancing or resuming a Validation
	// out of order: resuming twice, resuming without an outstanding child, or
	// advancing past completion.
	CodeDriverProtocol = "driver_protocol"
	// CodeDepthExceeded reports a drive exceeding its configured frame depth.
	CodeDepthExceeded = "depth_exceeded"
	// CodeStepLimit reports a drive exhausting its suspension budget.
	CodeStepLimit = "step_limit"
	// CodeCanceled reports a drive abandoned through context cancellation.
	CodeCanceled = "canceled"
)

// Defect is the only error the validation core returns. Path locates the
// offending node by child indexes from the root (for example /1/0; / is the
// root itself).
type Defect struct {
	Path    string
	Code    string
	Message string
	Cause   error // Optional: underlying error, e.g. the context error.
}

func (d *Defect) Error() string {
	if d.Path != "" {
		return fmt.Sprintf("%s at %s: %s", d.Code, d.Path, d.Message)
	}
	return d.Code + ": " + d.Message
}

func (d *Defect) Unwrap() error { return d.Cause }

// AsDefect extracts a Defect from an error using errors.As internally.
func AsDefect(err error) (*Defect, bool) {
	if err == nil {
		return nil, false
	}
	var d *Defect
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
