package enforce

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// Driver runs a suspended validation to completion, including every nested
// suspension, and reports the frame's final boolean. The indirection exists
// so the traversal policy lives outside the nodes: a driver may bound depth,
// budget steps, honor cancellation, or memoize repeated subtrees without any
// node knowing.
//
// A driver must resume each suspended frame exactly once per request;
// anything else is a protocol defect. Abandoning a frame without resuming it
// leaves the whole tree unfinished, so drivers signal abandonment through an
// explicit error (the built-in driver uses the context).
type Driver interface {
	Complete(ctx context.Context, v *Validation) (bool, error)
}

// Opt bounds a depth-first drive. Zero values mean unbounded.
type Opt struct {
	MaxDepth int // deepest number of pending frames allowed
	MaxSteps int // suspension budget for one Complete call
}

// NewDriver returns the built-in depth-first driver: an explicit work stack
// rather than native recursion, so deep type trees cannot blow the goroutine
// stack and both bounds in opt are enforceable.
func NewDriver(opt Opt) Driver { return &depthFirst{opt: opt} }

var (
	driverMu      sync.RWMutex
	currentDriver Driver = &depthFirst{}
)

// SetDriver replaces the process-wide default driver used by Validate; nil
// values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the built-in unbounded depth-first driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = &depthFirst{}
	driverMu.Unlock()
}

func defaultDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

type depthFirst struct{ opt Opt }

// frame pairs a pending Validation with its child index in the parent, used
// to render defect paths.
type frame struct {
	v     *Validation
	index int
}

func (d *depthFirst) Complete(ctx context.Context, root *Validation) (bool, error) {
	stack := []frame{{v: root, index: -1}}
	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return false, &Defect{Code: CodeCanceled, Path: pathOf(stack), Message: "validation abandoned", Cause: err}
		}
		top := stack[len(stack)-1]
		req, err := top.v.Next()
		if err != nil {
			return false, defectAt(err, pathOf(stack))
		}
		if req == nil {
			// Frame finished; hand its result up.
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return top.v.Result(), nil
			}
			if err := stack[len(stack)-1].v.Resume(top.v.Result()); err != nil {
				return false, defectAt(err, pathOf(stack))
			}
			continue
		}
		steps++
		if d.opt.MaxSteps > 0 && steps > d.opt.MaxSteps {
			return false, &Defect{Code: CodeStepLimit, Path: pathOf(stack), Message: "suspension budget exhausted: " + strconv.Itoa(d.opt.MaxSteps)}
		}
		if d.opt.MaxDepth > 0 && len(stack) >= d.opt.MaxDepth {
			return false, &Defect{Code: CodeDepthExceeded, Path: pathOf(stack), Message: "frame depth limit reached: " + strconv.Itoa(d.opt.MaxDepth)}
		}
		stack = append(stack, frame{v: Begin(req.Child, req.Data, req.Force), index: top.v.next})
	}
}

func pathOf(stack []frame) string {
	if len(stack) <= 1 {
		return "/"
	}
	var b strings.Builder
	for _, f := range stack[1:] {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(f.index))
	}
	return b.String()
}

// defectAt fills in the node path on defects raised below the driver, which
// cannot know their own position.
func defectAt(err error, path string) error {
	if d, ok := AsDefect(err); ok && d.Path == "" {
		d.Path = path
	}
	return err
}
