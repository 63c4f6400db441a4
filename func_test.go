package enforce_test

import (
	"context"
	"testing"

	enforce "github.com/smarie/enforce"
)

func TestFunc_SignatureMatch(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func(
		[]enforce.Node{enforce.ClassOf[int](), enforce.ClassOf[int]()},
		enforce.ClassOf[int](),
	)

	add := func(a, b int) int { return a + b }
	ok, err := enforce.Validate(ctx, sig, add)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected func(int, int) int to match")
	}
	out, set := enforce.Result(sig)
	if !set || out == nil {
		t.Fatalf("expected the function to pass through, got %v (set=%v)", out, set)
	}
}

func TestFunc_ReturnTypeMismatch(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func(
		[]enforce.Node{enforce.ClassOf[int](), enforce.ClassOf[int]()},
		enforce.ClassOf[int](),
	)

	concat := func(a, b int) string { return "" }
	ok, err := enforce.Validate(ctx, sig, concat)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected a string result to fail against an int result child")
	}
}

func TestFunc_ParameterTypeMismatch(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func(
		[]enforce.Node{enforce.ClassOf[int](), enforce.ClassOf[int]()},
		enforce.ClassOf[int](),
	)

	mixed := func(a int, b string) int { return a }
	ok, err := enforce.Validate(ctx, sig, mixed)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected a string parameter to fail against an int child")
	}
}

func TestFunc_NonFunctionFails(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func([]enforce.Node{enforce.ClassOf[int]()}, enforce.ClassOf[int]())

	ok, err := enforce.Validate(ctx, sig, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected a non-function to fail the callable check")
	}
}

func TestFunc_ArityMismatchIsDefect(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func(
		[]enforce.Node{enforce.ClassOf[int](), enforce.ClassOf[int]()},
		enforce.ClassOf[int](),
	)

	_, err := enforce.Validate(ctx, sig, func(a int) int { return a })
	if err == nil {
		t.Fatalf("expected a decomposition defect for a wrong-arity candidate")
	}
	d, ok := enforce.AsDefect(err)
	if !ok || d.Code != enforce.CodeDecompositionMismatch {
		t.Fatalf("expected %s, got %v", enforce.CodeDecompositionMismatch, err)
	}
}

func TestFunc_MultipleResults(t *testing.T) {
	ctx := context.Background()
	sig := enforce.Func(
		[]enforce.Node{enforce.ClassOf[string]()},
		enforce.ClassOf[int](), enforce.ClassOf[error](),
	)

	ok, err := enforce.Validate(ctx, sig, func(s string) (int, error) { return len(s), nil })
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected func(string) (int, error) to match")
	}
}
