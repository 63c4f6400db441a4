package enforce_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	enforce "github.com/smarie/enforce"
)

func TestClass_MatchesExactType(t *testing.T) {
	ctx := context.Background()
	n := enforce.ClassOf[int]()

	ok, err := enforce.Validate(ctx, n, 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected 42 to match int")
	}
	out, set := enforce.Result(n)
	if !set || out != 42 {
		t.Fatalf("expected pass-through output 42, got %v (set=%v)", out, set)
	}
}

func TestClass_RejectsOtherType(t *testing.T) {
	ctx := context.Background()
	n := enforce.ClassOf[int]()

	ok, err := enforce.Validate(ctx, n, "nope")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected string to fail against int")
	}
	if lt, set := n.LastMatched(); set {
		t.Fatalf("LastMatched must stay unset after a failure, got %v", lt)
	}
}

func TestClass_SubtypeViaInterface(t *testing.T) {
	ctx := context.Background()
	n := enforce.ClassOf[error]()

	ok, err := enforce.Validate(ctx, n, errors.New("boom"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected a concrete error to match the error interface")
	}
}

func TestClass_TypeTagInput(t *testing.T) {
	ctx := context.Background()
	n := enforce.ClassOf[error]()

	// A type value is checked directly, the way function signatures hand
	// declared types down to class children.
	ok, err := enforce.Validate(ctx, n, reflect.TypeOf(errors.New("boom")))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected *errorString tag to match error")
	}
	ok, err = enforce.Validate(ctx, n, reflect.TypeOf(0))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected int tag to fail against error")
	}
}

func TestClass_SequenceExpansion(t *testing.T) {
	ctx := context.Background()
	n := enforce.SequenceOf(enforce.ClassOf[int]())

	ok, err := enforce.Validate(ctx, n, []any{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected [1 2 3] to validate element-wise")
	}
	if got := len(n.Children()); got != 3 {
		t.Fatalf("children expanded to %d, want 3", got)
	}
	if got := len(n.Template()); got != 1 {
		t.Fatalf("template must keep the single element child, got %d", got)
	}

	// Expansion recomputes from the template, so a shorter sequence works
	// without an intervening Reset.
	ok, err = enforce.Validate(ctx, n, []any{7})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok {
		t.Fatalf("expected [7] to validate after a longer sequence")
	}
	if got := len(n.Children()); got != 1 {
		t.Fatalf("children re-expanded to %d, want 1", got)
	}
}

func TestClass_SequenceMixedElementFails(t *testing.T) {
	ctx := context.Background()
	n := enforce.SequenceOf(enforce.ClassOf[int]())

	ok, err := enforce.Validate(ctx, n, []any{1, "x", 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected mixed sequence to fail the strict aggregation")
	}
}
