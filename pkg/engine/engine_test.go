package engine

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jaikdean/ShapeScript/pkg/scene"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	sc, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	if len(sc.Children) != 0 {
		t.Errorf("expected empty scene, got %d children", len(sc.Children))
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	sc, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	if len(sc.Children) != 0 {
		t.Errorf("expected empty scene, got %d children", len(sc.Children))
	}
}

func TestEvaluateValidCube(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	sc, evalErrs, err := eng.Evaluate("cube { size 2 }")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	if len(sc.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(sc.Children))
	}
}

func TestEvaluateMultipleStatements(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	source := `
define x 10
define y 20
cube { size x 1 1 }
sphere { size y }
`
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	if len(sc.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(sc.Children))
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	sc, evalErrs, err := eng.Evaluate("cube { size 1")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if sc != nil {
		t.Fatal("expected nil scene on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}

	msg := evalErrs[0].Message
	if msg == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	sc, evalErrs, err := eng.Evaluate("frobnicate 1 2 3")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if sc != nil {
		t.Fatal("expected nil scene on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvaluateSyntaxErrorHasLineInfo(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	source := "cube { size 1 }\nsphere { size"
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if sc != nil {
		t.Fatal("expected nil scene on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}

	e := evalErrs[0]
	if e.Message == "" {
		t.Error("eval error message should not be empty")
	}
	if e.Line != 2 {
		t.Errorf("expected the error on line 2, got line %d", e.Line)
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	e := EvalError{Line: 5, Col: 0, Message: "something went wrong"}
	s := e.Error()
	if !strings.Contains(s, "line 5") {
		t.Errorf("Error() should contain line info, got: %s", s)
	}
	if !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() should contain message, got: %s", s)
	}

	e2 := EvalError{Line: 0, Col: 0, Message: "no location"}
	s2 := e2.Error()
	if strings.Contains(s2, "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", s2)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	for i := 0; i < 5; i++ {
		sc, evalErrs, err := eng.Evaluate("cube { size 2 }")
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, evalErrs)
		}
		if sc == nil {
			t.Fatalf("iteration %d: expected non-nil scene", i)
		}
		if len(sc.Children) != 1 {
			t.Errorf("iteration %d: expected 1 child, got %d", i, len(sc.Children))
		}
	}
}

func TestEvaluateResultBundlesSceneAndErrors(t *testing.T) {
	eng := NewEngine(EngineOptions{})

	res, err := eng.EvaluateResult("cube { size 1 }")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if res.Scene == nil {
		t.Fatal("expected non-nil scene in result")
	}
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
}

func TestEvaluateTimeout(t *testing.T) {
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult) // never sends

	done := make(chan struct{})
	var resultErr error

	go func() {
		defer close(done)
		_, _, resultErr = waitWithTimeout(ch, 1, 50*time.Millisecond, &mu, &gen)
	}()

	select {
	case <-done:
		if resultErr == nil {
			t.Fatal("expected timeout error, got nil")
		}
		if !strings.Contains(resultErr.Error(), "timed out") {
			t.Errorf("expected timeout error message, got: %v", resultErr)
		}
	case <-time.After(time.Second):
		t.Fatal("test itself timed out waiting for evaluation timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)

	ch := make(chan evalResult, 1)
	ch <- evalResult{scene: scene.New(), errors: nil, err: nil}

	_, _, err := waitWithTimeout(ch, 1, 50*time.Millisecond, &mu, &gen)
	if err == nil {
		t.Fatal("expected error for stale generation")
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}
