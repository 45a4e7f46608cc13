package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chazu/stockyard/pkg/product"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	for _, src := range []string{"", "   \n\t  \n  "} {
		res, err := eng.Evaluate(context.Background(), src)
		if err != nil {
			t.Fatalf("unexpected fatal error: %v", err)
		}
		if !res.OK() {
			t.Fatalf("unexpected eval errors: %v", res.Errors)
		}
		if len(res.Products) != 0 {
			t.Errorf("expected no products, got %d", len(res.Products))
		}
		if res.Product().Kind() != product.KindNone {
			t.Errorf("expected None product, got %v", res.Product().Kind())
		}
	}
}

func TestEvaluateValidExpression(t *testing.T) {
	eng := NewEngine()

	// (+ 1 2) is valid Lisp but declares no products.
	res, err := eng.Evaluate(context.Background(), "(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
	if len(res.Products) != 0 {
		t.Errorf("expected no products, got %d", len(res.Products))
	}
}

func TestEvaluateMultipleExpressions(t *testing.T) {
	eng := NewEngine()

	source := `
(def x 10)
(def y 20)
(+ x y)
`
	res, err := eng.Evaluate(context.Background(), source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("unexpected eval errors: %v", res.Errors)
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()

	// Unmatched paren is a parse error.
	res, err := eng.Evaluate(context.Background(), "(+ 1 2")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res.OK() {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if len(res.Products) != 0 {
		t.Fatal("expected no products on syntax error")
	}
	if res.Errors[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
	if res.Err() == nil {
		t.Error("Err() should report the eval errors")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := NewEngine()

	// Referencing an undefined symbol should produce an eval error.
	res, err := eng.Evaluate(context.Background(), "(+ 1 undefined-symbol)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res.OK() {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvaluateSyntaxErrorHasLineInfo(t *testing.T) {
	eng := NewEngine()

	// Put the error on line 2.
	res, err := eng.Evaluate(context.Background(), "(+ 1 2)\n(+ 3")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res.OK() {
		t.Fatal("expected at least one eval error")
	}

	// Line info may or may not be available depending on the error format;
	// we just check the error is populated.
	e := res.Errors[0]
	if e.Message == "" {
		t.Error("eval error message should not be empty")
	}
	if e.Line > 0 {
		t.Logf("extracted line info: line=%d, message=%q", e.Line, e.Message)
	} else {
		t.Logf("no line info extracted (line=0), message=%q", e.Message)
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

	// No line info.
	e2 := EvalError{Line: 0, Col: 0, Message: "no location"}
	s2 := e2.Error()
	if strings.Contains(s2, "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", s2)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine()
	src := `(product (stock :shape (cuboid :x 10 :y 20 :z 30)))`

	var first product.Product
	// Multiple evaluations of the same source should produce equal results.
	for i := 0; i < 5; i++ {
		res, err := eng.Evaluate(context.Background(), src)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if !res.OK() {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, res.Errors)
		}
		if len(res.Products) != 1 {
			t.Fatalf("iteration %d: expected 1 product, got %d", i, len(res.Products))
		}
		if i == 0 {
			first = res.Products[0]
			continue
		}
		if res.Products[0].String() != first.String() {
			t.Errorf("iteration %d: %v differs from %v", i, res.Products[0], first)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	if got := NewEngine().Timeout(); got != EvalTimeout {
		t.Errorf("default timeout = %v, want %v", got, EvalTimeout)
	}
	if got := NewEngine(WithTimeout(time.Second)).Timeout(); got != time.Second {
		t.Errorf("WithTimeout(1s) = %v", got)
	}
	if got := NewEngine(WithTimeout(-1)).Timeout(); got != EvalTimeout {
		t.Errorf("WithTimeout(-1) = %v, want the default", got)
	}
}

func TestWaitTimeout(t *testing.T) {
	// A channel that never sends stands in for a runaway evaluation.
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := waitWithTimeout(ctx, ch, 1, &mu, &gen)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("expected timeout error message, got: %v", err)
	}
}

func TestWaitCanceled(t *testing.T) {
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := waitWithTimeout(ctx, ch, 1, &mu, &gen)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("cancellation should not report a timeout")
	}
}

func TestEvaluateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine().Evaluate(ctx, "(+ 1 2)")
	// The evaluation may win the race against the canceled context.
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("expected nil or context.Canceled, got %v", err)
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	// Test that a stale generation is detected.
	var mu sync.Mutex
	gen := uint64(2) // Current generation is 2

	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	// Pass generation 1 (stale).
	_, err := waitWithTimeout(context.Background(), ch, 1, &mu, &gen)
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "error on line format",
			msg:      "Error on line 5: unexpected token\n",
			wantLine: 5,
			wantMsg:  "unexpected token",
		},
		{
			name:     "no line info",
			msg:      "some generic error",
			wantLine: 0,
			wantMsg:  "some generic error",
		},
		{
			name:     "line format lowercase",
			msg:      "error on line 12: missing paren",
			wantLine: 12,
			wantMsg:  "missing paren",
		},
		{
			name:     "short line format",
			msg:      "line 3: cuboid requires :z",
			wantLine: 3,
			wantMsg:  "cuboid requires :z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tt.msg))
			if len(errs) == 0 {
				t.Fatal("expected at least one error")
			}
			e := errs[0]
			if e.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", e.Message, tt.wantMsg)
			}
		})
	}
}

// errString is a simple error type for testing.
type errString string

func (e errString) Error() string { return string(e) }
