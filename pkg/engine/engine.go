// Package engine provides the Lisp evaluation engine for stockyard.
// It wraps zygomys in a sandboxed environment and produces Products from
// user source code.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/stockyard/internal/logging"
	"github.com/chazu/stockyard/pkg/product"
)

var (
	// ErrTimeout is returned when an evaluation exceeds its deadline.
	ErrTimeout = errors.New("engine: evaluation timed out")
	// ErrSuperseded is returned when a newer evaluation started while this
	// one was running.
	ErrSuperseded = errors.New("engine: evaluation superseded by newer request")
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the output of an evaluation.
type Result struct {
	// Products holds the roots declared with (product ...), in order.
	Products []product.Product
	Errors   []EvalError
}

// OK reports whether the evaluation finished without errors.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Product groups the declared roots into one Product.
func (r Result) Product() product.Product {
	switch len(r.Products) {
	case 0:
		return product.None()
	case 1:
		return r.Products[0]
	}
	return product.GroupOf(r.Products...)
}

// Err joins the evaluation errors, or returns nil.
func (r Result) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the evaluation limit used when the caller's context has
// no deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger. A nil logger logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = logging.OrNop(l) }
}

// Engine wraps the zygomys interpreter for stockyard evaluation.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	timeout    time.Duration
	logger     *slog.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: EvalTimeout, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the default evaluation limit.
func (e *Engine) Timeout() time.Duration { return e.timeout }

// Evaluate takes Lisp source code and produces the Products it declares.
// Each call creates a fresh zygomys sandbox for deterministic evaluation.
//
// Return semantics:
//   - On success: returns products + nil errors + nil error
//   - On parse/eval failure: returns eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns an error
func (e *Engine) Evaluate(ctx context.Context, source string) (Result, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("engine: panic during evaluation: %v", r)}
			}
		}()

		res, err := e.evaluate(source)
		ch <- evalResult{result: res, err: err}
	}()

	res, err := waitWithTimeout(ctx, ch, gen, &e.mu, &e.generation)
	switch {
	case err != nil:
		e.logger.Warn("evaluation failed", "generation", gen, "error", err)
	case !res.OK():
		e.logger.Warn("evaluation errors", "generation", gen, "count", len(res.Errors), "first", res.Errors[0].Error())
	default:
		e.logger.Debug("evaluated", "generation", gen, "products", len(res.Products))
	}
	return res, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (Result, error) {
	// Empty source is a valid program that declares nothing.
	if strings.TrimSpace(source) == "" {
		return Result{}, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	roots := &rootSet{}
	registerBuiltins(env, roots)

	// Load and compile the source string into bytecode.
	if err := env.LoadString(preprocessSource(source)); err != nil {
		return Result{Errors: parseZygomysError(err)}, nil
	}

	// Execute the compiled bytecode.
	if _, err := env.Run(); err != nil {
		return Result{Errors: parseZygomysError(err)}, nil
	}

	return Result{Products: roots.products}, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?is)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?is)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
