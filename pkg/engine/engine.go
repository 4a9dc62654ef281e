// Package engine wraps the lex/parse/eval pipeline in a timeout-bounded
// evaluation suitable for driving a live preview: each call runs in its
// own goroutine, and a generation counter lets a newer call supersede and
// cooperatively cancel an older one still running.
package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jaikdean/ShapeScript/pkg/eval"
	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/logging"
	"github.com/jaikdean/ShapeScript/pkg/parse"
	"github.com/jaikdean/ShapeScript/pkg/scene"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a lex/parse error or a runtime error in user code.
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

// EvalResult bundles the full output of an evaluation for use by UI
// bindings that want a single value rather than Evaluate's 3-tuple.
type EvalResult struct {
	Scene  *scene.Scene
	Errors []EvalError
}

// EngineOptions configures a new Engine. The zero value is a usable
// engine: no importer means `import` degrades to ErrFileAccessRestricted,
// no Rand means the evaluator seeds its own deterministic PRNG.
type EngineOptions struct {
	Timeout     time.Duration
	Importer    eval.Importer
	URLResolver eval.URLResolver
	DebugSink   eval.DebugSink
	Rand        *eval.Source
	BaseURL     string
}

// Engine evaluates documents against a configured EngineOptions (importer,
// URL resolver, debug sink, PRNG). It is safe for concurrent use; each call
// to Evaluate runs in its own goroutine against a fresh root scope.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	opts EngineOptions
}

// NewEngine creates a new Engine instance.
func NewEngine(opts EngineOptions) *Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = EvalTimeout
	}
	return &Engine{opts: opts}
}

// Evaluate parses and evaluates source, producing a new Scene.
//
// Return semantics:
//   - On success: returns scene + nil errors + nil error
//   - On parse/eval failure: returns nil scene + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*scene.Scene, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	isCancelled := func() bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.generation != gen
	}

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		sc, evalErrs, err := e.evaluate(source, isCancelled)
		ch <- evalResult{scene: sc, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, e.opts.Timeout, &e.mu, &e.generation)
}

// EvaluateResult is Evaluate with its tuple collapsed into EvalResult, for
// callers (e.g. a UI binding) that prefer a single value.
func (e *Engine) EvaluateResult(source string) (EvalResult, error) {
	sc, evalErrs, err := e.Evaluate(source)
	return EvalResult{Scene: sc, Errors: evalErrs}, err
}

// evaluate performs the actual tokenize/parse/eval pipeline.
func (e *Engine) evaluate(source string, isCancelled func() bool) (*scene.Scene, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return scene.New(), nil, nil
	}

	tokens, err := lex.Tokenize(source)
	if err != nil {
		return nil, errorsFrom(err), nil
	}

	prog, err := parse.Parse(tokens)
	if err != nil {
		return nil, errorsFrom(err), nil
	}

	opts := eval.Options{
		IsCancelled: isCancelled,
		Importer:    e.opts.Importer,
		URLResolver: e.opts.URLResolver,
		DebugSink:   e.opts.DebugSink,
		Rand:        e.opts.Rand,
		BaseURL:     e.opts.BaseURL,
	}
	sc, err := eval.Evaluate(prog, opts)
	if err != nil {
		if err == eval.Cancelled {
			return nil, nil, err
		}
		return nil, errorsFrom(err), nil
	}

	return sc, nil, nil
}

// errorsFrom converts a lex/parse/eval error into the EvalError carrying
// its source position.
func errorsFrom(err error) []EvalError {
	switch e := err.(type) {
	case *lex.Error:
		return []EvalError{{Line: e.Range.Start.Line, Col: e.Range.Start.Column, Message: e.Hint}}
	case *parse.Error:
		return []EvalError{{Line: e.Range.Start.Line, Col: e.Range.Start.Column, Message: e.Hint}}
	case *eval.RuntimeError:
		return []EvalError{{Line: e.Range.Start.Line, Col: e.Range.Start.Column, Message: e.Hint}}
	default:
		logging.Logger().Warn("evaluation failed with an unrecognized error type", "error", err)
		return []EvalError{{Message: err.Error()}}
	}
}
