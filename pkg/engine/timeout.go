package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jaikdean/ShapeScript/pkg/logging"
	"github.com/jaikdean/ShapeScript/pkg/scene"
)

// EvalTimeout is the default hard limit for a single evaluation, used
// when an Engine is constructed with a zero EngineOptions.Timeout.
const EvalTimeout = 5 * time.Second

// evalResult is the internal type used to pass evaluation results through
// channels.
type evalResult struct {
	scene  *scene.Scene
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// once ctx's deadline (timeout from now) expires. It uses a generation
// counter to discard stale results from previous evaluations.
//
// On timeout, waitWithTimeout bumps *currentGen itself, so the still-running
// goroutine's isCancelled check (which compares its own captured generation
// against *currentGen) starts reporting true, and eval.Evaluator aborts at
// its next statement or loop-iteration boundary.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	timeout time.Duration,
	mu *sync.Mutex,
	currentGen *uint64,
) (*scene.Scene, []EvalError, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			logging.Logger().Debug("discarding superseded evaluation result", "generation", gen, "current", current)
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}

		return res.scene, res.errors, res.err

	case <-ctx.Done():
		mu.Lock()
		if *currentGen == gen {
			*currentGen++
		}
		mu.Unlock()
		logging.Logger().Warn("evaluation timed out", "timeout", timeout)
		return nil, nil, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
