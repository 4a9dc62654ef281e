package eval

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/parse"
)

func TestEvaluateCubeProducesOneSolidChild(t *testing.T) {
	tokens, err := lex.Tokenize("cube { size 2 }")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 1 {
		t.Fatalf("expected 1 top-level child, got %d", len(sc.Children))
	}
	m, err := sc.Children[0].Build(sc.Cache, func() bool { return false })
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected a non-empty cube mesh")
	}
}

func TestEvaluateUnionOfTwoCubes(t *testing.T) {
	src := `
union {
	cube { size 2 }
	cube {
		position 1 0 0
		size 2
	}
}
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 1 {
		t.Fatalf("expected 1 top-level child, got %d", len(sc.Children))
	}
	meshes, err := sc.Meshes(func() bool { return false })
	if err != nil {
		t.Fatalf("meshes error: %v", err)
	}
	if len(meshes) != 1 || meshes[0].IsEmpty() {
		t.Fatalf("expected one non-empty unioned mesh")
	}
}

func TestEvaluateForLoopDefinesVariableEachIteration(t *testing.T) {
	src := `
for i 1 to 3 {
	cube {
		size 1
		position i 0 0
	}
}
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 3 {
		t.Fatalf("expected 3 cubes from the loop, got %d", len(sc.Children))
	}
}

func TestEvaluateIfElseBranches(t *testing.T) {
	src := `
define flag true
if flag {
	cube { size 1 }
} else {
	sphere { size 1 }
}
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 1 {
		t.Fatalf("expected exactly 1 child from the taken branch, got %d", len(sc.Children))
	}
}

func TestEvaluateDefineBindsVariable(t *testing.T) {
	src := `
define width 5
cube { size width 1 1 }
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(sc.Children))
	}
}

func TestEvaluateExtrudeOfASquarePath(t *testing.T) {
	src := `
extrude {
	size 1 2 1
	square {}
}
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sc, err := Evaluate(prog, Options{})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	meshes, err := sc.Meshes(func() bool { return false })
	if err != nil {
		t.Fatalf("meshes error: %v", err)
	}
	if len(meshes) != 1 || meshes[0].IsEmpty() {
		t.Fatalf("expected a non-empty extruded mesh")
	}
}

type memoryImporter struct {
	files map[string][]byte
}

func (m memoryImporter) Import(url string) ([]byte, error) {
	return m.files[url], nil
}

func TestEvaluateImportMergesDefinitionsAndMemoizesByURL(t *testing.T) {
	src := `
import "lib.shape"
import "lib.shape"
cube { size 1 }
`
	tokens, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	imp := memoryImporter{files: map[string][]byte{
		"lib.shape": []byte("define imported true\n"),
	}}
	sc, err := Evaluate(prog, Options{Importer: imp})
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}
	if len(sc.Children) != 1 {
		t.Fatalf("expected 1 child (the cube), got %d", len(sc.Children))
	}
}

func TestEvaluateUnknownCommandIsAnError(t *testing.T) {
	tokens, err := lex.Tokenize("frobnicate 1 2 3")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := Evaluate(prog, Options{}); err == nil {
		t.Fatalf("expected an unknown-symbol error")
	}
}

func TestEvaluateAssertFailureReportsRuntimeError(t *testing.T) {
	tokens, err := lex.Tokenize("assert false")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = Evaluate(prog, Options{})
	if err == nil {
		t.Fatalf("expected assertion failure")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if re.Kind != ErrAssertionFailure {
		t.Fatalf("expected ErrAssertionFailure, got %v", re.Kind)
	}
}
