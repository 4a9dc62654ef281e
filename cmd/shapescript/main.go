// Command shapescript evaluates a ShapeScript document and exports its
// geometry as a persisted mesh document.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jaikdean/ShapeScript/pkg/engine"
	"github.com/jaikdean/ShapeScript/pkg/logging"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/meshio"
)

func main() {
	var (
		out       = flag.String("out", "", "output mesh file (defaults to stdout)")
		triangles = flag.Bool("triangulate", false, "triangulate every polygon before export")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shapescript [-out file] [-triangulate] [-v] <script.shape>")
		os.Exit(2)
	}

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scriptPath := flag.Arg(0)
	if err := run(scriptPath, *out, *triangles); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(scriptPath, outPath string, triangulate bool) error {
	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", scriptPath, err)
	}

	eng := engine.NewEngine(engine.EngineOptions{
		Importer:    fileImporter{},
		URLResolver: fileURLResolver{},
		BaseURL:     scriptPath,
	})

	sc, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", scriptPath, err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("%s failed to evaluate", scriptPath)
	}

	meshes, err := sc.Meshes(func() bool { return false })
	if err != nil {
		return fmt.Errorf("building meshes: %w", err)
	}

	var polys []mesh.Polygon
	for _, m := range meshes {
		polys = append(polys, m.Polygons()...)
	}
	out := mesh.New(polys)
	if triangulate {
		out = out.Triangulate()
	}

	data, err := meshio.Encode(out)
	if err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// fileImporter reads an already-resolved (by fileURLResolver) filesystem
// path, the local-disk analogue of the Importer delegate a host (editor,
// build tool) supplies.
type fileImporter struct{}

func (fileImporter) Import(url string) ([]byte, error) {
	return os.ReadFile(url)
}

// fileURLResolver joins a relative import path against its importing
// document's directory, so nested imports resolve relative to the file
// that imports them rather than the process's working directory.
type fileURLResolver struct{}

func (fileURLResolver) ResolveURL(base, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(filepath.Dir(base), path), nil
}
