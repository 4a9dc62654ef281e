package eval

import "github.com/jaikdean/ShapeScript/pkg/lex"

// URLResolver turns a possibly-relative import path into an absolute URL
// against a base document URL.
type URLResolver interface {
	ResolveURL(base, path string) (string, error)
}

// Importer fetches the raw source bytes at a resolved URL.
type Importer interface {
	Import(url string) ([]byte, error)
}

// DebugSink receives the arguments of a `print` command or a `debug`
// block's accumulated children, tagged with the source range that
// produced them.
type DebugSink interface {
	Debug(values []Value, loc lex.SourceRange)
}
