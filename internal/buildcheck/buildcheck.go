// ABOUTME: Counts top-level declarations a package compiles with for a given GOOS/GOARCH
// ABOUTME: Lets tests on one host check that build-tagged files cover every target platform

package buildcheck

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"path/filepath"
)

// Target is a GOOS/GOARCH pair.
type Target struct {
	GOOS   string
	GOARCH string
}

func (t Target) String() string {
	return t.GOOS + "/" + t.GOARCH
}

// Targets are the platforms the terminal packages must build for.
var Targets = []Target{
	{"linux", "amd64"},
	{"android", "arm64"},
	{"darwin", "arm64"},
	{"freebsd", "amd64"},
	{"openbsd", "amd64"},
	{"aix", "ppc64"},
	{"illumos", "amd64"},
	{"solaris", "amd64"},
	{"windows", "amd64"},
	{"js", "wasm"},
	{"wasip1", "wasm"},
	{"plan9", "amd64"},
}

// Declarations returns how many times each top-level function, method,
// var and const name is declared in the non-test files of the package in
// dir when built for target with cgo disabled.
func Declarations(dir string, target Target) (map[string]int, error) {
	ctx := build.Default
	ctx.GOOS = target.GOOS
	ctx.GOARCH = target.GOARCH
	ctx.CgoEnabled = false

	pkg, err := ctx.ImportDir(dir, 0)
	if err != nil {
		return nil, fmt.Errorf("importing %s for %s: %w", dir, target, err)
	}

	fset := token.NewFileSet()
	counts := make(map[string]int)
	for _, name := range pkg.GoFiles {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				counts[d.Name.Name]++
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					if vs, ok := spec.(*ast.ValueSpec); ok {
						for _, n := range vs.Names {
							counts[n.Name]++
						}
					}
				}
			}
		}
	}
	return counts, nil
}
