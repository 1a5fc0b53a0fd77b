package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"msdscript/ast"
	"msdscript/parser"
)

// Ext is the file extension of msdscript sources.
const Ext = ".msd"

// Index holds every expression file discovered within a directory tree.
// A file lands in exactly one of the two maps, keyed by absolute path.
type Index struct {
	Exprs    map[string]ast.Expr
	Failures map[string]error
}

// BuildIndex scans rootDir (and optional library directories) for .msd
// files and parses each one. Parse failures are recorded, not returned;
// the error result is reserved for walking the tree itself.
func BuildIndex(rootDir string, libDirs ...string) (*Index, error) {
	idx := &Index{
		Exprs:    make(map[string]ast.Expr),
		Failures: make(map[string]error),
	}

	if err := scanDir(rootDir, idx); err != nil {
		return nil, err
	}
	for _, lib := range libDirs {
		if lib == "" {
			continue
		}
		if info, err := os.Stat(lib); err != nil || !info.IsDir() {
			continue
		}
		if err := scanDir(lib, idx); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

func scanDir(rootDir string, idx *Index) error {
	return filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != Ext {
			return nil
		}

		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return absErr
		}
		if idx.seen(abs) {
			return nil
		}
		e, parseErr := parser.ParseFile(path)
		if parseErr != nil {
			idx.Failures[abs] = parseErr
			return nil
		}
		idx.Exprs[abs] = e
		return nil
	})
}

func (idx *Index) seen(abs string) bool {
	if _, ok := idx.Exprs[abs]; ok {
		return true
	}
	_, ok := idx.Failures[abs]
	return ok
}

// Paths returns every indexed path, parsed or not, in sorted order.
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.Exprs)+len(idx.Failures))
	for p := range idx.Exprs {
		paths = append(paths, p)
	}
	for p := range idx.Failures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// OK reports whether every indexed file parsed.
func (idx *Index) OK() bool {
	return len(idx.Failures) == 0
}
