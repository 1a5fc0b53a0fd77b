package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"msdscript/ast"
	"msdscript/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestBuildIndex(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.msd"), "1 + 2\n")
	writeFile(t, filepath.Join(root, "nested", "b.msd"), "_let x = 5 _in x * 2")
	writeFile(t, filepath.Join(root, "nested", "bad.msd"), "(4")
	writeFile(t, filepath.Join(root, "notes.txt"), "not an expression")

	idx, err := BuildIndex(root)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if len(idx.Exprs) != 2 || len(idx.Failures) != 1 {
		t.Fatalf("expected 2 parsed and 1 failed, got %d and %d", len(idx.Exprs), len(idx.Failures))
	}

	a := idx.Exprs[filepath.Join(root, "a.msd")]
	if !ast.Equal(a, ast.Add(ast.Num(1), ast.Num(2))) {
		t.Fatalf("a.msd parsed as %v", a)
	}

	var perr *parser.ParseError
	if !errors.As(idx.Failures[filepath.Join(root, "nested", "bad.msd")], &perr) {
		t.Fatalf("bad.msd failure is not a *parser.ParseError")
	}
	if idx.OK() {
		t.Fatalf("OK reported true with a failure recorded")
	}

	paths := idx.Paths()
	want := []string{
		filepath.Join(root, "a.msd"),
		filepath.Join(root, "nested", "b.msd"),
		filepath.Join(root, "nested", "bad.msd"),
	}
	if len(paths) != len(want) {
		t.Fatalf("Paths = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("Paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestBuildIndexLibraryDirs(t *testing.T) {
	root := t.TempDir()
	lib := t.TempDir()
	writeFile(t, filepath.Join(root, "main.msd"), "_true")
	writeFile(t, filepath.Join(lib, "lib.msd"), "_fun (x) x + 1")

	idx, err := BuildIndex(root, lib, "", filepath.Join(lib, "missing"))
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if len(idx.Exprs) != 2 || !idx.OK() {
		t.Fatalf("expected both files indexed, got %v / %v", idx.Exprs, idx.Failures)
	}
	// Scanning the same tree twice does not duplicate entries.
	idx, err = BuildIndex(root, root)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if len(idx.Paths()) != 1 {
		t.Fatalf("expected 1 path, got %v", idx.Paths())
	}
}

func TestBuildIndexMissingRoot(t *testing.T) {
	if _, err := BuildIndex(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing root")
	}
}
