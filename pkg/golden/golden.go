// Package golden compares test output against files under testdata/.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	update      bool // should we update golden files?
	testMainRan bool // did TestMain get called?
)

// Path returns the golden file for the running test:
// testdata/<test name>.golden, with subtest separators replaced by "__".
func Path(t testing.TB) string {
	fn := strings.ReplaceAll(t.Name(), "/", "__")
	return filepath.Join("testdata", fn+".golden")
}

// Test checks output against the golden file of the running test.
// If -golden-update was passed to "go test", it writes the golden file instead.
func Test(t testing.TB, output string) {
	t.Helper()
	if !testMainRan {
		t.Fatal("golden.TestMain was not called")
	}
	path := Path(t)

	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("update golden: %v", err)
		}
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			t.Fatalf("update golden: %v", err)
		}
		return
	}

	expect, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(string(expect), output); diff != "" {
		t.Fatalf("output does not match %s (-want +got):\n%s", path, diff)
	}
}

// TestMain sets up golden testing for a package.
// Packages using Test must call it from their own TestMain.
func TestMain(m *testing.M) {
	flag.BoolVar(&update, "golden-update", false, "update golden files")
	flag.Parse()
	testMainRan = true
	os.Exit(m.Run())
}
