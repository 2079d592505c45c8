// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs golden-file tests: table-driven tests whose table
// lives in a testdata directory.
//
// Each test case is a file with a given extension. The outputs a case
// produces are stored next to it, in files named by appending an output
// extension to the case's name: the "ast" output of "foo.calc" lives in
// "foo.calc.ast". A missing output file means the output is expected to be
// empty.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/bufbuild/parsec/internal"
)

// Corpus describes a golden test corpus.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob. Test cases whose names match it
	// have their outputs rewritten instead of compared. For example,
	//
	//	PARSEC_REFRESH='**' go test ./internal/calc
	//
	// regenerates every output of the calc corpus.
	Refresh string

	// The file extension, without a dot, of files that define a test case.
	Extension string

	// The outputs each test case produces.
	Outputs []Output

	// Test executes one test case. name is the path of the case relative to
	// Root, using forward slashes. It returns one string per element of
	// Outputs.
	Test func(t *testing.T, name, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// The extension appended to the test case's file name to find this
	// output's golden file.
	Extension string

	// Compares an output with its golden file. If nil, they are compared
	// byte-for-byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns the empty string if the strings match; otherwise returns a
// description of the mismatch.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a parallel subtest of t.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(internal.CallerDir(1), c.Root)

	names, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: error while searching %q: %v", root, err)
	}
	if len(names) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// Refreshing never passes, so that it is not left on by accident.
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(root, filepath.FromSlash(name))
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test produced %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				golden := fmt.Sprint(path, ".", output.Extension)
				if rewrite {
					if err := write(golden, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output %q: %v", golden, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, diff)
				}
			}
		})
	}
}

// Diff is the default [Compare]. It renders a mismatch as a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(diff, "\n")
}

// write replaces a golden file. An empty output removes the file instead.
func write(path, output string) error {
	if output == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error while deleting output %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error while writing output %q: %w", path, err)
	}
	return nil
}
