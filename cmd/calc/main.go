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

// Command calc evaluates integer arithmetic expressions.
//
//	calc [-e expr]... [file]...
//
// Each expression and each file is evaluated on its own, and its value is
// printed on a line of its own. A file named "-" is read from standard input.
// Syntax errors are rendered with the offending line and a caret.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/parsec"
	"github.com/bufbuild/parsec/internal/calc"
	"github.com/bufbuild/parsec/source"
)

// errFailed is returned when at least one input did not evaluate. The
// individual failures have already been printed.
var errFailed = errors.New("calc: some inputs failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var exprs []string

	cmd := &cobra.Command{
		Use:           "calc [-e expr]... [file]...",
		Short:         "Evaluate integer arithmetic expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(exprs) == 0 && len(args) == 0 {
				return errors.New("calc: nothing to evaluate; pass -e or a file")
			}

			var files []*source.File
			for _, expr := range exprs {
				files = append(files, source.NewFile("<expr>", expr))
			}
			for _, path := range args {
				file, err := load(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				files = append(files, file)
			}

			ok := true
			for _, file := range files {
				if !eval(cmd.OutOrStdout(), cmd.ErrOrStderr(), file) {
					ok = false
				}
			}
			if !ok {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "evaluate `expr` (may be repeated)")

	return cmd
}

// eval evaluates one file, printing its value to stdout or its failure to
// stderr. Returns whether evaluation succeeded.
func eval(stdout, stderr io.Writer, file *source.File) bool {
	value, err := calc.Eval(file)
	if err == nil {
		fmt.Fprintln(stdout, value)
		return true
	}

	var perr *parsec.ParseError
	if errors.As(err, &perr) {
		_ = perr.Render(stderr)
	} else {
		fmt.Fprintf(stderr, "%s: %v\n", file.Path(), err)
	}
	return false
}

func load(stdin io.Reader, path string) (*source.File, error) {
	var (
		text []byte
		err  error
	)
	if path == "-" {
		text, err = io.ReadAll(stdin)
		path = "<stdin>"
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("calc: %w", err)
	}
	return source.NewFile(path, string(text)), nil
}
