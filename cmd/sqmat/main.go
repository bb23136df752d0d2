// SPDX-License-Identifier: MIT

// Command sqmat evaluates one square-matrix operation on a matrix given in
// bracket notation and prints the result.
//
//	sqmat -m "[[1,2],[3,4]]" -op inverse
//	sqmat -m "[[2,1],[1,3]]" -op solve -b "[3,5]" -packed
//
// Exit codes: 0 on success, 1 on bad input (flags, matrix or vector text),
// 2 when the operation itself fails (no unique solution).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/sqmat/internal/scalar"
	"github.com/katalvlaran/sqmat/matrix"
	"github.com/katalvlaran/sqmat/vector"
)

var log = logging.Logger("sqmat")

const (
	exitOK = iota
	exitInput
	exitCompute
)

const (
	opDet       = "det"
	opInverse   = "inverse"
	opGJInverse = "gj-inverse"
	opAdjoint   = "adjoint"
	opSolve     = "solve"
	opRREF      = "rref"
)

var errInput = errors.New("sqmat: bad input")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, evaluates the requested operation and writes the result
// to stdout. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sqmat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mText := fs.String("m", "", "matrix in bracket notation, e.g. \"[[1,2],[3,4]]\"")
	op := fs.String("op", opDet, "operation: det|inverse|gj-inverse|adjoint|solve|rref")
	bText := fs.String("b", "", "right-hand side for solve/rref, e.g. \"[4,6]\"")
	packed := fs.Bool("packed", false, "print results on one line without spaces")
	level := fs.String("log-level", "error", "log level for the matrix and sqmat loggers")
	if err := fs.Parse(args); err != nil {
		return exitInput
	}

	for _, name := range []string{"matrix", "sqmat"} {
		if err := logging.SetLogLevel(name, *level); err != nil {
			fmt.Fprintf(stderr, "sqmat: -log-level %q: %v\n", *level, err)
			return exitInput
		}
	}

	out, err := evaluate(*op, *mText, *bText, *packed)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errInput) {
			return exitInput
		}

		return exitCompute
	}
	fmt.Fprintln(stdout, out)

	return exitOK
}

// evaluate runs one operation and renders its result.
func evaluate(op, mText, bText string, packed bool) (string, error) {
	m, err := matrix.Parse(mText)
	if err != nil {
		return "", fmt.Errorf("%w: -m: %v", errInput, err)
	}
	var b vector.Vector
	if bText != "" {
		raw, err := matrix.ParseVector(bText)
		if err != nil {
			return "", fmt.Errorf("%w: -b: %v", errInput, err)
		}
		b = vector.Of(raw...)
	}
	log.Debugf("op=%s n=%d len(b)=%d", op, m.Dimens(), b.Len())

	render := func(s *matrix.Square) string {
		if packed {
			return s.JSON()
		}

		return s.Format(true)
	}

	switch op {
	case opDet:
		return scalar.Format(m.Det()), nil
	case opInverse:
		return render(m.Inverse(nil)), nil
	case opGJInverse:
		inv, err := m.InverseGaussJordan()
		if err != nil {
			return "", err
		}

		return render(inv), nil
	case opAdjoint:
		return render(m.AdjointMat(nil)), nil
	case opSolve:
		if b == nil {
			return "", fmt.Errorf("%w: -op solve needs -b", errInput)
		}
		x, err := matrix.Solve(m, b)
		if err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				return "", err
			}

			return "", fmt.Errorf("%w: %v", errInput, err)
		}

		return x.String(), nil
	case opRREF:
		var det float32
		var augment []vector.Vector
		if b != nil {
			augment = append(augment, b)
		}
		aug, err := m.Solution(augment, matrix.RREF, &det)
		if err != nil && !errors.Is(err, matrix.ErrSingular) {
			return "", err
		}
		if err != nil {
			log.Warnf("rref: %v", err)
		}
		res := render(aug.Basis())
		if aug.Len() > 0 {
			res += "\n" + aug.Augment()[0].String()
		}

		return res + "\ndet " + scalar.Format(det), nil
	default:
		return "", fmt.Errorf("%w: unknown -op %q", errInput, op)
	}
}
