// Copyright (c) 2023 Colin McRae

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/predrag3141/Z2Equivalence/config"
	"github.com/predrag3141/Z2Equivalence/util"
	"github.com/predrag3141/Z2Equivalence/z2matrix"
	"github.com/predrag3141/Z2Equivalence/z2number"
)

func checkCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "check",
		Usage: "report whether the matrices A and B in a TOML file are equivalent",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Usage: "TOML file with matrices A and B",
			},
			cli.BoolFlag{
				Name:  "show-product",
				Usage: "print A times the transpose of B",
			},
			cli.BoolFlag{
				Name:  "approx",
				Usage: "with the product, also print approximate values of its entries",
			},
		},
		Action: func(c *cli.Context) error {
			return e.check(c)
		},
	}
}

func randomCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "random",
		Usage: "check equivalence of random pairs against the materialized product",
		Flags: []cli.Flag{
			cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
			cli.IntFlag{Name: "dim", Value: 6, Usage: "dimension of the matrices"},
			cli.IntFlag{Name: "rotations", Value: 10, Usage: "45-degree rotations per orthogonal matrix"},
			cli.IntFlag{Name: "trials", Value: 100, Usage: "number of equivalent and of inequivalent pairs"},
		},
		Action: func(c *cli.Context) error {
			return e.random(c)
		},
	}
}

func benchCommand(e *env) cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "time repeated addition of two Z2Numbers with large exponents",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "iterations", Value: 10000, Usage: "number of additions"},
		},
		Action: func(c *cli.Context) error {
			return e.bench(c)
		},
	}
}

func (e *env) check(c *cli.Context) error {
	if c.String("config") == "" {
		return errors.New("check: --config is required")
	}
	cfg, err := config.LoadFile(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "config.LoadFile()")
	}
	a, err := cfg.A.Matrix()
	if err != nil {
		return errors.Wrap(err, "A")
	}
	b, err := cfg.B.Matrix()
	if err != nil {
		return errors.Wrap(err, "B")
	}
	e.logger.Debugf("A =\n%s", a.PrettyString())
	e.logger.Debugf("B =\n%s", b.PrettyString())

	equivalent, err := z2matrix.AreEquivalent(a, b)
	if err != nil {
		return errors.Wrap(err, "AreEquivalent()")
	}
	fmt.Fprintf(c.App.Writer, "equivalent: %v\n", equivalent)
	if !(cfg.ShowProduct || c.Bool("show-product")) {
		return nil
	}

	product, err := z2matrix.MatrixMultiply(a, b.Transpose())
	if err != nil {
		// Rows of A and B have equal length, so this is reached only if AreEquivalent
		// and MatrixMultiply disagree about shapes
		return errors.Wrap(err, "MatrixMultiply()")
	}
	fmt.Fprintf(c.App.Writer, "A times the transpose of B:\n%s", product.PrettyString())
	if c.Bool("approx") {
		return printApprox(c, product)
	}
	return nil
}

func printApprox(c *cli.Context, x *z2matrix.Z2Matrix) error {
	numRows, numCols := x.Dimensions()
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			entry, err := x.Get(i, j)
			if err != nil {
				return errors.Wrap(err, "Get()")
			}
			approx, err := entry.AsFloat()
			if err != nil {
				return errors.Wrapf(err, "AsFloat() of entry [%d][%d]", i, j)
			}
			if j > 0 {
				fmt.Fprint(c.App.Writer, " ")
			}
			fmt.Fprint(c.App.Writer, approx.Text('g', 10))
		}
		fmt.Fprintln(c.App.Writer)
	}
	return nil
}

func (e *env) random(c *cli.Context) error {
	r := rand.New(rand.NewSource(c.Int64("seed")))
	dim, numRotations, numTrials := c.Int("dim"), c.Int("rotations"), c.Int("trials")
	counts := map[bool]int{}
	for trial := 0; trial < numTrials; trial++ {
		for _, wantEquivalent := range []bool{true, false} {
			generate := util.RandomEquivalentPair
			if !wantEquivalent {
				generate = util.RandomInequivalentPair
			}
			a, b, err := generate(r, dim, numRotations)
			if err != nil {
				return errors.Wrapf(err, "trial %d", trial)
			}
			equivalent, err := z2matrix.AreEquivalent(a, b)
			if err != nil {
				return errors.Wrapf(err, "trial %d: AreEquivalent()", trial)
			}
			product, err := z2matrix.MatrixMultiply(a, b.Transpose())
			if err != nil {
				return errors.Wrapf(err, "trial %d: MatrixMultiply()", trial)
			}
			if equivalent != product.IsSignedPermutation() || equivalent != wantEquivalent {
				e.logger.Errorf(
					"trial %d: AreEquivalent returned %v for a =\n%sb =\n%sa b^T =\n%s",
					trial, equivalent, a.PrettyString(), b.PrettyString(), product.PrettyString(),
				)
				return cli.NewExitError(fmt.Sprintf("random: disagreement in trial %d", trial), 2)
			}
			counts[equivalent]++
		}
		e.logger.Debugf("trial %d passed", trial)
	}
	e.logger.Noticef(
		"%d equivalent and %d inequivalent %d x %d pairs checked with seed %d",
		counts[true], counts[false], dim, dim, c.Int64("seed"),
	)
	fmt.Fprintf(c.App.Writer, "equivalent: %d inequivalent: %d\n", counts[true], counts[false])
	return nil
}

func (e *env) bench(c *cli.Context) error {
	x, err := z2number.New(14098400, 42341098, 8321)
	if err != nil {
		return errors.Wrap(err, "New()")
	}
	y, err := z2number.New(39481920, 49276910, 8340)
	if err != nil {
		return errors.Wrap(err, "New()")
	}
	iterations := c.Int("iterations")
	var sum *z2number.Z2Number
	start := time.Now()
	for i := 0; i < iterations; i++ {
		sum = x.Add(y)
	}
	elapsed := time.Since(start)
	e.logger.Infof("%d additions in %v, sum %s", iterations, elapsed, sum)
	fmt.Fprintf(c.App.Writer, "%.3f\n", float64(elapsed.Microseconds())/1000)
	return nil
}
