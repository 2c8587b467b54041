// Copyright (c) 2023 Colin McRae

// Command z2equiv tests whether matrices over Z[1/sqrt(2)] are related by a
// signed permutation, checks the test against random matrices, and times
// Z2Number addition.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/predrag3141/PSLQ/bignumber"
	"github.com/urfave/cli"
	"gopkg.in/op/go-logging.v1"

	"github.com/predrag3141/Z2Equivalence/log"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

// Bits of precision for approximate values printed by the check command
const approxPrecision = 200

// env holds what commands share once the global flags are parsed
type env struct {
	backend *log.Backend
	logger  *logging.Logger
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "z2equiv: %v\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	e := new(env)
	app := cli.NewApp()
	app.Name = "z2equiv"
	app.Usage = "signed-permutation equivalence of matrices over Z[1/sqrt(2)]"
	app.Version = VERSION
	app.Writer = w
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: "NOTICE",
			Usage: "one of ERROR, WARNING, NOTICE, INFO or DEBUG",
		},
		cli.StringFlag{
			Name:  "log-file",
			Value: "",
			Usage: "file to log to, instead of standard output",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "discard log messages",
		},
	}
	app.Before = func(c *cli.Context) error {
		var err error
		e.backend, err = log.New(c.String("log-file"), c.String("log-level"), c.Bool("quiet"))
		if err != nil {
			return errors.Wrap(err, "log.New()")
		}
		e.logger = e.backend.GetLogger("z2equiv")
		if err = bignumber.Init(approxPrecision); err != nil {
			return errors.Wrap(err, "bignumber.Init()")
		}
		return nil
	}
	app.After = func(c *cli.Context) error {
		if e.backend == nil {
			return nil
		}
		return e.backend.Close()
	}
	app.Commands = []cli.Command{
		checkCommand(e),
		randomCommand(e),
		benchCommand(e),
	}
	return app
}
