// Copyright (c) 2023 Colin McRae

// Package config reads a TOML description of a pair of matrices over
// Z[1/sqrt(2)] for the z2equiv check command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/predrag3141/Z2Equivalence/z2matrix"
)

// MatrixConfig is a matrix given as rows of [a, b, c] triples, each
// representing (a + b sqrt(2)) / sqrt(2)^c
type MatrixConfig struct {
	Rows [][][3]int64
}

// Config is the z2equiv check input
type Config struct {
	// ShowProduct requests that a times the transpose of b be printed
	ShowProduct bool

	A MatrixConfig
	B MatrixConfig
}

func (mCfg *MatrixConfig) validate() error {
	if len(mCfg.Rows) == 0 {
		return errors.New("no rows")
	}
	numCols := len(mCfg.Rows[0])
	for i, row := range mCfg.Rows {
		if len(row) == 0 {
			return fmt.Errorf("row %d is empty", i)
		}
		if len(row) != numCols {
			return fmt.Errorf("row %d has %d entries but row 0 has %d", i, len(row), numCols)
		}
		for j, triple := range row {
			if triple[2] < 0 {
				return fmt.Errorf("entry [%d][%d] = %v has a negative exponent", i, j, triple)
			}
		}
	}
	return nil
}

// Matrix converts mCfg to a Z2Matrix with canonical entries
func (mCfg *MatrixConfig) Matrix() (*z2matrix.Z2Matrix, error) {
	if err := mCfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	numRows, numCols := len(mCfg.Rows), len(mCfg.Rows[0])
	triples := make([][3]int64, 0, numRows*numCols)
	for _, row := range mCfg.Rows {
		triples = append(triples, row...)
	}
	return z2matrix.NewFromInt64Triples(triples, numRows, numCols)
}

// Validate checks that both matrices are non-empty and rectangular, with
// non-negative exponents
func (cfg *Config) Validate() error {
	if err := cfg.A.validate(); err != nil {
		return fmt.Errorf("config: A is invalid: %v", err)
	}
	if err := cfg.B.validate(); err != nil {
		return fmt.Errorf("config: B is invalid: %v", err)
	}
	return nil
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
