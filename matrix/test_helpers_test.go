// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/densela/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At-based paths.
type hide struct{ matrix.Matrix }

// badShape is a foreign Matrix reporting a fixed (possibly non-positive) shape.
type badShape struct{ r, c int }

func (b badShape) Rows() int { return b.r }
func (b badShape) Cols() int { return b.c }
func (b badShape) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (b badShape) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (b badShape) Clone() matrix.Matrix { return b }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// fillDenseRand fills m with integers in [-5, 5] from a seeded source.
// Integer entries keep cofactor arithmetic exact for small n.
func fillDenseRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, float64(rng.Intn(11)-5)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// rowsOf snapshots any Matrix into row slices through At.
func rowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// requireRows fails unless got holds exactly want.
func requireRows(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(t, got)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireRowsNear fails unless every cell of got is within tol of want.
func requireRowsNear(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, rowsOf(t, got), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch beyond %g (-want +got):\n%s", tol, diff)
	}
}
