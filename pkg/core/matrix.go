package core

import (
	"math"
	"sync"

	"github.com/pkg/errors"
)

// ErrSingular is returned when inverting a matrix whose determinant is
// too close to zero to produce a usable inverse.
var ErrSingular = errors.New("matrix is singular")

// Matrix is a 4x4 float matrix. The inverse cache is a shared cell
// allocated by the constructors: copies of a matrix share the cell, the
// cell never participates in equality, and populating it is idempotent
// so concurrent renders may race to fill it safely. Caching matters:
// every ray transforms through the inverse of every shape it tests.
type Matrix struct {
	cells [4][4]float64
	inv   *inverseCell
}

type inverseCell struct {
	once  sync.Once
	cells [4][4]float64
	err   error
}

// NewMatrix creates a matrix from a 4x4 grid of values.
func NewMatrix(cells [4][4]float64) Matrix {
	return Matrix{cells: cells, inv: &inverseCell{}}
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return NewMatrix([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.cells[row][col]
}

// Equals reports whether two matrices hold the same values within
// Epsilon. Cache state is ignored.
func (m Matrix) Equals(o Matrix) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !FloatEqual(m.cells[r][c], o.cells[r][c]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * o.
func (m Matrix) Multiply(o Matrix) Matrix {
	var out [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m.cells[r][0]*o.cells[0][c] +
				m.cells[r][1]*o.cells[1][c] +
				m.cells[r][2]*o.cells[2][c] +
				m.cells[r][3]*o.cells[3][c]
		}
	}
	return NewMatrix(out)
}

// MultiplyTuple returns the matrix applied to a tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m.cells[0][0]*t.X + m.cells[0][1]*t.Y + m.cells[0][2]*t.Z + m.cells[0][3]*t.W,
		Y: m.cells[1][0]*t.X + m.cells[1][1]*t.Y + m.cells[1][2]*t.Z + m.cells[1][3]*t.W,
		Z: m.cells[2][0]*t.X + m.cells[2][1]*t.Y + m.cells[2][2]*t.Z + m.cells[2][3]*t.W,
		W: m.cells[3][0]*t.X + m.cells[3][1]*t.Y + m.cells[3][2]*t.Z + m.cells[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	var out [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m.cells[r][c]
		}
	}
	return NewMatrix(out)
}

// Determinant returns the determinant via cofactor expansion along the
// first row.
func (m Matrix) Determinant() float64 {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += m.cells[0][c] * cofactor(m.cells, 0, c)
	}
	return det
}

// Inverse returns the inverted matrix, or ErrSingular when the
// determinant is within Epsilon of zero. The result is cached, so
// repeated calls on the same matrix (or copies of it) are cheap.
func (m Matrix) Inverse() (Matrix, error) {
	if m.inv == nil {
		// Zero-value matrix with no cache cell; invert without caching.
		cells, err := invert(m.cells)
		if err != nil {
			return Matrix{}, err
		}
		return NewMatrix(cells), nil
	}
	m.inv.once.Do(func() {
		m.inv.cells, m.inv.err = invert(m.cells)
	})
	if m.inv.err != nil {
		return Matrix{}, m.inv.err
	}
	return NewMatrix(m.inv.cells), nil
}

func invert(cells [4][4]float64) ([4][4]float64, error) {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += cells[0][c] * cofactor(cells, 0, c)
	}
	if math.Abs(det) < Epsilon {
		return [4][4]float64{}, errors.Wrapf(ErrSingular, "determinant %g", det)
	}
	var out [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Note the transposed assignment: [c][r].
			out[c][r] = cofactor(cells, r, c) / det
		}
	}
	return out, nil
}

func cofactor(cells [4][4]float64, row, col int) float64 {
	minor := det3(submatrix(cells, row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func submatrix(cells [4][4]float64, row, col int) [3][3]float64 {
	var out [3][3]float64
	or := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		oc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[or][oc] = cells[r][c]
			oc++
		}
		or++
	}
	return out
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
