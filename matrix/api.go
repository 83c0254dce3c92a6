// SPDX-License-Identifier: MIT
// Named entry points for the operations a surrogate fit is written in.
// Each one forwards to, or composes, the kernels in this package and adds no
// validation or numeric policy of its own.

package matrix

// ---------- Constructors ----------

// NewZeros is NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns zeros shaped like m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity of m's order. m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases ----------

// Sum is Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is Scale.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// MatVecMul is MatVec.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// InverseOf inverts m with DefaultZeroThreshold and no retries.
func InverseOf(m Matrix) (*Dense, error) { return Invert(m, DefaultZeroThreshold) }

// ---------- Compositions ----------

// Gram returns XᵀX. Composition: Transpose → Mul.
// Complexity: O(r*c^2).
func Gram(X Matrix) (*Dense, error) {
	xt, err := Transpose(X)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return Mul(xt, X)
}

// WeightedGram returns XᵀWX for the diagonal weight matrix W = diag(w),
// the normal-equation matrix of a weighted least-squares fit.
// len(w) must equal X.Rows().
// Complexity: O(r*c^2).
func WeightedGram(X Matrix, w []float64) (*Dense, error) {
	xt, err := Transpose(X)
	if err != nil {
		return nil, matrixErrorf("WeightedGram", err)
	}
	wx, err := workingCopy(X)
	if err != nil {
		return nil, matrixErrorf("WeightedGram", err)
	}
	if err = ValidateVecLen(w, wx.r); err != nil {
		return nil, matrixErrorf("WeightedGram", err)
	}
	for i := 0; i < wx.r; i++ {
		row := wx.data[i*wx.c : (i+1)*wx.c]
		for j := range row {
			row[j] *= w[i]
		}
	}

	return Mul(xt, wx) // Xᵀ(WX)
}
