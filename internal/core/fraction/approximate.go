package fraction

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

// DefaultMaxDenominator bounds the denominators Approximate tries when the
// caller has no stronger preference.
const DefaultMaxDenominator = 100

// Approximate searches for a simpler fraction within tolerancePercent of f.
//
// For every denominator in 1..maxDenominator the nearest numerator (rounded
// half up) is tried. A candidate qualifies when it deviates from f by at most
// |f| × tolerancePercent / 100. Among qualifying candidates the one with the
// smallest |numerator| + denominator wins; ties go to the smaller error. When
// nothing is simpler than f itself an equal copy of f is returned.
//
// tolerancePercent must lie strictly between 0 and 100 and maxDenominator must
// be at least 1, otherwise a domain error is returned. All comparisons are
// exact.
func (f Fraction) Approximate(tolerancePercent float64, maxDenominator int) (Fraction, error) {
	if math.IsNaN(tolerancePercent) || tolerancePercent <= 0 || tolerancePercent >= 100 {
		return Fraction{}, apperrors.WithMetadata(apperrors.CodeDomainToleranceOutOfRange,
			fmt.Sprintf("tolerance percent %v must be between 0 and 100 (exclusive)", tolerancePercent),
			map[string]string{"Tolerance": fmt.Sprint(tolerancePercent)})
	}
	if maxDenominator < 1 {
		return Fraction{}, apperrors.WithMetadata(apperrors.CodeDomainMaxDenominatorOutOfRange,
			fmt.Sprintf("maximum approximation denominator %d must be at least 1", maxDenominator),
			map[string]string{"MaxDenominator": fmt.Sprint(maxDenominator)})
	}

	num, den := f.parts()
	if num.Sign() == 0 {
		return FromInt(0), nil
	}

	value := f.Rat()
	maxError := new(big.Rat).Abs(value)
	maxError.Mul(maxError, decimal.NewFromFloat(tolerancePercent).Rat())
	maxError.Quo(maxError, big.NewRat(100, 1))

	best := Fraction{num: new(big.Int).Set(num), den: new(big.Int).Set(den)}
	bestComplexity := best.Complexity()
	bestError := new(big.Rat)

	twiceDen := new(big.Int).Lsh(den, 1)
	for d := int64(1); d <= int64(maxDenominator); d++ {
		candidateDen := big.NewInt(d)
		candidateNum := roundHalfUp(num, candidateDen, den, twiceDen)

		candidateError := new(big.Rat).SetFrac(candidateNum, candidateDen)
		candidateError.Sub(value, candidateError)
		candidateError.Abs(candidateError)
		if candidateError.Cmp(maxError) > 0 {
			continue
		}

		candidate := normalize(candidateNum, candidateDen)
		complexity := candidate.Complexity()
		switch complexity.Cmp(bestComplexity) {
		case -1:
		case 0:
			if candidateError.Cmp(bestError) >= 0 {
				continue
			}
		default:
			continue
		}
		best = candidate
		bestComplexity = complexity
		bestError = candidateError
	}

	return best, nil
}

// roundHalfUp returns floor(num × d / den + 1/2), the integer nearest to
// num/den × d with halves rounded toward positive infinity.
func roundHalfUp(num, d, den, twiceDen *big.Int) *big.Int {
	out := new(big.Int).Mul(num, d)
	out.Lsh(out, 1)
	out.Add(out, den)
	// Div is Euclidean; with a positive divisor that is floor division.
	return out.Div(out, twiceDen)
}
