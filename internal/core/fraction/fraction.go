// Package fraction provides exact rational arithmetic for balance math.
//
// # Normal form
//
// Every Fraction is stored in lowest terms with a positive denominator; the
// numerator carries the sign and zero is always 0/1. Two fractions with the
// same value therefore have identical parts, which makes Equal a field
// comparison and keeps String output canonical.
//
// # Construction
//
// Integer inputs go through New or FromBig. Non-integer inputs (decimal
// multipliers such as 1.25) go through FromDecimal, FromFloat or Parse, which
// scale both parts by powers of ten until they are whole before reducing.
//
// # Immutability
//
// Fraction values never change after construction. Every operation returns a
// new Fraction, and the accessors hand out copies of the underlying integers.
package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// Fraction is an immutable exact rational number.
//
// The zero value is 0/1.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// Zero and One are shared constants.
var (
	Zero = Fraction{num: big.NewInt(0), den: big.NewInt(1)}
	One  = Fraction{num: big.NewInt(1), den: big.NewInt(1)}
)

// New returns numerator/denominator in lowest terms.
func New(numerator, denominator int64) (Fraction, error) {
	return FromBig(big.NewInt(numerator), big.NewInt(denominator))
}

// MustNew is New for constants known to be valid. It panics on a zero
// denominator.
func MustNew(numerator, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBig returns numerator/denominator in lowest terms. The arguments are
// not retained.
func FromBig(numerator, denominator *big.Int) (Fraction, error) {
	if numerator == nil || denominator == nil {
		return Fraction{}, apperrors.New(apperrors.CodeDomainNonFinite, "fraction parts are required")
	}
	if denominator.Sign() == 0 {
		return Fraction{}, apperrors.New(apperrors.CodeDomainZeroDenominator, "denominator cannot be zero")
	}
	return normalize(new(big.Int).Set(numerator), new(big.Int).Set(denominator)), nil
}

// FromDecimal returns numerator/denominator for decimal inputs. Both parts are
// scaled by the same power of ten until they are whole, then reduced.
func FromDecimal(numerator, denominator decimal.Decimal) (Fraction, error) {
	if denominator.IsZero() {
		return Fraction{}, apperrors.New(apperrors.CodeDomainZeroDenominator, "denominator cannot be zero")
	}

	shift := min(numerator.Exponent(), denominator.Exponent(), 0)
	num := scaleCoefficient(numerator, shift)
	den := scaleCoefficient(denominator, shift)
	return normalize(num, den), nil
}

// FromFloat returns numerator/denominator for floating point inputs, using
// the shortest decimal representation of each value.
func FromFloat(numerator, denominator float64) (Fraction, error) {
	for _, v := range []float64{numerator, denominator} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Fraction{}, apperrors.WithMetadata(apperrors.CodeDomainNonFinite,
				fmt.Sprintf("fraction input %v is not finite", v),
				map[string]string{"Value": fmt.Sprint(v)})
		}
	}
	return FromDecimal(decimal.NewFromFloat(numerator), decimal.NewFromFloat(denominator))
}

// Parse reads "n/d", "n" or a decimal such as "1.25".
func Parse(text string) (Fraction, error) {
	text = strings.TrimSpace(text)
	numText, denText, isRatio := strings.Cut(text, "/")
	if !isRatio {
		denText = "1"
	}

	num, err := decimal.NewFromString(strings.TrimSpace(numText))
	if err != nil {
		return Fraction{}, apperrors.WrapWithMetadata(apperrors.CodeParseInvalidNumber,
			fmt.Sprintf("parse fraction %q", text), map[string]string{"Value": text}, err)
	}
	den, err := decimal.NewFromString(strings.TrimSpace(denText))
	if err != nil {
		return Fraction{}, apperrors.WrapWithMetadata(apperrors.CodeParseInvalidNumber,
			fmt.Sprintf("parse fraction %q", text), map[string]string{"Value": text}, err)
	}
	return FromDecimal(num, den)
}

// MustParse is Parse for constants. It panics on invalid input.
func MustParse(text string) Fraction {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// scaleCoefficient returns d × 10^(exponent-shift) as an integer; shift must
// not exceed d's exponent.
func scaleCoefficient(d decimal.Decimal, shift int32) *big.Int {
	out := d.Coefficient()
	if exp := d.Exponent() - shift; exp > 0 {
		out.Mul(out, new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil))
	}
	return out
}

// normalize takes ownership of num and den, moves the sign to the numerator
// and divides both by their greatest common divisor.
func normalize(num, den *big.Int) Fraction {
	if num.Sign() == 0 {
		return Fraction{num: num.SetInt64(0), den: den.SetInt64(1)}
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	divisor := gcd(new(big.Int).Abs(num), new(big.Int).Set(den))
	if divisor.Cmp(bigOne) != 0 {
		num.Quo(num, divisor)
		den.Quo(den, divisor)
	}
	return Fraction{num: num, den: den}
}

// gcd is the Euclidean algorithm over non-negative integers. It consumes its
// arguments.
func gcd(a, b *big.Int) *big.Int {
	for b.Sign() != 0 {
		a, b = b, a.Rem(a, b)
	}
	return a
}

func (f Fraction) parts() (*big.Int, *big.Int) {
	if f.num == nil || f.den == nil {
		return bigZero, bigOne
	}
	return f.num, f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	num, _ := f.parts()
	return new(big.Int).Set(num)
}

// Den returns a copy of the denominator.
func (f Fraction) Den() *big.Int {
	_, den := f.parts()
	return new(big.Int).Set(den)
}

// Int64s returns the numerator and denominator when both fit in an int64.
func (f Fraction) Int64s() (numerator, denominator int64, ok bool) {
	num, den := f.parts()
	if !num.IsInt64() || !den.IsInt64() {
		return 0, 0, false
	}
	return num.Int64(), den.Int64(), true
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	num, _ := f.parts()
	return num.Sign()
}

// IsZero reports whether f equals 0.
func (f Fraction) IsZero() bool {
	return f.Sign() == 0
}

// Complexity is |numerator| + denominator, the measure Approximate minimizes.
func (f Fraction) Complexity() *big.Int {
	num, den := f.parts()
	out := new(big.Int).Abs(num)
	return out.Add(out, den)
}

// Rat returns f as a big.Rat.
func (f Fraction) Rat() *big.Rat {
	num, den := f.parts()
	return new(big.Rat).SetFrac(num, den)
}

// Float64 returns the nearest float64 value.
func (f Fraction) Float64() float64 {
	value, _ := f.Rat().Float64()
	return value
}

// String returns "numerator/denominator".
func (f Fraction) String() string {
	num, den := f.parts()
	return num.String() + "/" + den.String()
}

// MarshalText encodes f as "numerator/denominator".
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes any form accepted by Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Equal reports whether f and other have the same value.
func (f Fraction) Equal(other Fraction) bool {
	fn, fd := f.parts()
	on, od := other.parts()
	return fn.Cmp(on) == 0 && fd.Cmp(od) == 0
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than other.
func (f Fraction) Cmp(other Fraction) int {
	return f.Rat().Cmp(other.Rat())
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	num, den := f.parts()
	return Fraction{num: new(big.Int).Abs(num), den: new(big.Int).Set(den)}
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	num, den := f.parts()
	return Fraction{num: new(big.Int).Neg(num), den: new(big.Int).Set(den)}
}

// Add returns f + other.
func (f Fraction) Add(other Fraction) Fraction {
	fn, fd := f.parts()
	on, od := other.parts()
	num := new(big.Int).Mul(fn, od)
	num.Add(num, new(big.Int).Mul(on, fd))
	return normalize(num, new(big.Int).Mul(fd, od))
}

// Subtract returns f - other.
func (f Fraction) Subtract(other Fraction) Fraction {
	return f.Add(other.Neg())
}

// Multiply returns f × other.
func (f Fraction) Multiply(other Fraction) Fraction {
	fn, fd := f.parts()
	on, od := other.parts()
	return normalize(new(big.Int).Mul(fn, on), new(big.Int).Mul(fd, od))
}

// Divide returns f ÷ other. Dividing by zero is a domain error.
func (f Fraction) Divide(other Fraction) (Fraction, error) {
	if other.IsZero() {
		return Fraction{}, apperrors.New(apperrors.CodeDomainDivideByZero, "cannot divide by zero")
	}
	fn, fd := f.parts()
	on, od := other.parts()
	return normalize(new(big.Int).Mul(fn, od), new(big.Int).Mul(fd, on)), nil
}

// AddInt returns f + n.
func (f Fraction) AddInt(n int64) Fraction {
	return f.Add(FromInt(n))
}

// SubtractInt returns f - n.
func (f Fraction) SubtractInt(n int64) Fraction {
	return f.Subtract(FromInt(n))
}

// MultiplyInt returns f × n.
func (f Fraction) MultiplyInt(n int64) Fraction {
	return f.Multiply(FromInt(n))
}

// DivideInt returns f ÷ n.
func (f Fraction) DivideInt(n int64) (Fraction, error) {
	return f.Divide(FromInt(n))
}
