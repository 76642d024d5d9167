package balance

import (
	"fmt"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

// DefaultTolerancePercent is how far an approximated ratio may drift from the
// exact one.
const DefaultTolerancePercent = 10

// Side is one end of an exchange.
type Side struct {
	Unit *unit.Unit
	Mode unit.Mode
}

// Request describes one exchange to balance.
type Request struct {
	Tier       int
	Input      Side
	Output     Side
	PowerBoost int
}

// Result is a balanced exchange.
type Result struct {
	// InputValue and OutputValue are the adjusted side values.
	InputValue  fraction.Fraction
	OutputValue fraction.Fraction
	// Exact is InputValue / OutputValue.
	Exact fraction.Fraction
	// Ratio is Exact approximated; InputCount is its denominator and
	// OutputCount its numerator.
	Ratio       fraction.Fraction
	InputCount  int
	OutputCount int
}

// Calculator balances exchanges against a set of tables.
type Calculator struct {
	tables         Tables
	tolerance      float64
	maxDenominator int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithTables replaces the default balance tables.
func WithTables(tables Tables) Option {
	return func(c *Calculator) {
		c.tables = tables
	}
}

// WithTolerance sets the approximation tolerance in percent.
func WithTolerance(percent float64) Option {
	return func(c *Calculator) {
		c.tolerance = percent
	}
}

// WithMaxDenominator bounds the approximation search.
func WithMaxDenominator(maxDenominator int) Option {
	return func(c *Calculator) {
		c.maxDenominator = maxDenominator
	}
}

// New returns a Calculator using DefaultTables unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		tables:         DefaultTables(),
		tolerance:      DefaultTolerancePercent,
		maxDenominator: fraction.DefaultMaxDenominator,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var defaultCalculator = New()

// Calculate balances req with the default calculator.
func Calculate(req Request) (Result, error) {
	return defaultCalculator.Calculate(req)
}

// Calculate balances req.
func (c *Calculator) Calculate(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	inputValue, err := c.inputValue(req)
	if err != nil {
		return Result{}, err
	}
	outputValue, err := c.outputValue(req)
	if err != nil {
		return Result{}, err
	}

	exact, err := inputValue.Divide(outputValue)
	if err != nil {
		return Result{}, apperrors.WrapWithMetadata(apperrors.CodeOf(err),
			fmt.Sprintf("%s is worth nothing at tier %d", req.Output.Unit.Name, req.Tier),
			map[string]string{"Unit": req.Output.Unit.Name}, err)
	}
	ratio, err := exact.Approximate(c.tolerance, c.maxDenominator)
	if err != nil {
		return Result{}, err
	}

	outputCount, inputCount, ok := ratio.Int64s()
	if !ok || outputCount <= 0 || inputCount <= 0 {
		return Result{}, apperrors.WithMetadata(apperrors.CodeDomainNonPositiveRatio,
			fmt.Sprintf("%s for %s balances to %s", req.Input.Unit.Name, req.Output.Unit.Name, ratio),
			map[string]string{"Ratio": ratio.String()})
	}

	return Result{
		InputValue:  inputValue,
		OutputValue: outputValue,
		Exact:       exact,
		Ratio:       ratio,
		InputCount:  int(inputCount),
		OutputCount: int(outputCount),
	}, nil
}

func validate(req Request) error {
	if req.Tier < unit.MinTier || req.Tier > unit.MaxTier {
		return invalidTier(req.Tier)
	}
	if req.PowerBoost < 0 {
		return apperrors.WithMetadata(apperrors.CodeDomainInvalidPowerBoost,
			fmt.Sprintf("power boost %d must be zero or more", req.PowerBoost),
			map[string]string{"PowerBoost": fmt.Sprint(req.PowerBoost)})
	}
	if req.Input.Unit == nil || req.Output.Unit == nil {
		return apperrors.New(apperrors.CodeDomainMissingUnit, "exchange needs an input and an output unit")
	}
	return nil
}

// inputValue is multiplier (doubled for give), tier-adjusted, scaled by the
// power boost and surcharged by the spell tier.
func (c *Calculator) inputValue(req Request) (fraction.Fraction, error) {
	u := req.Input.Unit
	value := u.Multiplier
	if req.Input.Mode == unit.ModeGive {
		value = value.MultiplyInt(2)
	}

	switch {
	case u.Tier < req.Tier:
		factor, err := c.tables.inputBoost().tierAdjustment(req.Tier, u.Tier, u.Name)
		if err != nil {
			return fraction.Fraction{}, err
		}
		value = value.Multiply(factor)
	case u.Tier > req.Tier:
		factor, err := c.tables.inputNerf().tierAdjustment(req.Tier, u.Tier, u.Name)
		if err != nil {
			return fraction.Fraction{}, err
		}
		if value, err = value.Divide(factor); err != nil {
			return fraction.Fraction{}, err
		}
	}

	value = value.MultiplyInt(int64(req.PowerBoost) + 1)
	return value.AddInt(int64(req.Tier)), nil
}

// outputValue is multiplier (doubled for take), tier-adjusted the opposite
// way to the input side and scaled by the spell tier.
func (c *Calculator) outputValue(req Request) (fraction.Fraction, error) {
	u := req.Output.Unit
	value := u.Multiplier
	if req.Output.Mode == unit.ModeTake {
		value = value.MultiplyInt(2)
	}

	switch {
	case u.Tier < req.Tier:
		factor, err := c.tables.outputBoost().tierAdjustment(req.Tier, u.Tier, u.Name)
		if err != nil {
			return fraction.Fraction{}, err
		}
		if value, err = value.Divide(factor); err != nil {
			return fraction.Fraction{}, err
		}
	case u.Tier > req.Tier:
		factor, err := c.tables.outputNerf().tierAdjustment(req.Tier, u.Tier, u.Name)
		if err != nil {
			return fraction.Fraction{}, err
		}
		value = value.Multiply(factor)
	}

	scale, err := c.tables.spellScale(req.Tier)
	if err != nil {
		return fraction.Fraction{}, err
	}
	return value.Multiply(scale), nil
}
